package integration

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/worldfile/internal/infodb"
	"github.com/udisondev/worldfile/internal/worldfile"
)

// buf is a tiny little-endian byte-builder for assembling world-file
// and player-map fixtures at the byte level, same shape as the
// builders the unit packages use for their own seed fixtures.
type buf struct{ b []byte }

func (w *buf) bytes(bs ...byte) *buf { w.b = append(w.b, bs...); return w }
func (w *buf) u16(v uint16) *buf {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return w.bytes(tmp[:]...)
}
func (w *buf) u32(v uint32) *buf {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return w.bytes(tmp[:]...)
}
func (w *buf) str(s string) *buf {
	w.b = append(w.b, byte(len(s)))
	return w.bytes([]byte(s)...)
}

// TestLoad_WithPlayerMapOverlay drives worldfile.Decoder end to end
// against a 2x2 world file plus a legacy (v1) companion player map
// named after the world's numeric ID, checking that the overlay's
// per-tile Seen bits land on the decoded world exactly where the
// player-map fixture says they should.
func TestLoad_WithPlayerMapOverlay(t *testing.T) {
	headerBlock := new(buf).u32(2).u32(2).u32(1).u32(7) // tilesWide, tilesHigh, groundLevel, worldID
	headerBlock.bytes(make([]byte, 16)...)               // guid, all zero; no companion map is named after it

	tiles := new(buf).bytes(0x40, 0x01, 0x40, 0x01, 0x40, 0x01, 0x40, 0x01)
	chests := new(buf).u16(0).u16(0)
	signs := new(buf).u16(0)
	npcs := new(buf).bytes(0x00, 0x00)
	entities := new(buf).u32(0)
	plates := new(buf).u32(0)
	town := new(buf).u32(0)
	bestiary := new(buf).u32(0).u32(0).u32(0)
	creative := new(buf)

	blocks := [][]byte{headerBlock.b, tiles.b, chests.b, signs.b, npcs.b, entities.b, plates.b, town.b, bestiary.b, creative.b}
	const numSections = 11
	prologueLen := 4 + 7 + 1 + 12 + 2 + numSections*4 + 2 + 1

	offsets := make([]uint32, numSections)
	cursor := uint32(prologueLen)
	for i, block := range blocks {
		offsets[i] = cursor
		cursor += uint32(len(block))
	}
	offsets[numSections-1] = cursor

	world := new(buf).
		u32(254).
		bytes([]byte("relogic")...).
		bytes(2).
		bytes(make([]byte, 12)...).
		u16(numSections)
	for _, off := range offsets {
		world.u32(off)
	}
	world.u16(1).bytes(0x00)
	for _, block := range blocks {
		world.bytes(block...)
	}

	dir := t.TempDir()
	worldPath := filepath.Join(dir, "world.wld")
	require.NoError(t, os.WriteFile(worldPath, world.b, 0o644))

	// Legacy player map: tiles (0,0) and (1,1) seen, the other two not.
	playerBody := new(buf).
		str("player").
		u32(7). // worldID, matches the header above
		u32(2). // tilesHigh
		u32(2)  // tilesWide
	// Decode order is column-major (x outer, y inner), so this is
	// (0,0), (0,1), (1,0), (1,1). A seen cell carries a 2-byte tile id
	// (version 80 > the one-byte-tile-id threshold), a light byte, a
	// misc byte, and (version >= 50) a second misc byte, before its
	// trailing run-length count.
	playerBody.bytes(0x01).u16(7).bytes(0x00).bytes(0x00).bytes(0x00).u16(0) // (0,0) seen, rle=0
	playerBody.bytes(0x00).u16(0)                                           // (0,1) unseen, rle=0
	playerBody.bytes(0x00).u16(0)                                           // (1,0) unseen, rle=0
	playerBody.bytes(0x01).u16(7).bytes(0x00).bytes(0x00).bytes(0x00).u16(0) // (1,1) seen, rle=0

	player := new(buf).u32(80)
	player.bytes(playerBody.b...)

	// The player path is the player's own save file; its companion
	// .map files live in a sibling directory named after it with the
	// extension stripped (here "Steve.plr" -> "Steve"), not inside the
	// save file's own parent directory.
	saveDir := t.TempDir()
	playerPath := filepath.Join(saveDir, "Steve.plr")
	companionDir := filepath.Join(saveDir, "Steve")
	require.NoError(t, os.MkdirAll(companionDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(companionDir, "7.map"), player.b, 0o644))

	decoder := worldfile.NewDecoder(infodb.NewStatic(infodb.StaticConfig{}), nil)
	events := decoder.Load(context.Background(), worldPath, playerPath)

	var terminal worldfile.Event
	for ev := range events {
		if ev.Kind == worldfile.EventLoaded || ev.Kind == worldfile.EventError {
			terminal = ev
		}
	}

	require.Equal(t, worldfile.EventLoaded, terminal.Kind, "decode error: %v", terminal.Err)
	w := terminal.World
	require.Len(t, w.Tiles, 4)

	require.True(t, w.TileAt(0, 0).Seen())
	require.False(t, w.TileAt(1, 0).Seen())
	require.False(t, w.TileAt(0, 1).Seen())
	require.True(t, w.TileAt(1, 1).Seen())
}

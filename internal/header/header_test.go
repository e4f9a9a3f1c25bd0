package header

import (
	"encoding/binary"
	"testing"

	"github.com/udisondev/worldfile/internal/binutil"
)

func i32le(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func TestDecode_RequiredKeys(t *testing.T) {
	var data []byte
	data = append(data, i32le(2)...)  // tilesWide
	data = append(data, i32le(3)...)  // tilesHigh
	data = append(data, i32le(1)...)  // groundLevel
	data = append(data, i32le(42)...) // worldID
	data = append(data, make([]byte, 16)...) // guid

	h := binutil.New(data)
	bag, err := Decode(h, 254, DefaultSchema())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	for _, key := range []string{"tilesWide", "tilesHigh", "groundLevel", "worldID", "guid"} {
		if !bag.Has(key) {
			t.Errorf("expected bag to have key %q", key)
		}
	}

	w, err := bag.GetI32("tilesWide")
	if err != nil || w != 2 {
		t.Errorf("tilesWide: expected 2, got %d (err=%v)", w, err)
	}
	id, err := bag.GetI32("worldID")
	if err != nil || id != 42 {
		t.Errorf("worldID: expected 42, got %d (err=%v)", id, err)
	}
}

func TestDecode_OldVersionHasNoGUID(t *testing.T) {
	var data []byte
	data = append(data, i32le(2)...)
	data = append(data, i32le(3)...)
	data = append(data, i32le(1)...)
	data = append(data, i32le(42)...)

	h := binutil.New(data)
	bag, err := Decode(h, 10, DefaultSchema())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if bag.Has("guid") {
		t.Errorf("version 10 predates guid; bag should not have it")
	}
}

func TestDecode_FutureGuardedFieldsAreSkipped(t *testing.T) {
	var data []byte
	data = append(data, i32le(2)...)
	data = append(data, i32le(3)...)
	data = append(data, i32le(1)...)
	data = append(data, i32le(42)...)
	data = append(data, make([]byte, 16)...) // guid

	h := binutil.New(data)
	bag, err := Decode(h, 254, DefaultSchema())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if bag.Has("torchGodEnabled") || bag.Has("biomeSeed") {
		t.Errorf("version 254 should not trigger version>=300/400 guarded fields")
	}
	if h.Pos() != h.Len() {
		t.Errorf("expected header decode to consume exactly the header bytes, pos=%d len=%d", h.Pos(), h.Len())
	}
}

func TestValue_KindMismatch(t *testing.T) {
	v := I32Value(5)
	if _, err := v.AsString(); err == nil {
		t.Errorf("expected kind mismatch error reading I32 as string")
	}
}

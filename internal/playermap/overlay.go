package playermap

import (
	"strings"

	"github.com/udisondev/worldfile/internal/binutil"
	"github.com/udisondev/worldfile/internal/worldmodel"
)

// legacyMaxVersion is the highest format version still using the v1
// overlay layout (uncompressed, tile-id-then-RLE per cell). Versions
// above it use the v2 layout, raw-DEFLATE compressed from
// rawDeflateMinVersion onward.
const (
	legacyMaxVersion    int32 = 91
	rawDeflateMinVersion int32 = 93
)

// Overlay locates and applies a player's per-world seen-tile overlay
// onto w. playerPath is the player's own save file (e.g. "Steve.plr");
// per spec.md §4.5 step 1 (original_source/src/world.cpp's
// player.left(player.lastIndexOf("."))), the companion .map files live
// in a directory named after that file with its extension stripped,
// not inside the player file itself. When no companion overlay file
// exists yet, every tile is marked seen — matching the source
// decoder's behavior of assuming full visibility rather than none for
// a world a player has no recorded history with.
func Overlay(playerPath string, w *worldmodel.World) error {
	dir := baseDir(playerPath)

	path, ok, err := Locate(dir, w.Header)
	if err != nil {
		return err
	}
	if !ok {
		for i := range w.Tiles {
			w.Tiles[i].SetSeen(true)
		}
		return nil
	}

	h, err := binutil.Open(path)
	if err != nil {
		return err
	}
	version, err := h.R32()
	if err != nil {
		return err
	}

	if version <= legacyMaxVersion {
		return decodeV1(h, version, w)
	}
	return decodeV2(h, version, w)
}

// baseDir strips the extension off playerPath, matching the source's
// player.left(player.lastIndexOf(".")): everything up to (not
// including) the last dot in the path becomes the companion-map
// directory. A path with no dot is used as-is.
func baseDir(playerPath string) string {
	if i := strings.LastIndex(playerPath, "."); i >= 0 {
		return playerPath[:i]
	}
	return playerPath
}

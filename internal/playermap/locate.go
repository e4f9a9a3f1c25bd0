// Package playermap resolves and decodes a player's per-world "seen
// tiles" overlay: a companion .map file, keyed by the world's guid or
// worldID, that lives alongside a player's save data.
package playermap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/udisondev/worldfile/internal/header"
)

// Locate resolves the companion overlay file for a world inside dir
// (a player's save folder), trying the guid-keyed filename first and
// falling back to the worldID-keyed filename. It reports ok=false,
// with no error, when neither candidate exists on disk — that is the
// normal "no overlay recorded yet" case, not a failure.
func Locate(dir string, bag header.Bag) (path string, ok bool, err error) {
	if bag.Has("guid") {
		g, err := bag.GetBytes("guid")
		if err != nil {
			return "", false, err
		}
		candidate := filepath.Join(dir, formatGUID(g)+".map")
		if fileExists(candidate) {
			return candidate, true, nil
		}
	}

	worldID, err := bag.GetI32("worldID")
	if err != nil {
		return "", false, err
	}
	candidate := filepath.Join(dir, fmt.Sprintf("%d.map", worldID))
	if fileExists(candidate) {
		return candidate, true, nil
	}

	return "", false, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

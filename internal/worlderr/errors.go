// Package worlderr defines the error taxonomy shared by every decoder
// in this repository. Every variant is fatal to the enclosing load.
package worlderr

import "fmt"

// UnsupportedVersionError — version > highest known version.
type UnsupportedVersionError struct {
	Found, Highest int32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported world version %d (highest known is %d)", e.Found, e.Highest)
}

// VersionTooOldError — version < minimum supported version.
type VersionTooOldError struct {
	Found, Minimum int32
}

func (e *VersionTooOldError) Error() string {
	return fmt.Sprintf("world version %d is older than the minimum supported version %d", e.Found, e.Minimum)
}

// NotARelogicMapError — the 7-byte magic did not read "relogic".
type NotARelogicMapError struct {
	Got string
}

func (e *NotARelogicMapError) Error() string {
	return fmt.Sprintf("not a relogic map file (magic %q)", e.Got)
}

// NotAMapFileError — the file-type byte did not match the expected value.
type NotAMapFileError struct {
	Got byte
}

func (e *NotAMapFileError) Error() string {
	return fmt.Sprintf("not a world map file (file type byte 0x%02X)", e.Got)
}

// CorruptTileStreamError — RLE expansion drove y past tilesHigh.
type CorruptTileStreamError struct {
	X, Y int32
}

func (e *CorruptTileStreamError) Error() string {
	return fmt.Sprintf("corrupt tile stream at column %d, row %d: run-length overran the grid", e.X, e.Y)
}

// UnknownEntityKindError — an entity tag byte outside {0,1,2}.
type UnknownEntityKindError struct {
	Kind byte
	At   int64
}

func (e *UnknownEntityKindError) Error() string {
	return fmt.Sprintf("unknown entity kind 0x%02X at offset %d", e.Kind, e.At)
}

// CorruptPlayerMapError — the player-map seen overlay's RLE overran the grid.
type CorruptPlayerMapError struct {
	At int64
}

func (e *CorruptPlayerMapError) Error() string {
	return fmt.Sprintf("corrupt player map at offset %d: run-length overran the grid", e.At)
}

// DeflateFailedError — the v2 player-map's raw DEFLATE body failed to inflate.
type DeflateFailedError struct {
	Err error
}

func (e *DeflateFailedError) Error() string {
	return fmt.Sprintf("inflating player map: %v", e.Err)
}

func (e *DeflateFailedError) Unwrap() error { return e.Err }

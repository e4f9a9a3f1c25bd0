package playermap

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/udisondev/worldfile/internal/binutil"
	"github.com/udisondev/worldfile/internal/worlderr"
	"github.com/udisondev/worldfile/internal/worldmodel"
)

const (
	relogicMagic      = "relogic"
	playerFileTypeByte = byte(1)
	relogicMinVersion = int32(135)
)

func setSeen(w *worldmodel.World, x, y int32, seen bool) error {
	if x < 0 || x >= w.TilesWide || y < 0 || y >= w.TilesHigh {
		return &worlderr.CorruptPlayerMapError{}
	}
	t := w.TileAt(x, y)
	t.SetSeen(seen)
	w.SetTileAt(x, y, t)
	return nil
}

// decodeV1 implements the legacy (version <= 91) overlay layout: an
// uncompressed, per-column, per-cell "was this tile seen" record
// followed by a run-length count of identically-flagged cells below
// it.
func decodeV1(h *binutil.Handle, version int32, w *worldmodel.World) error {
	if _, err := h.RS(); err != nil { // player name
		return err
	}
	if _, err := h.R32(); err != nil { // id
		return err
	}
	if _, err := h.R32(); err != nil { // tiles high (discarded, use w's)
		return err
	}
	if _, err := h.R32(); err != nil { // tiles wide (discarded, use w's)
		return err
	}

	for x := int32(0); x < w.TilesWide; x++ {
		for y := int32(0); y < w.TilesHigh; {
			seen, err := h.RBool()
			if err != nil {
				return err
			}
			if seen {
				if version <= versionOneByteTileID {
					if _, err := h.R8(); err != nil {
						return err
					}
				} else if _, err := h.R16(); err != nil {
					return err
				}
				if _, err := h.R8(); err != nil { // light
					return err
				}
				if _, err := h.R8(); err != nil { // misc
					return err
				}
				if version >= versionMiscFlag2 {
					if _, err := h.R8(); err != nil {
						return err
					}
				}
			}
			if err := setSeen(w, x, y, seen); err != nil {
				return err
			}

			rle, err := h.RU16()
			if err != nil {
				return err
			}
			for r := uint16(0); r < rle; r++ {
				y++
				if err := setSeen(w, x, y, seen); err != nil {
					return err
				}
			}
			y++
		}
	}
	return nil
}

// versionOneByteTileID and versionMiscFlag2 gate the v1 overlay's
// tile-id width and its second misc byte; they carry the same values as
// the worldfile package's constants of the same names.
const (
	versionOneByteTileID int32 = 77
	versionMiscFlag2     int32 = 50
)

// decodeV2 implements the modern overlay layout: an optional relogic
// header, presence bitmaps for tiles and walls whose flagged entries
// carry one throwaway byte each, an optional raw-DEFLATE body (version
// >= 93), and finally a per-cell flags-plus-RLE grid.
func decodeV2(h *binutil.Handle, version int32, w *worldmodel.World) error {
	if version >= relogicMinVersion {
		magic, err := h.Read(7)
		if err != nil {
			return err
		}
		if magic != relogicMagic {
			return &worlderr.NotARelogicMapError{Got: magic}
		}
		fileType, err := h.R8()
		if err != nil {
			return err
		}
		if fileType != playerFileTypeByte {
			return &worlderr.NotAMapFileError{Got: fileType}
		}
		h.Skip(4 + 8)
	}

	if _, err := h.RS(); err != nil { // player name
		return err
	}
	if _, err := h.R32(); err != nil { // world id
		return err
	}
	if _, err := h.R32(); err != nil { // tiles high (discarded)
		return err
	}
	if _, err := h.R32(); err != nil { // tiles wide (discarded)
		return err
	}

	numTiles, err := h.R16()
	if err != nil {
		return err
	}
	numWalls, err := h.R16()
	if err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		if _, err := h.R16(); err != nil { // unknown counts
			return err
		}
	}

	tilePresent, err := h.ReadBitmap(int(numTiles))
	if err != nil {
		return err
	}
	wallPresent, err := h.ReadBitmap(int(numWalls))
	if err != nil {
		return err
	}

	for _, present := range tilePresent {
		if present {
			if _, err := h.R8(); err != nil {
				return err
			}
		}
	}
	for _, present := range wallPresent {
		if present {
			if _, err := h.R8(); err != nil {
				return err
			}
		}
	}

	if version >= rawDeflateMinVersion {
		rest, err := h.ReadBytes(h.Len() - h.Pos())
		if err != nil {
			return err
		}
		inflated, err := inflateRaw(rest)
		if err != nil {
			return &worlderr.DeflateFailedError{Err: err}
		}
		h = binutil.New(inflated)
	}

	for y := int32(0); y < w.TilesHigh; y++ {
		for x := int32(0); x < w.TilesWide; {
			flags, err := h.R8()
			if err != nil {
				return err
			}
			if flags&0x01 != 0 {
				if _, err := h.R8(); err != nil { // color
					return err
				}
			}

			kind := (flags >> 1) & 7
			if kind == 1 || kind == 2 || kind == 7 {
				if flags&0x10 != 0 {
					if _, err := h.R16(); err != nil {
						return err
					}
				} else if _, err := h.R8(); err != nil {
					return err
				}
			}

			light := byte(255)
			if flags&0x20 != 0 {
				light, err = h.R8() // light level, unused
				if err != nil {
					return err
				}
			}

			var rle int
			switch (flags >> 6) & 3 {
			case 1:
				b, err := h.R8()
				if err != nil {
					return err
				}
				rle = int(b)
			case 2:
				v, err := h.RU16()
				if err != nil {
					return err
				}
				rle = int(v)
			}

			seen := kind != 0
			if err := setSeen(w, x, y, seen); err != nil {
				return err
			}
			for r := 0; r < rle; r++ {
				x++
				if seen && light != 255 {
					if _, err := h.R8(); err != nil { // per-cell light, unused
						return err
					}
				}
				if err := setSeen(w, x, y, seen); err != nil {
					return err
				}
			}
			x++
		}
	}

	return nil
}

// inflateRaw decompresses a headerless (RFC 1951) DEFLATE stream, the
// framing the game itself writes via zlib's inflateInit2(&strm, -15).
func inflateRaw(compressed []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	return io.ReadAll(r)
}

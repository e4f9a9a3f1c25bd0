// Package tile implements the per-cell record codec for the world tile
// grid: a variable-length, bit-packed record followed by a run-length
// count.
package tile

import "github.com/udisondev/worldfile/internal/binutil"

// Flag bits, named per the wire format. All other bits are reserved.
const (
	FlagActive     uint16 = 1 << 0
	FlagLava       uint16 = 1 << 1
	FlagHoney      uint16 = 1 << 2
	FlagRedWire    uint16 = 1 << 3
	FlagBlueWire   uint16 = 1 << 4
	FlagGreenWire  uint16 = 1 << 5
	FlagHalf       uint16 = 1 << 6
	FlagActuator   uint16 = 1 << 7
	FlagInactive   uint16 = 1 << 8
	FlagSeen       uint16 = 1 << 9
	FlagYellowWire uint16 = 1 << 10
	FlagShimmer    uint16 = 1 << 11
)

// Tile is one cell of the world grid.
type Tile struct {
	Type      uint16
	Wall      uint16
	U, V      int16
	WallU     int16
	WallV     int16
	Color     uint8
	WallColor uint8
	Liquid    uint8
	Slope     uint8
	Flags     uint16
}

func (t Tile) has(f uint16) bool    { return t.Flags&f != 0 }
func (t *Tile) set(f uint16, v bool) {
	if v {
		t.Flags |= f
	} else {
		t.Flags &^= f
	}
}

func (t Tile) Active() bool     { return t.has(FlagActive) }
func (t Tile) Lava() bool       { return t.has(FlagLava) }
func (t Tile) Honey() bool      { return t.has(FlagHoney) }
func (t Tile) RedWire() bool    { return t.has(FlagRedWire) }
func (t Tile) BlueWire() bool   { return t.has(FlagBlueWire) }
func (t Tile) GreenWire() bool  { return t.has(FlagGreenWire) }
func (t Tile) Half() bool       { return t.has(FlagHalf) }
func (t Tile) Actuator() bool   { return t.has(FlagActuator) }
func (t Tile) Inactive() bool   { return t.has(FlagInactive) }
func (t Tile) Seen() bool       { return t.has(FlagSeen) }
func (t Tile) YellowWire() bool { return t.has(FlagYellowWire) }
func (t Tile) Shimmer() bool    { return t.has(FlagShimmer) }

func (t *Tile) SetSeen(v bool) { t.set(FlagSeen, v) }

// NewDefault returns the default tile: inactive, no wall, no liquid,
// u/v and wall u/v absent (-1).
func NewDefault() Tile {
	return Tile{U: -1, V: -1, WallU: -1, WallV: -1}
}

// Decode reads one tile record starting at h's current offset and
// returns the decoded tile plus the RLE run length: the number of
// additional cells below it in the column that repeat this record.
//
// extraData is the per-tile-type boolean vector (§4.4.1 of the format):
// when extraData[Type] is set, the tile carries explicit U/V texture
// coordinates.
func Decode(h *binutil.Handle, extraData []bool) (Tile, int, error) {
	t := NewDefault()

	f1, err := h.R8()
	if err != nil {
		return Tile{}, 0, err
	}

	var f2, f3 uint8
	if f1&0x01 != 0 {
		f2, err = h.R8()
		if err != nil {
			return Tile{}, 0, err
		}
		if f2&0x01 != 0 {
			f3, err = h.R8()
			if err != nil {
				return Tile{}, 0, err
			}
		}
	}

	active := f1&0x02 != 0
	if active {
		lo, err := h.R8()
		if err != nil {
			return Tile{}, 0, err
		}
		typ := uint16(lo)
		if f1&0x20 != 0 {
			hi, err := h.R8()
			if err != nil {
				return Tile{}, 0, err
			}
			typ |= uint16(hi) << 8
		}
		t.Type = typ
		t.set(FlagActive, true)

		if int(typ) < len(extraData) && extraData[typ] {
			u, err := h.R16()
			if err != nil {
				return Tile{}, 0, err
			}
			v, err := h.R16()
			if err != nil {
				return Tile{}, 0, err
			}
			t.U, t.V = u, v
		} else {
			t.U, t.V = -1, -1
		}

		if f3&0x08 != 0 {
			color, err := h.R8()
			if err != nil {
				return Tile{}, 0, err
			}
			t.Color = color
		}
	}

	if f1&0x04 != 0 {
		wall, err := h.R8()
		if err != nil {
			return Tile{}, 0, err
		}
		t.Wall = uint16(wall)

		if f3&0x10 != 0 {
			wc, err := h.R8()
			if err != nil {
				return Tile{}, 0, err
			}
			t.WallColor = wc
		}
	}

	if f1&0x18 != 0 {
		liquid, err := h.R8()
		if err != nil {
			return Tile{}, 0, err
		}
		t.Liquid = liquid
		switch f1 & 0x18 {
		case 0x10:
			t.set(FlagLava, true)
		case 0x18:
			t.set(FlagHoney, true)
		}
		if f3&0x80 != 0 {
			t.set(FlagShimmer, true)
		}
	}

	t.set(FlagRedWire, f2&0x02 != 0)
	t.set(FlagBlueWire, f2&0x04 != 0)
	t.set(FlagGreenWire, f2&0x08 != 0)

	slop := (f2 >> 4) & 7
	if slop == 1 {
		t.set(FlagHalf, true)
	} else {
		s := int(slop) - 1
		if s < 0 {
			s = 0
		}
		t.Slope = uint8(s)
	}

	t.set(FlagActuator, f3&0x02 != 0)
	t.set(FlagInactive, f3&0x04 != 0)
	t.set(FlagYellowWire, f3&0x20 != 0)

	if f3&0x40 != 0 {
		hi, err := h.R8()
		if err != nil {
			return Tile{}, 0, err
		}
		t.Wall |= uint16(hi) << 8
	}

	var rle int
	switch f1 >> 6 {
	case 0:
		rle = 0
	case 1:
		b, err := h.R8()
		if err != nil {
			return Tile{}, 0, err
		}
		rle = int(b)
	case 2:
		v, err := h.R16()
		if err != nil {
			return Tile{}, 0, err
		}
		rle = int(uint16(v))
	case 3:
		rle = 0
	}

	return t, rle, nil
}

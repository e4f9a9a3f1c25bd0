package tile

import (
	"testing"

	"github.com/udisondev/worldfile/internal/binutil"
)

func TestDecode_InactiveMinimal(t *testing.T) {
	// f1 = 0: no f2, not active, no wall, no liquid, rle = 0.
	data := []byte{0x00}
	h := binutil.New(data)

	tl, rle, err := Decode(h, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if tl.Active() {
		t.Error("expected inactive tile")
	}
	if tl.U != -1 || tl.V != -1 {
		t.Errorf("expected u/v -1, got %d/%d", tl.U, tl.V)
	}
	if rle != 0 {
		t.Errorf("expected rle 0, got %d", rle)
	}
	if h.Pos() != 1 {
		t.Errorf("expected cursor at 1, got %d", h.Pos())
	}
}

func TestDecode_ActiveOneByteTypeWithRLE8(t *testing.T) {
	// f1: bit0=1 (has f2), bit1=1 (active), bits6-7=01 (rle is one byte).
	f1 := byte(0x01 | 0x02 | 0x40)
	// f2: bit0=0 (no f3).
	f2 := byte(0x00)
	data := []byte{f1, f2, 5 /* tile type */, 9 /* rle count */}
	h := binutil.New(data)

	tl, rle, err := Decode(h, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !tl.Active() {
		t.Error("expected active tile")
	}
	if tl.Type != 5 {
		t.Errorf("expected type 5, got %d", tl.Type)
	}
	if rle != 9 {
		t.Errorf("expected rle 9, got %d", rle)
	}
}

func TestDecode_ExtraDataUV(t *testing.T) {
	f1 := byte(0x01 | 0x02)
	f2 := byte(0x01) // has f3
	f3 := byte(0x00)
	data := []byte{f1, f2, f3, 3 /* type */, 0x10, 0x00 /* u=16 */, 0x20, 0x00 /* v=32 */}
	h := binutil.New(data)

	extra := make([]bool, 8)
	extra[3] = true

	tl, _, err := Decode(h, extra)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if tl.U != 16 || tl.V != 32 {
		t.Errorf("expected u=16 v=32, got u=%d v=%d", tl.U, tl.V)
	}
}

func TestDecode_LavaClassification(t *testing.T) {
	f1 := byte(0x10) // liquid bits = 0x10 -> lava, no f2
	data := []byte{f1, 200 /* liquid amount */}
	h := binutil.New(data)

	tl, _, err := Decode(h, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !tl.Lava() {
		t.Error("expected lava flag set")
	}
	if tl.Honey() {
		t.Error("did not expect honey flag")
	}
	if tl.Liquid != 200 {
		t.Errorf("expected liquid 200, got %d", tl.Liquid)
	}
}

func TestDecode_HoneyClassification(t *testing.T) {
	f1 := byte(0x18) // liquid bits = 0x18 -> honey
	data := []byte{f1, 100}
	h := binutil.New(data)

	tl, _, err := Decode(h, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !tl.Honey() {
		t.Error("expected honey flag set")
	}
}

func TestDecode_HalfBlockFromSlopeBits(t *testing.T) {
	f1 := byte(0x01)
	f2 := byte(0x10) // (f2>>4)&7 == 1 -> half
	data := []byte{f1, f2}
	h := binutil.New(data)

	tl, _, err := Decode(h, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !tl.Half() {
		t.Error("expected half flag set")
	}
	if tl.Slope != 0 {
		t.Errorf("expected slope 0 when half is set, got %d", tl.Slope)
	}
}

func TestDecode_SlopeValue(t *testing.T) {
	f1 := byte(0x01)
	f2 := byte(0x30) // (f2>>4)&7 == 3 -> slope = 3-1 = 2
	data := []byte{f1, f2}
	h := binutil.New(data)

	tl, _, err := Decode(h, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if tl.Slope != 2 {
		t.Errorf("expected slope 2, got %d", tl.Slope)
	}
}

func TestDecode_TruncatedStreamIsError(t *testing.T) {
	data := []byte{0x02} // active bit set, but no type byte follows
	h := binutil.New(data)

	if _, _, err := Decode(h, nil); err == nil {
		t.Fatal("expected an error for a truncated tile record")
	}
}

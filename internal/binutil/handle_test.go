package binutil

import (
	"errors"
	"testing"
)

func TestHandle_R8(t *testing.T) {
	h := New([]byte{0x42})

	v, err := h.R8()
	if err != nil {
		t.Fatalf("R8 failed: %v", err)
	}
	if v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", v)
	}
	if h.Pos() != 1 {
		t.Errorf("expected pos 1, got %d", h.Pos())
	}
}

func TestHandle_R16(t *testing.T) {
	h := New([]byte{0x34, 0x12})

	v, err := h.R16()
	if err != nil {
		t.Fatalf("R16 failed: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", v)
	}
}

func TestHandle_R32(t *testing.T) {
	h := New([]byte{0x78, 0x56, 0x34, 0x12})

	v, err := h.R32()
	if err != nil {
		t.Fatalf("R32 failed: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08X", v)
	}
}

func TestHandle_R64(t *testing.T) {
	h := New([]byte{0, 0, 0, 0, 0, 0, 0, 0x80})

	v, err := h.R64()
	if err != nil {
		t.Fatalf("R64 failed: %v", err)
	}
	if v != int64(-9223372036854775808) {
		t.Errorf("expected min int64, got %d", v)
	}
}

func TestHandle_RD(t *testing.T) {
	// IEEE-754 little-endian encoding of 1.5
	h := New([]byte{0, 0, 0, 0, 0, 0, 0xF8, 0x3F})

	v, err := h.RD()
	if err != nil {
		t.Fatalf("RD failed: %v", err)
	}
	if v != 1.5 {
		t.Errorf("expected 1.5, got %v", v)
	}
}

func TestHandle_RS(t *testing.T) {
	// length=5 (single LEB128 byte), then "hello"
	h := New([]byte{5, 'h', 'e', 'l', 'l', 'o'})

	s, err := h.RS()
	if err != nil {
		t.Fatalf("RS failed: %v", err)
	}
	if s != "hello" {
		t.Errorf("expected %q, got %q", "hello", s)
	}
}

func TestHandle_RS_MultiByteLength(t *testing.T) {
	// 200 in LEB128: 0xC8, 0x01
	data := append([]byte{0xC8, 0x01}, make([]byte, 200)...)
	for i := range data[2:] {
		data[2+i] = 'x'
	}
	h := New(data)

	s, err := h.RS()
	if err != nil {
		t.Fatalf("RS failed: %v", err)
	}
	if len(s) != 200 {
		t.Errorf("expected length 200, got %d", len(s))
	}
}

func TestHandle_RS_InvalidLength(t *testing.T) {
	// 5 continuation bytes, all with high bit set: exceeds MaxLEB128Bytes
	h := New([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})

	_, err := h.RS()
	var invLen *InvalidLengthError
	if !errors.As(err, &invLen) {
		t.Fatalf("expected InvalidLengthError, got %v", err)
	}
}

func TestHandle_RS_InvalidUTF8(t *testing.T) {
	h := New([]byte{2, 0xff, 0xfe})

	_, err := h.RS()
	var invUTF8 *InvalidUTF8Error
	if !errors.As(err, &invUTF8) {
		t.Fatalf("expected InvalidUTF8Error, got %v", err)
	}
}

func TestHandle_UnexpectedEOF(t *testing.T) {
	h := New([]byte{0x01})

	_, err := h.R32()
	var eofErr *UnexpectedEofError
	if !errors.As(err, &eofErr) {
		t.Fatalf("expected UnexpectedEofError, got %v", err)
	}
}

func TestHandle_SeekSkip(t *testing.T) {
	h := New([]byte{1, 2, 3, 4})
	h.Seek(2)
	v, err := h.R8()
	if err != nil {
		t.Fatalf("R8 failed: %v", err)
	}
	if v != 3 {
		t.Errorf("expected 3, got %d", v)
	}

	h.Seek(0)
	h.Skip(3)
	v, err = h.R8()
	if err != nil {
		t.Fatalf("R8 failed: %v", err)
	}
	if v != 4 {
		t.Errorf("expected 4, got %d", v)
	}
}

func TestHandle_ReadBytesIsACopy(t *testing.T) {
	h := New([]byte{1, 2, 3})
	b, err := h.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	b[0] = 99
	if h.data[0] != 1 {
		t.Errorf("ReadBytes must return a copy, not a view into the backing buffer")
	}
}

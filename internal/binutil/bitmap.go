package binutil

import "math/bits"

// ReadBitmap reads a bit-packed boolean vector of exactly n bits using
// the file format's native convention: within each byte, the walking
// mask starts at 0x80 and rotates left by one bit per position (0x80,
// 0x01, 0x02, ..., 0x40), wrapping into a freshly read byte once all 8
// positions of the current byte are spent.
func (h *Handle) ReadBitmap(n int) ([]bool, error) {
	out := make([]bool, n)
	if n == 0 {
		return out, nil
	}

	var cur uint8
	var mask uint8
	bitsLeft := 0
	for i := 0; i < n; i++ {
		if bitsLeft == 0 {
			b, err := h.R8()
			if err != nil {
				return nil, err
			}
			cur = b
			mask = 0x80
			bitsLeft = 8
		}
		out[i] = cur&mask != 0
		mask = bits.RotateLeft8(mask, 1)
		bitsLeft--
	}
	return out, nil
}

package playermap

import "fmt"

// formatGUID renders a 16-byte header guid field as the mixed-endian
// hex string a companion player-map filename is keyed by: the first
// three groups are read little-endian off the wire and printed in
// natural (big-endian-looking) hex order, the last two groups are read
// big-endian directly. This is not a standard textual UUID formatter —
// deliberately not github.com/google/uuid's String() — because the
// wire layout mixes endianness across the five groups.
func formatGUID(g []byte) string {
	u1 := uint32(g[0]) | uint32(g[1])<<8 | uint32(g[2])<<16 | uint32(g[3])<<24
	u2 := uint16(g[4]) | uint16(g[5])<<8
	u3 := uint16(g[6]) | uint16(g[7])<<8
	u4 := uint16(g[8])<<8 | uint16(g[9])
	u5 := uint16(g[10])<<8 | uint16(g[11])
	u6 := uint32(g[12])<<24 | uint32(g[13])<<16 | uint32(g[14])<<8 | uint32(g[15])

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%04x%08x", u1, u2, u3, u4, u5, u6)
}

package fragmath

// ExtractBits returns the count-bit field of value starting at bit start
// (0 is the least significant bit), right-aligned:
//
//	(value >> start) & ((1 << count) - 1)
//
// The caller must keep start+count <= 32. A count of 32 selects the whole
// word, since Go defines 1<<32 on a uint32 as 0 and the mask wraps to all
// ones. Fields crossing bit 31 are not detected.
func ExtractBits(value uint32, start, count uint) uint32 {
	mask := uint32(1)<<count - 1
	return (value >> start) & mask
}

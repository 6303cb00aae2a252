package lanes

// Widening and narrowing change the lane size while keeping the lane
// count, so the vector width doubles or halves. Only the u8/u16 pairs
// are supported; other element types decompose to these or stay scalar.

// PromoteU8x16ToU16 zero-extends each uint8 lane to uint16. The lane
// count is preserved, so a 128-bit input produces a 256-bit result.
func PromoteU8x16ToU16(v Vec128[uint8]) Vec256[uint16] {
	return Vec256[uint16]{v: activeKernels().widenU8(v.v)}
}

// PromoteU8x32ToU16 zero-extends each uint8 lane to uint16. The lane
// count is preserved, so a 256-bit input produces a 512-bit result.
func PromoteU8x32ToU16(v Vec256[uint8]) Vec512[uint16] {
	return Vec512[uint16]{v: activeKernels().widenU8(v.v)}
}

// TruncateU16x16ToU8 keeps the low byte of each uint16 lane, wrapping
// modulo 256. The lane count is preserved, so a 256-bit input produces
// a 128-bit result. This wraps rather than saturates: 0x101 becomes
// 0x01, not 0xFF.
func TruncateU16x16ToU8(v Vec256[uint16]) Vec128[uint8] {
	return Vec128[uint8]{v: activeKernels().narrowU16(v.v)}
}

// TruncateU16x32ToU8 keeps the low byte of each uint16 lane, wrapping
// modulo 256. The lane count is preserved, so a 512-bit input produces
// a 256-bit result.
func TruncateU16x32ToU8(v Vec512[uint16]) Vec256[uint8] {
	return Vec256[uint8]{v: activeKernels().narrowU16(v.v)}
}

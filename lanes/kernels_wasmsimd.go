package lanes

import "github.com/veclane/go-lanes/lanes/inst/wasm"

// wasm kernels. SIMD128 is fixed at 128 bits, so every wider vector
// decomposes through the generic rules. The permutes all lower to
// i8x16.shuffle with computed index immediates, and the trunc_sat
// conversions carry the reference saturating semantics natively.

var wasmKernels kernelSet

// Assigned in init rather than in the declaration: the fallback paths of
// the shuffle functions below refer back to wasmKernels, which would
// otherwise be an initialization cycle.
func init() {
	wasmKernels = kernelSet{
		name:      "wasm128",
		zipLow:    wasmZipLow,
		zipHigh:   wasmZipHigh,
		unzipLow:  wasmUnzipLow,
		unzipHigh: wasmUnzipHigh,

		selectBits: wasmSelectBits,
		slide128:   wasmSlide128,
		maskAny:    wasmMaskAny,
		maskAll:    wasmMaskAll,

		// No structure loads in the proposal; these lower to shuffle
		// chains with the reference permutation.
		loadInterleaved4:  scalarLoadInterleaved4,
		storeInterleaved4: scalarStoreInterleaved4,

		widenU8:   wasmWidenU8,
		narrowU16: wasmNarrowU16,

		cvtF32ToU32:        wasm.I32x4TruncSatF32x4U,
		cvtF32ToU32Precise: wasm.I32x4TruncSatF32x4U,
		cvtF32ToI32:        wasm.I32x4TruncSatF32x4S,
		cvtF32ToI32Precise: wasm.I32x4TruncSatF32x4S,
		cvtU32ToF32:        wasm.F32x4ConvertI32x4U,
		cvtI32ToF32:        wasm.F32x4ConvertI32x4S,
	}
}

func wasmZipLow(a, b []byte, elemSize int) []byte {
	if len(a) != 16 {
		return genericZipLow(&wasmKernels, a, b, elemSize)
	}
	return wasm.I8x16Shuffle(a, b, zipShuffleIdx(elemSize, 0))
}

func wasmZipHigh(a, b []byte, elemSize int) []byte {
	if len(a) != 16 {
		return genericZipHigh(&wasmKernels, a, b, elemSize)
	}
	return wasm.I8x16Shuffle(a, b, zipShuffleIdx(elemSize, 8))
}

func wasmUnzipLow(a, b []byte, elemSize int) []byte {
	if len(a) != 16 {
		return genericUnzipLow(&wasmKernels, a, b, elemSize)
	}
	return wasm.I8x16Shuffle(a, b, unzipShuffleIdx32(elemSize, 0))
}

func wasmUnzipHigh(a, b []byte, elemSize int) []byte {
	if len(a) != 16 {
		return genericUnzipHigh(&wasmKernels, a, b, elemSize)
	}
	return wasm.I8x16Shuffle(a, b, unzipShuffleIdx32(elemSize, 1))
}

// zipShuffleIdx builds the shuffle immediate interleaving operand
// elements starting at byte offset from: a lane, b lane, a lane, ...
func zipShuffleIdx(elemSize, from int) []byte {
	idx := make([]byte, 0, 16)
	for off := from; off < from+8; off += elemSize {
		for k := 0; k < elemSize; k++ {
			idx = append(idx, byte(off+k))
		}
		for k := 0; k < elemSize; k++ {
			idx = append(idx, byte(16+off+k))
		}
	}
	return idx
}

// unzipShuffleIdx32 builds the shuffle immediate gathering every
// second element of the 32-byte concatenation, starting at start.
func unzipShuffleIdx32(elemSize, start int) []byte {
	idx := make([]byte, 0, 16)
	for e := start; e*elemSize < 32; e += 2 {
		for k := 0; k < elemSize; k++ {
			idx = append(idx, byte(e*elemSize+k))
		}
	}
	return idx
}

func wasmSlide128(hi, lo []byte, r int) []byte {
	// One shuffle with the running index sequence r, r+1, ... walks
	// straight across the [lo, hi] concatenation.
	idx := make([]byte, 16)
	for i := range idx {
		idx[i] = byte(r + i)
	}
	return wasm.I8x16Shuffle(lo, hi, idx)
}

func wasmSelectBits(m, a, b []byte) []byte {
	return wasm.V128Bitselect(a, b, m)
}

func wasmMaskAny(m []byte, _ int) bool {
	for off := 0; off < len(m); off += 16 {
		if wasm.V128AnyTrue(m[off : off+16]) {
			return true
		}
	}
	return false
}

func wasmMaskAll(m []byte, elemSize int) bool {
	for off := 0; off < len(m); off += 16 {
		if !wasm.AllTrue(m[off:off+16], elemSize) {
			return false
		}
	}
	return true
}

func wasmWidenU8(src []uint8) []uint16 {
	out := make([]uint16, 0, len(src))
	for off := 0; off < len(src); off += 16 {
		out = append(out, wasm.U16x8ExtendLowU8x16(src[off:off+16])...)
		out = append(out, wasm.U16x8ExtendHighU8x16(src[off:off+16])...)
	}
	return out
}

func wasmNarrowU16(src []uint16) []uint8 {
	// v128.and with 0x00FF makes the saturating narrow a plain
	// truncation.
	out := make([]uint8, 0, len(src))
	for off := 0; off < len(src); off += 16 {
		masked := make([]uint16, 16)
		for i, w := range src[off : off+16] {
			masked[i] = w & 0xFF
		}
		out = append(out, wasm.I8x16NarrowI16x8U(masked[:8], masked[8:])...)
	}
	return out
}

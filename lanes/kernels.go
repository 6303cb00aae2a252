// Copyright 2024 The go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

// A kernelSet bundles the operations whose implementations genuinely
// differ between instruction sets: byte shuffles, blends, mask
// reductions, lane-size changes, and float/integer conversions.
// Lane-wise arithmetic needs no kernel because every backend computes
// the same values; these operations are where the backends diverge in
// strategy, and each set reproduces its instruction set's approach so
// the portable results can be checked against all of them.
//
// Shuffle kernels work on raw bytes with an element size parameter,
// since data movement is type-agnostic. Conversion kernels are typed
// because the numeric behavior is the whole point. All kernels accept
// any vector width (16, 32 or 64 bytes); widths beyond a backend's
// native register size decompose through the generic half-width rules.
type kernelSet struct {
	name string

	// Full-vector shuffles. zipLow interleaves the low halves of a and
	// b; zipHigh the high halves. unzipLow gathers the even-indexed
	// elements of the concatenation [a, b]; unzipHigh the odd-indexed.
	zipLow    func(a, b []byte, elemSize int) []byte
	zipHigh   func(a, b []byte, elemSize int) []byte
	unzipLow  func(a, b []byte, elemSize int) []byte
	unzipHigh func(a, b []byte, elemSize int) []byte

	// selectBits blends a and b under the mask bytes. Canonical masks
	// (all-ones or all-zeros per lane) select whole lanes; junk masks
	// produce backend-dependent values, never anything worse.
	selectBits func(m, a, b []byte) []byte

	// slide128 concatenates one 16-byte block pair and extracts a
	// window: lo[r:] followed by hi[:r], with r in [0, 16). The slide
	// drivers below build every wider slide out of this primitive,
	// which is how the hardware does it too (PALIGNR, EXT).
	slide128 func(hi, lo []byte, r int) []byte

	maskAny func(m []byte, elemSize int) bool
	maskAll func(m []byte, elemSize int) bool

	// loadInterleaved4 de-interleaves x0 y0 z0 w0 x1 y1 z1 w1 ... into
	// four contiguous streams, one per 128-bit block of the result.
	// storeInterleaved4 is its inverse. Both take exactly 64 bytes.
	loadInterleaved4  func(src []byte, elemSize int) []byte
	storeInterleaved4 func(src []byte, elemSize int) []byte

	// widenU8 zero-extends bytes to words; narrowU16 truncates words
	// to bytes, wrapping modulo 256.
	widenU8   func(src []uint8) []uint16
	narrowU16 func(src []uint16) []uint8

	// Float/integer conversions. The precise forms truncate toward
	// zero, saturate, and map NaN to 0 on every backend; the plain
	// forms follow the backend's native instruction, whose
	// out-of-range and NaN results differ by instruction set.
	cvtF32ToU32        func(src []float32) []uint32
	cvtF32ToU32Precise func(src []float32) []uint32
	cvtF32ToI32        func(src []float32) []int32
	cvtF32ToI32Precise func(src []float32) []int32
	cvtU32ToF32        func(src []uint32) []float32
	cvtI32ToF32        func(src []int32) []float32
}

var kernelsByLevel = [numLevels]*kernelSet{
	LevelFallback:    &fallbackKernels,
	LevelSse42:       &sse42Kernels,
	LevelAvx2:        &avx2Kernels,
	LevelAvx512:      &avx512Kernels,
	LevelNeon:        &neonKernels,
	LevelWasmSimd128: &wasmKernels,
}

// allKernels lists every backend. Tests iterate over it to check each
// set against the fallback reference on the same inputs.
var allKernels = []*kernelSet{
	&fallbackKernels,
	&sse42Kernels,
	&avx2Kernels,
	&avx512Kernels,
	&neonKernels,
	&wasmKernels,
}

func activeKernels() *kernelSet {
	return kernelsByLevel[Active()]
}

// slideAcross shifts the window [b, a] down by shift lanes: result lane
// i is lane i+shift of the 2N-lane concatenation with b in the low
// half. shift == 0 returns b's bytes and shift >= N returns b's bytes
// as well; the saturated case never reaches the block arithmetic.
func slideAcross(k *kernelSet, a, b []byte, shift, elemSize int) []byte {
	numLanes := len(b) / elemSize
	if shift <= 0 || shift >= numLanes {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	// Byte offset of the window start, split into whole 16-byte blocks
	// and a remainder. Result block i spans bytes [16q+r+16i, +16) of
	// the concatenated byte string, which is block q+i shifted right
	// by r with block q+i+1 filling the top.
	sigma := shift * elemSize
	q, r := sigma/16, sigma%16
	nb := len(b) / 16
	concat := make([][]byte, 0, 2*nb)
	for i := 0; i < nb; i++ {
		concat = append(concat, b[i*16:(i+1)*16])
	}
	for i := 0; i < nb; i++ {
		concat = append(concat, a[i*16:(i+1)*16])
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < nb; i++ {
		out = append(out, k.slide128(concat[q+i+1], concat[q+i], r)...)
	}
	return out
}

// slideWithinBlocks applies the slide independently inside each
// 16-byte block: block i of the result is a window over [b block i,
// a block i]. Shifts at or beyond the block's lane count leave every
// b block unchanged.
func slideWithinBlocks(k *kernelSet, a, b []byte, shift, elemSize int) []byte {
	blockLanes := 16 / elemSize
	if shift <= 0 || shift >= blockLanes {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	r := shift * elemSize
	out := make([]byte, 0, len(b))
	for off := 0; off < len(b); off += 16 {
		out = append(out, k.slide128(a[off:off+16], b[off:off+16], r)...)
	}
	return out
}

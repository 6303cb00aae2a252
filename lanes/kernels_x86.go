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

import (
	"math"

	"github.com/veclane/go-lanes/lanes/inst/x86"
)

// x86 kernels. SSE4.2 works in 128-bit registers, so wider vectors
// decompose through the generic half-width rules. AVX2 doubles the
// register but keeps unpacks split into two independent 128-bit lanes;
// full-vector semantics need a cross-lane permute after the in-lane
// unpack. AVX-512 reuses the AVX2 shuffle shapes, decomposing 512-bit
// shuffles to the 256-bit path, and swaps the unsigned conversion
// tricks for the native instructions.

var (
	sse42Kernels  kernelSet
	avx2Kernels   kernelSet
	avx512Kernels kernelSet
)

// Assigned in init rather than in the declarations: the fallback paths of
// the shuffle functions below refer back to these variables, which would
// otherwise be initialization cycles.
func init() {
	sse42Kernels = kernelSet{
		name:      "sse4.2",
		zipLow:    sseZipLow,
		zipHigh:   sseZipHigh,
		unzipLow:  sseUnzipLow,
		unzipHigh: sseUnzipHigh,

		selectBits: sseSelectBits,
		slide128:   x86.Palignr,
		maskAny:    x86MaskAny,
		maskAll:    x86MaskAll,

		// x86 has no structure loads; generated code lowers these through
		// unpack chains that land on the reference permutation.
		loadInterleaved4:  scalarLoadInterleaved4,
		storeInterleaved4: scalarStoreInterleaved4,

		widenU8:   sseWidenU8,
		narrowU16: x86NarrowU16,

		cvtF32ToU32:        sseCvtF32ToU32,
		cvtF32ToU32Precise: sseCvtF32ToU32Precise,
		cvtF32ToI32:        x86CvtF32ToI32,
		cvtF32ToI32Precise: x86CvtF32ToI32Precise,
		cvtU32ToF32:        sseCvtU32ToF32,
		cvtI32ToF32:        x86CvtI32ToF32,
	}

	avx2Kernels = kernelSet{
		name:      "avx2",
		zipLow:    avx2ZipLow,
		zipHigh:   avx2ZipHigh,
		unzipLow:  avx2UnzipLow,
		unzipHigh: avx2UnzipHigh,

		selectBits: sseSelectBits,
		slide128:   x86.Palignr,
		maskAny:    x86MaskAny,
		maskAll:    x86MaskAll,

		loadInterleaved4:  scalarLoadInterleaved4,
		storeInterleaved4: scalarStoreInterleaved4,

		widenU8:   avx2WidenU8,
		narrowU16: x86NarrowU16,

		// AVX2 still lacks unsigned conversions.
		cvtF32ToU32:        sseCvtF32ToU32,
		cvtF32ToU32Precise: sseCvtF32ToU32Precise,
		cvtF32ToI32:        x86CvtF32ToI32,
		cvtF32ToI32Precise: x86CvtF32ToI32Precise,
		cvtU32ToF32:        sseCvtU32ToF32,
		cvtI32ToF32:        x86CvtI32ToF32,
	}

	avx512Kernels = kernelSet{
		name:      "avx512",
		zipLow:    avx512ZipLow,
		zipHigh:   avx512ZipHigh,
		unzipLow:  avx512UnzipLow,
		unzipHigh: avx512UnzipHigh,

		selectBits: avx512SelectBits,
		slide128:   x86.Palignr,
		maskAny:    x86MaskAny,
		maskAll:    x86MaskAll,

		loadInterleaved4:  scalarLoadInterleaved4,
		storeInterleaved4: scalarStoreInterleaved4,

		widenU8:   avx512WidenU8,
		narrowU16: x86NarrowU16,

		cvtF32ToU32:        avx512CvtF32ToU32,
		cvtF32ToU32Precise: avx512CvtF32ToU32Precise,
		cvtF32ToI32:        x86CvtF32ToI32,
		cvtF32ToI32Precise: x86CvtF32ToI32Precise,
		cvtU32ToF32:        avx512CvtU32ToF32,
		cvtI32ToF32:        x86CvtI32ToF32,
	}
}

const twoPow31f = 2147483648.0

func sseZipLow(a, b []byte, elemSize int) []byte {
	if len(a) == 16 {
		return x86.Punpckl(a, b, elemSize)
	}
	return genericZipLow(&sse42Kernels, a, b, elemSize)
}

func sseZipHigh(a, b []byte, elemSize int) []byte {
	if len(a) == 16 {
		return x86.Punpckh(a, b, elemSize)
	}
	return genericZipHigh(&sse42Kernels, a, b, elemSize)
}

func sseUnzipLow(a, b []byte, elemSize int) []byte {
	if len(a) != 16 {
		return genericUnzipLow(&sse42Kernels, a, b, elemSize)
	}
	// PSHUFB gathers the even elements of each operand into its low
	// eight bytes; PUNPCKLQDQ pairs the two halves.
	ta := x86.Pshufb(a, unzipShuffleIdx(elemSize, 0))
	tb := x86.Pshufb(b, unzipShuffleIdx(elemSize, 0))
	return x86.Punpckl(ta, tb, 8)
}

func sseUnzipHigh(a, b []byte, elemSize int) []byte {
	if len(a) != 16 {
		return genericUnzipHigh(&sse42Kernels, a, b, elemSize)
	}
	ta := x86.Pshufb(a, unzipShuffleIdx(elemSize, 1))
	tb := x86.Pshufb(b, unzipShuffleIdx(elemSize, 1))
	return x86.Punpckl(ta, tb, 8)
}

// unzipShuffleIdx builds the PSHUFB control that gathers every second
// element, starting at start, into the low eight bytes and zeroes the
// rest.
func unzipShuffleIdx(elemSize, start int) []byte {
	idx := make([]byte, 16)
	pos := 0
	for e := start; e*elemSize < 16; e += 2 {
		for k := 0; k < elemSize; k++ {
			idx[pos] = byte(e*elemSize + k)
			pos++
		}
	}
	for ; pos < 16; pos++ {
		idx[pos] = 0x80
	}
	return idx
}

func avx2ZipLow(a, b []byte, elemSize int) []byte {
	switch len(a) {
	case 16:
		return x86.Punpckl(a, b, elemSize)
	case 32:
		// VPUNPCK* interleaves within each 128-bit lane; VPERM2I128
		// rebuilds the full-vector zip from the lane pairs.
		lo := perLane128(x86.Punpckl, a, b, elemSize)
		hi := perLane128(x86.Punpckh, a, b, elemSize)
		return x86.Vperm2i128(lo, hi, 0x20)
	}
	return genericZipLow(&avx2Kernels, a, b, elemSize)
}

func avx2ZipHigh(a, b []byte, elemSize int) []byte {
	switch len(a) {
	case 16:
		return x86.Punpckh(a, b, elemSize)
	case 32:
		lo := perLane128(x86.Punpckl, a, b, elemSize)
		hi := perLane128(x86.Punpckh, a, b, elemSize)
		return x86.Vperm2i128(lo, hi, 0x31)
	}
	return genericZipHigh(&avx2Kernels, a, b, elemSize)
}

func avx2UnzipLow(a, b []byte, elemSize int) []byte {
	if len(a) == 16 {
		return sseUnzipLow(a, b, elemSize)
	}
	return genericUnzipLow(&avx2Kernels, a, b, elemSize)
}

func avx2UnzipHigh(a, b []byte, elemSize int) []byte {
	if len(a) == 16 {
		return sseUnzipHigh(a, b, elemSize)
	}
	return genericUnzipHigh(&avx2Kernels, a, b, elemSize)
}

func avx512ZipLow(a, b []byte, elemSize int) []byte {
	if len(a) <= 32 {
		return avx2ZipLow(a, b, elemSize)
	}
	return genericZipLow(&avx512Kernels, a, b, elemSize)
}

func avx512ZipHigh(a, b []byte, elemSize int) []byte {
	if len(a) <= 32 {
		return avx2ZipHigh(a, b, elemSize)
	}
	return genericZipHigh(&avx512Kernels, a, b, elemSize)
}

func avx512UnzipLow(a, b []byte, elemSize int) []byte {
	if len(a) <= 32 {
		return avx2UnzipLow(a, b, elemSize)
	}
	return genericUnzipLow(&avx512Kernels, a, b, elemSize)
}

func avx512UnzipHigh(a, b []byte, elemSize int) []byte {
	if len(a) <= 32 {
		return avx2UnzipHigh(a, b, elemSize)
	}
	return genericUnzipHigh(&avx512Kernels, a, b, elemSize)
}

// perLane128 applies a 128-bit operation to each lane pair of two
// equal-width vectors.
func perLane128(f func(a, b []byte, elemSize int) []byte, a, b []byte, elemSize int) []byte {
	out := make([]byte, 0, len(a))
	for off := 0; off < len(a); off += 16 {
		out = append(out, f(a[off:off+16], b[off:off+16], elemSize)...)
	}
	return out
}

func sseSelectBits(m, a, b []byte) []byte {
	// PBLENDVB keys on each mask byte's high bit, which canonical
	// masks set exactly on true lanes. Operands swap because BLENDV
	// takes the false source first.
	return x86.Blendvb(b, a, m)
}

func avx512SelectBits(m, a, b []byte) []byte {
	// VPTERNLOGD with truth table 0xCA is the one-instruction bitwise
	// select.
	return x86.Vpternlogd(m, a, b, 0xCA)
}

func x86MaskAny(m []byte, _ int) bool {
	// PMOVMSKB sees only byte high bits; canonical masks keep them in
	// every byte of a true lane.
	for off := 0; off < len(m); off += 16 {
		if x86.Pmovmskb(m[off:off+16]) != 0 {
			return true
		}
	}
	return false
}

func x86MaskAll(m []byte, _ int) bool {
	for off := 0; off < len(m); off += 16 {
		if x86.Pmovmskb(m[off:off+16]) != 0xFFFF {
			return false
		}
	}
	return true
}

func sseWidenU8(src []uint8) []uint16 {
	// PMOVZXBW reads eight bytes at a time; the high half of each
	// register goes through a byte shift first.
	out := make([]uint16, 0, len(src))
	for off := 0; off < len(src); off += 8 {
		out = append(out, x86.Pmovzxbw(src[off:off+8])...)
	}
	return out
}

func avx2WidenU8(src []uint8) []uint16 {
	// VPMOVZXBW widens a full 16-byte half-register at once.
	out := make([]uint16, 0, len(src))
	for off := 0; off < len(src); off += 16 {
		out = append(out, x86.Pmovzxbw(src[off:off+16])...)
	}
	return out
}

func avx512WidenU8(src []uint8) []uint16 {
	return x86.Pmovzxbw(src)
}

func x86NarrowU16(src []uint16) []uint8 {
	// Masking to the low byte first turns PACKUSWB's unsigned
	// saturation into plain truncation. The 256- and 512-bit forms
	// pack in-lane and repair the order with VPERMQ; the bytes come
	// out the same.
	masked := make([]uint16, len(src))
	for i, w := range src {
		masked[i] = w & 0xFF
	}
	out := make([]uint8, 0, len(src))
	for off := 0; off < len(masked); off += 16 {
		out = append(out, x86.Packuswb(masked[off:off+8], masked[off+8:off+16])...)
	}
	return out
}

func x86CvtF32ToI32(src []float32) []int32 {
	return x86.Cvttps2dq(src)
}

func x86CvtF32ToI32Precise(src []float32) []int32 {
	// CVTTPS2DQ already lands negative overflow on the int32 minimum;
	// only the high side and NaN need repair.
	conv := x86.Cvttps2dq(src)
	big := x86.CmpgePs(src, splatF32(len(src), twoPow31f))
	ord := x86.CmpordPs(src, src)
	out := make([]int32, len(src))
	for i := range src {
		v := conv[i]
		if big[i] != 0 {
			v = math.MaxInt32
		}
		if ord[i] == 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}

func sseCvtF32ToU32(src []float32) []uint32 {
	// There is no unsigned conversion below AVX-512: lanes under 2^31
	// convert directly, the rest convert a - 2^31 and add the offset
	// back in integer space.
	small := x86.CmpltPs(src, splatF32(len(src), twoPow31f))
	adjusted := make([]float32, len(src))
	for i, x := range src {
		if small[i] != 0 {
			adjusted[i] = x
		} else {
			adjusted[i] = x - twoPow31f
		}
	}
	conv := x86.Cvttps2dq(adjusted)
	out := make([]uint32, len(src))
	for i, v := range conv {
		out[i] = uint32(v)
		if small[i] == 0 {
			out[i] += 0x80000000
		}
	}
	return out
}

func sseCvtF32ToU32Precise(src []float32) []uint32 {
	// MAXPS against zero resolves NaN to its second source, so the
	// clamp also launders NaN to 0. Anything past the largest in-range
	// float32 saturates afterward.
	clamped := x86.MaxPs(src, make([]float32, len(src)))
	conv := sseCvtF32ToU32(clamped)
	big := x86.CmpltPs(splatF32(len(src), 4294967040.0), clamped)
	out := make([]uint32, len(src))
	for i := range src {
		if big[i] != 0 {
			out[i] = math.MaxUint32
		} else {
			out[i] = conv[i]
		}
	}
	return out
}

func avx512CvtF32ToU32(src []float32) []uint32 {
	return x86.Cvttps2udq(src)
}

func avx512CvtF32ToU32Precise(src []float32) []uint32 {
	// VCVTTPS2UDQ already saturates high overflow to the 0xFFFFFFFF
	// indefinite; clamping at zero first turns NaN and negative lanes
	// into 0.
	return x86.Cvttps2udq(x86.MaxPs(src, make([]float32, len(src))))
}

func sseCvtU32ToF32(src []uint32) []float32 {
	// Split each value into 16-bit halves biased into float range:
	// PBLENDW builds 2^23 + lo, PSRLD and POR build 2^39 + hi*2^16,
	// and one subtract plus one add reassemble the value with a single
	// rounding. Patterns 0x4B000000, 0x53000000 and 0x53000080 are
	// 2^23, 2^39 and 2^39 + 2^23.
	out := make([]float32, len(src))
	for i, u := range src {
		lo := math.Float32frombits(0x4B000000 | u&0xFFFF)
		hi := math.Float32frombits(0x53000000 | u>>16)
		out[i] = hi - math.Float32frombits(0x53000080) + lo
	}
	return out
}

func avx512CvtU32ToF32(src []uint32) []float32 {
	return x86.Cvtudq2ps(src)
}

func x86CvtI32ToF32(src []int32) []float32 {
	return x86.Cvtdq2ps(src)
}

func splatF32(n int, x float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = x
	}
	return out
}

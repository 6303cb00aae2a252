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

import "math"

// The fallback kernels are plain scalar loops carrying the reference
// semantics. Every accelerated kernel set must produce these exact
// bytes for canonical inputs; the backend equality tests enforce that.

var fallbackKernels = kernelSet{
	name:      "fallback",
	zipLow:    scalarZipLow,
	zipHigh:   scalarZipHigh,
	unzipLow:  func(a, b []byte, elemSize int) []byte { return scalarUnzip(a, b, elemSize, 0) },
	unzipHigh: func(a, b []byte, elemSize int) []byte { return scalarUnzip(a, b, elemSize, 1) },

	selectBits: scalarSelectBits,
	slide128:   scalarSlide128,
	maskAny:    scalarMaskAny,
	maskAll:    scalarMaskAll,

	loadInterleaved4:  scalarLoadInterleaved4,
	storeInterleaved4: scalarStoreInterleaved4,

	widenU8:   scalarWidenU8,
	narrowU16: scalarNarrowU16,

	// The portable conversion is the saturating one, so the fast and
	// precise forms coincide here.
	cvtF32ToU32:        scalarCvtF32ToU32,
	cvtF32ToU32Precise: scalarCvtF32ToU32,
	cvtF32ToI32:        scalarCvtF32ToI32,
	cvtF32ToI32Precise: scalarCvtF32ToI32,
	cvtU32ToF32:        scalarCvtU32ToF32,
	cvtI32ToF32:        scalarCvtI32ToF32,
}

func scalarZipLow(a, b []byte, elemSize int) []byte {
	n := len(a) / elemSize
	out := make([]byte, 0, len(a))
	for i := 0; i < n/2; i++ {
		out = append(out, a[i*elemSize:(i+1)*elemSize]...)
		out = append(out, b[i*elemSize:(i+1)*elemSize]...)
	}
	return out
}

func scalarZipHigh(a, b []byte, elemSize int) []byte {
	n := len(a) / elemSize
	out := make([]byte, 0, len(a))
	for i := n / 2; i < n; i++ {
		out = append(out, a[i*elemSize:(i+1)*elemSize]...)
		out = append(out, b[i*elemSize:(i+1)*elemSize]...)
	}
	return out
}

// scalarUnzip gathers every second element of the concatenation [a, b]
// starting at index start (0 for the evens, 1 for the odds).
func scalarUnzip(a, b []byte, elemSize, start int) []byte {
	out := make([]byte, 0, len(a))
	for off := start * elemSize; off < len(a); off += 2 * elemSize {
		out = append(out, a[off:off+elemSize]...)
	}
	for off := start * elemSize; off < len(b); off += 2 * elemSize {
		out = append(out, b[off:off+elemSize]...)
	}
	return out
}

func scalarSelectBits(m, a, b []byte) []byte {
	out := make([]byte, len(m))
	for i := range m {
		out[i] = m[i]&a[i] | ^m[i]&b[i]
	}
	return out
}

func scalarSlide128(hi, lo []byte, r int) []byte {
	out := make([]byte, 0, 16)
	out = append(out, lo[r:]...)
	out = append(out, hi[:r]...)
	return out
}

func scalarMaskAny(m []byte, elemSize int) bool {
	for off := 0; off < len(m); off += elemSize {
		if laneNonZero(m[off : off+elemSize]) {
			return true
		}
	}
	return false
}

func scalarMaskAll(m []byte, elemSize int) bool {
	for off := 0; off < len(m); off += elemSize {
		if !laneNonZero(m[off : off+elemSize]) {
			return false
		}
	}
	return true
}

func laneNonZero(lane []byte) bool {
	for _, b := range lane {
		if b != 0 {
			return true
		}
	}
	return false
}

// scalarLoadInterleaved4 de-interleaves four streams: source element i
// becomes element i/4 of stream i%4, and stream k fills the k-th
// quarter (one 128-bit block) of the result.
func scalarLoadInterleaved4(src []byte, elemSize int) []byte {
	out := make([]byte, len(src))
	n := len(src) / elemSize
	per := n / 4
	for i := 0; i < n; i++ {
		stream, j := i%4, i/4
		copy(out[(stream*per+j)*elemSize:], src[i*elemSize:(i+1)*elemSize])
	}
	return out
}

func scalarStoreInterleaved4(src []byte, elemSize int) []byte {
	out := make([]byte, len(src))
	n := len(src) / elemSize
	per := n / 4
	for i := 0; i < n; i++ {
		stream, j := i%4, i/4
		copy(out[i*elemSize:(i+1)*elemSize], src[(stream*per+j)*elemSize:])
	}
	return out
}

func scalarWidenU8(src []uint8) []uint16 {
	out := make([]uint16, len(src))
	for i, x := range src {
		out[i] = uint16(x)
	}
	return out
}

func scalarNarrowU16(src []uint16) []uint8 {
	out := make([]uint8, len(src))
	for i, x := range src {
		out[i] = uint8(x)
	}
	return out
}

func scalarCvtF32ToU32(src []float32) []uint32 {
	out := make([]uint32, len(src))
	for i, x := range src {
		out[i] = satF32ToU32(x)
	}
	return out
}

func scalarCvtF32ToI32(src []float32) []int32 {
	out := make([]int32, len(src))
	for i, x := range src {
		out[i] = satF32ToI32(x)
	}
	return out
}

func scalarCvtU32ToF32(src []uint32) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}

func scalarCvtI32ToF32(src []int32) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}

// satF32ToU32 truncates toward zero with saturation; NaN maps to 0.
// 2^32 is exactly representable, so x >= 2^32 covers every value past
// the largest in-range float32 (4294967040).
func satF32ToU32(x float32) uint32 {
	switch {
	case x != x:
		return 0
	case x <= 0:
		return 0
	case x >= 4294967296.0:
		return math.MaxUint32
	}
	return uint32(x)
}

func satF32ToI32(x float32) int32 {
	switch {
	case x != x:
		return 0
	case x <= math.MinInt32:
		return math.MinInt32
	case x >= 2147483648.0:
		return math.MaxInt32
	}
	return int32(x)
}

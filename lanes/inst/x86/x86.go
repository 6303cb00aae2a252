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

// Package x86 models the SSE/AVX instructions the lane kernels build
// on, bit-exactly but in plain Go. Each function covers one
// instruction, or one 128-bit lane of its wider forms; callers compose
// lanes and cross-lane permutes the way generated intrinsics code
// does. Edge behavior follows the Intel SDM: truncating float-to-int
// conversions produce the integer indefinite sentinel when the result
// is unrepresentable, and MAXPS resolves NaN and equal-zero cases to
// its second source.
package x86

import "math"

// Punpckl interleaves elements from the low halves of two 16-byte
// lanes (PUNPCKLBW/WD/DQ/QDQ, one lane of the VPUNPCKL* forms).
func Punpckl(a, b []byte, elemSize int) []byte {
	out := make([]byte, 0, 16)
	for off := 0; off < 8; off += elemSize {
		out = append(out, a[off:off+elemSize]...)
		out = append(out, b[off:off+elemSize]...)
	}
	return out
}

// Punpckh interleaves elements from the high halves of two 16-byte
// lanes (PUNPCKHBW/WD/DQ/QDQ).
func Punpckh(a, b []byte, elemSize int) []byte {
	out := make([]byte, 0, 16)
	for off := 8; off < 16; off += elemSize {
		out = append(out, a[off:off+elemSize]...)
		out = append(out, b[off:off+elemSize]...)
	}
	return out
}

// Pshufb permutes the 16 bytes of v by idx (PSHUFB): result byte i is
// v[idx[i]&0x0F], or zero when idx[i] has its high bit set.
func Pshufb(v, idx []byte) []byte {
	out := make([]byte, 16)
	for i := 0; i < 16; i++ {
		if idx[i]&0x80 == 0 {
			out[i] = v[idx[i]&0x0F]
		}
	}
	return out
}

// Palignr extracts a 16-byte window from the concatenation [lo, hi]
// starting r bytes in (PALIGNR hi, lo, r).
func Palignr(hi, lo []byte, r int) []byte {
	out := make([]byte, 0, 16)
	out = append(out, lo[r:]...)
	out = append(out, hi[:r]...)
	return out
}

// Blendvb picks per byte between a and b under the high bit of the
// mask byte (PBLENDVB): result byte i is b[i] when m[i] bit 7 is set,
// a[i] otherwise. Operand order matches _mm_blendv_epi8(a, b, m).
func Blendvb(a, b, m []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		if m[i]&0x80 != 0 {
			out[i] = b[i]
		} else {
			out[i] = a[i]
		}
	}
	return out
}

// Vperm2i128 assembles a 32-byte result from the 128-bit lanes of a
// and b (VPERM2I128): imm bits 1:0 select the low result lane, bits
// 5:4 the high lane (0 a.lo, 1 a.hi, 2 b.lo, 3 b.hi); bits 3 and 7
// zero the lane instead.
func Vperm2i128(a, b []byte, imm int) []byte {
	pick := func(sel int, zero bool) []byte {
		if zero {
			return make([]byte, 16)
		}
		switch sel & 3 {
		case 0:
			return a[:16]
		case 1:
			return a[16:32]
		case 2:
			return b[:16]
		default:
			return b[16:32]
		}
	}
	out := make([]byte, 0, 32)
	out = append(out, pick(imm, imm&0x08 != 0)...)
	out = append(out, pick(imm>>4, imm&0x80 != 0)...)
	return out
}

// Vpternlogd combines three operands bit by bit through an 8-entry
// truth table (VPTERNLOGD): for each bit position, the result bit is
// imm[a<<2 | b<<1 | c]. Immediate 0xCA computes the bitwise select
// a ? b : c.
func Vpternlogd(a, b, c []byte, imm uint8) []byte {
	out := make([]byte, len(a))
	for i := range a {
		var r byte
		for bit := 0; bit < 8; bit++ {
			idx := (a[i]>>bit&1)<<2 | (b[i]>>bit&1)<<1 | c[i]>>bit&1
			r |= (imm >> idx & 1) << bit
		}
		out[i] = r
	}
	return out
}

// Pmovmskb gathers the high bit of each byte into an integer bitmask
// (PMOVMSKB).
func Pmovmskb(v []byte) int {
	mask := 0
	for i, b := range v {
		if b&0x80 != 0 {
			mask |= 1 << i
		}
	}
	return mask
}

// Packuswb narrows signed words to unsigned bytes with saturation
// (PACKUSWB): each input word is read as int16 and clamped to
// [0, 255]. The two 8-word operands produce the low and high result
// halves.
func Packuswb(a, b []uint16) []uint8 {
	out := make([]uint8, 0, len(a)+len(b))
	sat := func(w uint16) uint8 {
		s := int16(w)
		if s < 0 {
			return 0
		}
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	for _, w := range a {
		out = append(out, sat(w))
	}
	for _, w := range b {
		out = append(out, sat(w))
	}
	return out
}

// Pmovzxbw zero-extends each source byte to a word (the PMOVZXBW /
// VPMOVZXBW family; the caller passes exactly the bytes the register
// form would consume).
func Pmovzxbw(src []byte) []uint16 {
	out := make([]uint16, len(src))
	for i, b := range src {
		out[i] = uint16(b)
	}
	return out
}

// Cvttps2dq truncates float32 lanes toward zero to int32 (CVTTPS2DQ).
// NaN and out-of-range values produce the integer indefinite
// 0x80000000; negative overflow lands on the same bits as int32
// saturation would.
func Cvttps2dq(src []float32) []int32 {
	out := make([]int32, len(src))
	for i, x := range src {
		switch {
		case x != x, x >= 2147483648.0, x < -2147483648.0:
			out[i] = math.MinInt32
		default:
			out[i] = int32(x)
		}
	}
	return out
}

// Cvttps2udq truncates float32 lanes toward zero to uint32
// (VCVTTPS2UDQ, AVX-512). Values that truncate outside [0, 2^32)
// and NaN produce the indefinite 0xFFFFFFFF; fractions in (-1, 0)
// truncate to zero and are representable.
func Cvttps2udq(src []float32) []uint32 {
	out := make([]uint32, len(src))
	for i, x := range src {
		switch {
		case x != x, x >= 4294967296.0, x <= -1.0:
			out[i] = math.MaxUint32
		case x < 0:
			out[i] = 0
		default:
			out[i] = uint32(x)
		}
	}
	return out
}

// Cvtdq2ps converts int32 lanes to float32 with round-to-nearest-even
// (CVTDQ2PS).
func Cvtdq2ps(src []int32) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}

// Cvtudq2ps converts uint32 lanes to float32 (VCVTUDQ2PS, AVX-512).
func Cvtudq2ps(src []uint32) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}

// MaxPs is the MAXPS lane rule: a[i] > b[i] picks a[i], everything
// else — including NaN operands and equal zeros of either sign —
// picks b[i], the second source.
func MaxPs(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// CmpltPs compares a < b per lane (CMPPS predicate LT_OS), producing
// all-ones for true and zero for false; unordered compares are false.
func CmpltPs(a, b []float32) []uint32 {
	out := make([]uint32, len(a))
	for i := range a {
		if a[i] < b[i] {
			out[i] = ^uint32(0)
		}
	}
	return out
}

// CmpgePs compares a >= b per lane (CMPPS predicate GE_OS); unordered
// compares are false.
func CmpgePs(a, b []float32) []uint32 {
	out := make([]uint32, len(a))
	for i := range a {
		if a[i] >= b[i] {
			out[i] = ^uint32(0)
		}
	}
	return out
}

// CmpordPs produces all-ones where neither a nor b is NaN (CMPPS
// predicate ORD_Q).
func CmpordPs(a, b []float32) []uint32 {
	out := make([]uint32, len(a))
	for i := range a {
		if a[i] == a[i] && b[i] == b[i] {
			out[i] = ^uint32(0)
		}
	}
	return out
}

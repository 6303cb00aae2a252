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

// Package neon models the AArch64 Advanced SIMD instructions the lane
// kernels build on, in plain Go. NEON permutes operate on whole
// 128-bit registers with no in-lane split, and its float-to-int
// conversions saturate natively with NaN mapping to zero, which keeps
// the kernel compositions here much shorter than their x86
// counterparts.
package neon

// Vzip1 interleaves the low halves of two 16-byte registers (ZIP1).
func Vzip1(a, b []byte, elemSize int) []byte {
	out := make([]byte, 0, 16)
	for off := 0; off < 8; off += elemSize {
		out = append(out, a[off:off+elemSize]...)
		out = append(out, b[off:off+elemSize]...)
	}
	return out
}

// Vzip2 interleaves the high halves of two 16-byte registers (ZIP2).
func Vzip2(a, b []byte, elemSize int) []byte {
	out := make([]byte, 0, 16)
	for off := 8; off < 16; off += elemSize {
		out = append(out, a[off:off+elemSize]...)
		out = append(out, b[off:off+elemSize]...)
	}
	return out
}

// Vuzp1 gathers the even-indexed elements of the concatenation [a, b]
// (UZP1).
func Vuzp1(a, b []byte, elemSize int) []byte {
	return vuzp(a, b, elemSize, 0)
}

// Vuzp2 gathers the odd-indexed elements of the concatenation [a, b]
// (UZP2).
func Vuzp2(a, b []byte, elemSize int) []byte {
	return vuzp(a, b, elemSize, 1)
}

func vuzp(a, b []byte, elemSize, start int) []byte {
	out := make([]byte, 0, 16)
	for off := start * elemSize; off < 16; off += 2 * elemSize {
		out = append(out, a[off:off+elemSize]...)
	}
	for off := start * elemSize; off < 16; off += 2 * elemSize {
		out = append(out, b[off:off+elemSize]...)
	}
	return out
}

// Vext extracts a 16-byte window from the concatenation [a, b]
// starting r bytes into a (EXT).
func Vext(a, b []byte, r int) []byte {
	out := make([]byte, 0, 16)
	out = append(out, a[r:]...)
	out = append(out, b[:r]...)
	return out
}

// Vbsl selects bits from a where the mask bit is set and from b where
// it is clear (BSL).
func Vbsl(m, a, b []byte) []byte {
	out := make([]byte, len(m))
	for i := range m {
		out[i] = m[i]&a[i] | ^m[i]&b[i]
	}
	return out
}

// VmaxvU8 reduces a register to its maximum byte (UMAXV).
func VmaxvU8(v []byte) uint8 {
	m := v[0]
	for _, b := range v[1:] {
		if b > m {
			m = b
		}
	}
	return m
}

// VminvU8 reduces a register to its minimum byte (UMINV).
func VminvU8(v []byte) uint8 {
	m := v[0]
	for _, b := range v[1:] {
		if b < m {
			m = b
		}
	}
	return m
}

// VmovnU16 narrows words to bytes, keeping the low half of each lane
// (XTN); values wrap modulo 256.
func VmovnU16(src []uint16) []uint8 {
	out := make([]uint8, len(src))
	for i, w := range src {
		out[i] = uint8(w)
	}
	return out
}

// VmovlU8 widens bytes to words with zero extension (UXTL).
func VmovlU8(src []uint8) []uint16 {
	out := make([]uint16, len(src))
	for i, b := range src {
		out[i] = uint16(b)
	}
	return out
}

// VcvtU32F32 converts float32 lanes to uint32, truncating toward zero
// with saturation (FCVTZU); NaN converts to 0.
func VcvtU32F32(src []float32) []uint32 {
	out := make([]uint32, len(src))
	for i, x := range src {
		switch {
		case x != x, x <= 0:
			out[i] = 0
		case x >= 4294967296.0:
			out[i] = ^uint32(0)
		default:
			out[i] = uint32(x)
		}
	}
	return out
}

// VcvtS32F32 converts float32 lanes to int32, truncating toward zero
// with saturation (FCVTZS); NaN converts to 0.
func VcvtS32F32(src []float32) []int32 {
	out := make([]int32, len(src))
	for i, x := range src {
		switch {
		case x != x:
			out[i] = 0
		case x <= -2147483648.0:
			out[i] = -2147483648
		case x >= 2147483648.0:
			out[i] = 2147483647
		default:
			out[i] = int32(x)
		}
	}
	return out
}

// VcvtF32U32 converts uint32 lanes to float32 with round-to-nearest-
// even (UCVTF).
func VcvtF32U32(src []uint32) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}

// VcvtF32S32 converts int32 lanes to float32 (SCVTF).
func VcvtF32S32(src []int32) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}

// Vld4 de-interleaves 64 bytes of 4-element structures into four
// consecutive 16-byte registers, one per structure field (LD4).
func Vld4(src []byte, elemSize int) []byte {
	out := make([]byte, len(src))
	n := len(src) / elemSize
	per := n / 4
	for i := 0; i < n; i++ {
		stream, j := i%4, i/4
		copy(out[(stream*per+j)*elemSize:], src[i*elemSize:(i+1)*elemSize])
	}
	return out
}

// Vst4 interleaves four consecutive 16-byte registers back into
// 4-element structures (ST4); it is the inverse of Vld4.
func Vst4(src []byte, elemSize int) []byte {
	out := make([]byte, len(src))
	n := len(src) / elemSize
	per := n / 4
	for i := 0; i < n; i++ {
		stream, j := i%4, i/4
		copy(out[i*elemSize:(i+1)*elemSize], src[(stream*per+j)*elemSize:])
	}
	return out
}

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

// Package wasm models the WebAssembly 128-bit SIMD instructions the
// lane kernels build on. The wasm SIMD proposal fixed the edge cases
// other instruction sets leave open: trunc_sat conversions saturate
// with NaN mapping to zero, and every shuffle is the fully general
// i8x16.shuffle with a 16-entry index immediate.
package wasm

// I8x16Shuffle builds a 16-byte result from the concatenation [a, b]:
// result byte i is byte idx[i] of the 32-byte concatenation
// (i8x16.shuffle). Index values must be below 32.
func I8x16Shuffle(a, b []byte, idx []byte) []byte {
	out := make([]byte, 16)
	for i, ix := range idx {
		if ix < 16 {
			out[i] = a[ix]
		} else {
			out[i] = b[ix-16]
		}
	}
	return out
}

// V128Bitselect takes bits from v1 where the control bit is set and
// from v2 where it is clear (v128.bitselect).
func V128Bitselect(v1, v2, c []byte) []byte {
	out := make([]byte, len(c))
	for i := range c {
		out[i] = c[i]&v1[i] | ^c[i]&v2[i]
	}
	return out
}

// V128And computes the bitwise conjunction (v128.and).
func V128And(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] & b[i]
	}
	return out
}

// V128AnyTrue reports whether any bit of the register is set
// (v128.any_true).
func V128AnyTrue(v []byte) bool {
	for _, b := range v {
		if b != 0 {
			return true
		}
	}
	return false
}

// AllTrue reports whether every lane of the register is non-zero
// (i8x16/i16x8/i32x4/i64x2.all_true, chosen by elemSize).
func AllTrue(v []byte, elemSize int) bool {
	for off := 0; off < len(v); off += elemSize {
		zero := true
		for _, b := range v[off : off+elemSize] {
			if b != 0 {
				zero = false
				break
			}
		}
		if zero {
			return false
		}
	}
	return true
}

// I32x4TruncSatF32x4U converts float32 lanes to uint32 with
// truncation and saturation; NaN converts to 0
// (i32x4.trunc_sat_f32x4_u).
func I32x4TruncSatF32x4U(src []float32) []uint32 {
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

// I32x4TruncSatF32x4S converts float32 lanes to int32 with truncation
// and saturation; NaN converts to 0 (i32x4.trunc_sat_f32x4_s).
func I32x4TruncSatF32x4S(src []float32) []int32 {
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

// F32x4ConvertI32x4U converts uint32 lanes to float32
// (f32x4.convert_i32x4_u).
func F32x4ConvertI32x4U(src []uint32) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}

// F32x4ConvertI32x4S converts int32 lanes to float32
// (f32x4.convert_i32x4_s).
func F32x4ConvertI32x4S(src []int32) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}

// U16x8ExtendLowU8x16 zero-extends the low eight bytes to words
// (u16x8.extend_low_u8x16).
func U16x8ExtendLowU8x16(src []uint8) []uint16 {
	out := make([]uint16, 8)
	for i := 0; i < 8; i++ {
		out[i] = uint16(src[i])
	}
	return out
}

// U16x8ExtendHighU8x16 zero-extends the high eight bytes to words
// (u16x8.extend_high_u8x16).
func U16x8ExtendHighU8x16(src []uint8) []uint16 {
	out := make([]uint16, 8)
	for i := 0; i < 8; i++ {
		out[i] = uint16(src[8+i])
	}
	return out
}

// I8x16NarrowI16x8U narrows signed words to unsigned bytes with
// saturation (i8x16.narrow_i16x8_u): each input word is read as int16
// and clamped to [0, 255].
func I8x16NarrowI16x8U(a, b []uint16) []uint8 {
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

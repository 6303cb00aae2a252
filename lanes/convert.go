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

// Float-to-integer conversions come in two flavors. The plain ConvertTo*
// functions are precise: they truncate toward zero, saturate out-of-range
// lanes to the closest representable value, and turn NaN into 0. The *Fast
// variants use each backend's native truncating conversion and make no
// promise for out-of-range or NaN lanes — every backend produces some
// value, but which one differs by instruction set.

// ConvertToUint32x4 converts float32 lanes to uint32, truncating toward
// zero; out-of-range lanes saturate and NaN becomes 0.
func ConvertToUint32x4(v Vec128[float32]) Vec128[uint32] {
	return Vec128[uint32]{v: activeKernels().cvtF32ToU32Precise(v.v)}
}

// ConvertToUint32x8 is ConvertToUint32x4 at 256 bits.
func ConvertToUint32x8(v Vec256[float32]) Vec256[uint32] {
	return Vec256[uint32]{v: activeKernels().cvtF32ToU32Precise(v.v)}
}

// ConvertToUint32x16 is ConvertToUint32x4 at 512 bits.
func ConvertToUint32x16(v Vec512[float32]) Vec512[uint32] {
	return Vec512[uint32]{v: activeKernels().cvtF32ToU32Precise(v.v)}
}

// ConvertToUint32x4Fast converts float32 lanes to uint32 with the native
// truncating conversion; out-of-range and NaN lane results are unspecified.
func ConvertToUint32x4Fast(v Vec128[float32]) Vec128[uint32] {
	return Vec128[uint32]{v: activeKernels().cvtF32ToU32(v.v)}
}

// ConvertToUint32x8Fast is ConvertToUint32x4Fast at 256 bits.
func ConvertToUint32x8Fast(v Vec256[float32]) Vec256[uint32] {
	return Vec256[uint32]{v: activeKernels().cvtF32ToU32(v.v)}
}

// ConvertToUint32x16Fast is ConvertToUint32x4Fast at 512 bits.
func ConvertToUint32x16Fast(v Vec512[float32]) Vec512[uint32] {
	return Vec512[uint32]{v: activeKernels().cvtF32ToU32(v.v)}
}

// ConvertToInt32x4 converts float32 lanes to int32, truncating toward
// zero; out-of-range lanes saturate and NaN becomes 0.
func ConvertToInt32x4(v Vec128[float32]) Vec128[int32] {
	return Vec128[int32]{v: activeKernels().cvtF32ToI32Precise(v.v)}
}

// ConvertToInt32x8 is ConvertToInt32x4 at 256 bits.
func ConvertToInt32x8(v Vec256[float32]) Vec256[int32] {
	return Vec256[int32]{v: activeKernels().cvtF32ToI32Precise(v.v)}
}

// ConvertToInt32x16 is ConvertToInt32x4 at 512 bits.
func ConvertToInt32x16(v Vec512[float32]) Vec512[int32] {
	return Vec512[int32]{v: activeKernels().cvtF32ToI32Precise(v.v)}
}

// ConvertToInt32x4Fast converts float32 lanes to int32 with the native
// truncating conversion; out-of-range and NaN lane results are unspecified.
func ConvertToInt32x4Fast(v Vec128[float32]) Vec128[int32] {
	return Vec128[int32]{v: activeKernels().cvtF32ToI32(v.v)}
}

// ConvertToInt32x8Fast is ConvertToInt32x4Fast at 256 bits.
func ConvertToInt32x8Fast(v Vec256[float32]) Vec256[int32] {
	return Vec256[int32]{v: activeKernels().cvtF32ToI32(v.v)}
}

// ConvertToInt32x16Fast is ConvertToInt32x4Fast at 512 bits.
func ConvertToInt32x16Fast(v Vec512[float32]) Vec512[int32] {
	return Vec512[int32]{v: activeKernels().cvtF32ToI32(v.v)}
}

// ConvertToFloat32x4 converts int32 or uint32 lanes to float32, rounding
// to nearest even where the value is not exactly representable.
func ConvertToFloat32x4[T ~int32 | ~uint32](v Vec128[T]) Vec128[float32] {
	return Vec128[float32]{v: cvtToF32(v.v)}
}

// ConvertToFloat32x8 is ConvertToFloat32x4 at 256 bits.
func ConvertToFloat32x8[T ~int32 | ~uint32](v Vec256[T]) Vec256[float32] {
	return Vec256[float32]{v: cvtToF32(v.v)}
}

// ConvertToFloat32x16 is ConvertToFloat32x4 at 512 bits.
func ConvertToFloat32x16[T ~int32 | ~uint32](v Vec512[T]) Vec512[float32] {
	return Vec512[float32]{v: cvtToF32(v.v)}
}

func cvtToF32[T ~int32 | ~uint32](src []T) []float32 {
	k := activeKernels()
	if isSignedLane[T]() {
		s := make([]int32, len(src))
		for i, x := range src {
			s[i] = int32(x)
		}
		return k.cvtI32ToF32(s)
	}
	u := make([]uint32, len(src))
	for i, x := range src {
		u[i] = uint32(x)
	}
	return k.cvtU32ToF32(u)
}

// isSignedLane reports whether T is a signed lane type: decrementing zero
// goes negative rather than wrapping to the maximum.
func isSignedLane[T Lanes]() bool {
	var x T
	x--
	return x < 0
}

// BitCastToU8x16 reinterprets any 128-bit vector as 16 bytes.
// The total bit width is preserved; only the lane shape changes.
func BitCastToU8x16[T Lanes](v Vec128[T]) Vec128[uint8] {
	return Vec128[uint8]{v: lanesFromBytes[uint8](lanesToBytes(v.v))}
}

// BitCastToU8x32 is BitCastToU8x16 at 256 bits.
func BitCastToU8x32[T Lanes](v Vec256[T]) Vec256[uint8] {
	return Vec256[uint8]{v: lanesFromBytes[uint8](lanesToBytes(v.v))}
}

// BitCastToU8x64 is BitCastToU8x16 at 512 bits.
func BitCastToU8x64[T Lanes](v Vec512[T]) Vec512[uint8] {
	return Vec512[uint8]{v: lanesFromBytes[uint8](lanesToBytes(v.v))}
}

// BitCastToU32x4 reinterprets any 128-bit vector as four uint32 lanes.
func BitCastToU32x4[T Lanes](v Vec128[T]) Vec128[uint32] {
	return Vec128[uint32]{v: lanesFromBytes[uint32](lanesToBytes(v.v))}
}

// BitCastToU32x8 is BitCastToU32x4 at 256 bits.
func BitCastToU32x8[T Lanes](v Vec256[T]) Vec256[uint32] {
	return Vec256[uint32]{v: lanesFromBytes[uint32](lanesToBytes(v.v))}
}

// BitCastToU32x16 is BitCastToU32x4 at 512 bits.
func BitCastToU32x16[T Lanes](v Vec512[T]) Vec512[uint32] {
	return Vec512[uint32]{v: lanesFromBytes[uint32](lanesToBytes(v.v))}
}

// BitCastToI32x4 reinterprets any 128-bit vector as four int32 lanes.
func BitCastToI32x4[T Lanes](v Vec128[T]) Vec128[int32] {
	return Vec128[int32]{v: lanesFromBytes[int32](lanesToBytes(v.v))}
}

// BitCastToI32x8 is BitCastToI32x4 at 256 bits.
func BitCastToI32x8[T Lanes](v Vec256[T]) Vec256[int32] {
	return Vec256[int32]{v: lanesFromBytes[int32](lanesToBytes(v.v))}
}

// BitCastToI32x16 is BitCastToI32x4 at 512 bits.
func BitCastToI32x16[T Lanes](v Vec512[T]) Vec512[int32] {
	return Vec512[int32]{v: lanesFromBytes[int32](lanesToBytes(v.v))}
}

// BitCastToF32x4 reinterprets any 128-bit vector as four float32 lanes.
// This is a bitwise reinterpretation only; no numeric conversion happens.
func BitCastToF32x4[T Lanes](v Vec128[T]) Vec128[float32] {
	return Vec128[float32]{v: lanesFromBytes[float32](lanesToBytes(v.v))}
}

// BitCastToF32x8 is BitCastToF32x4 at 256 bits.
func BitCastToF32x8[T Lanes](v Vec256[T]) Vec256[float32] {
	return Vec256[float32]{v: lanesFromBytes[float32](lanesToBytes(v.v))}
}

// BitCastToF32x16 is BitCastToF32x4 at 512 bits.
func BitCastToF32x16[T Lanes](v Vec512[T]) Vec512[float32] {
	return Vec512[float32]{v: lanesFromBytes[float32](lanesToBytes(v.v))}
}

// BitCastToF64x2 reinterprets any 128-bit vector as two float64 lanes.
func BitCastToF64x2[T Lanes](v Vec128[T]) Vec128[float64] {
	return Vec128[float64]{v: lanesFromBytes[float64](lanesToBytes(v.v))}
}

// BitCastToF64x4 is BitCastToF64x2 at 256 bits.
func BitCastToF64x4[T Lanes](v Vec256[T]) Vec256[float64] {
	return Vec256[float64]{v: lanesFromBytes[float64](lanesToBytes(v.v))}
}

// BitCastToF64x8 is BitCastToF64x2 at 512 bits.
func BitCastToF64x8[T Lanes](v Vec512[T]) Vec512[float64] {
	return Vec512[float64]{v: lanesFromBytes[float64](lanesToBytes(v.v))}
}

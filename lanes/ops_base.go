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

// This file provides the portable lane-wise implementations of the
// arithmetic, comparison and reduction operations. They are the reference
// semantics every accelerated kernel is tested against; operations whose
// algorithms genuinely differ per backend (conversions, slides, shuffles,
// interleaved transfers) route through the kernel sets instead.

// Signed is a constraint for types with a sign: floats and signed integers.
type Signed interface {
	Floats | SignedInts
}

// Add returns a+b lane-wise. Integer addition wraps.
func Add128[T Lanes](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x + y })}
}

// Add256 is Add128 at 256 bits.
func Add256[T Lanes](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x + y })}
}

// Add512 is Add128 at 512 bits.
func Add512[T Lanes](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x + y })}
}

// Sub returns a-b lane-wise. Integer subtraction wraps.
func Sub128[T Lanes](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x - y })}
}

// Sub256 is Sub128 at 256 bits.
func Sub256[T Lanes](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x - y })}
}

// Sub512 is Sub128 at 512 bits.
func Sub512[T Lanes](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x - y })}
}

// Mul returns a*b lane-wise. Integer multiplication wraps.
func Mul128[T Lanes](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x * y })}
}

// Mul256 is Mul128 at 256 bits.
func Mul256[T Lanes](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x * y })}
}

// Mul512 is Mul128 at 512 bits.
func Mul512[T Lanes](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x * y })}
}

// Div returns a/b lane-wise.
func Div128[T Floats](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x / y })}
}

// Div256 is Div128 at 256 bits.
func Div256[T Floats](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x / y })}
}

// Div512 is Div128 at 512 bits.
func Div512[T Floats](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x / y })}
}

// Neg returns -a lane-wise. Negating the minimum signed integer wraps;
// float negation flips the sign bit exactly, NaN payloads included.
func Neg128[T Signed](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, negLane[T])}
}

// Neg256 is Neg128 at 256 bits.
func Neg256[T Signed](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, negLane[T])}
}

// Neg512 is Neg128 at 512 bits.
func Neg512[T Signed](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, negLane[T])}
}

// Abs clears the sign bit lane-wise, NaN payloads included.
func Abs128[T Floats](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, absLane[T])}
}

// Abs256 is Abs128 at 256 bits.
func Abs256[T Floats](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, absLane[T])}
}

// Abs512 is Abs128 at 512 bits.
func Abs512[T Floats](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, absLane[T])}
}

// Sqrt returns the square root lane-wise.
func Sqrt128[T Floats](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, sqrtLane[T])}
}

// Sqrt256 is Sqrt128 at 256 bits.
func Sqrt256[T Floats](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, sqrtLane[T])}
}

// Sqrt512 is Sqrt128 at 512 bits.
func Sqrt512[T Floats](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, sqrtLane[T])}
}

// Copysign returns a with b's sign, lane-wise.
func Copysign128[T Floats](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, copysignLane[T])}
}

// Copysign256 is Copysign128 at 256 bits.
func Copysign256[T Floats](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, copysignLane[T])}
}

// Copysign512 is Copysign128 at 512 bits.
func Copysign512[T Floats](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, copysignLane[T])}
}

// Min returns the lane-wise minimum. When a float lane compares unordered
// (NaN), which operand is returned is implementation-defined; MinPrecise
// pins that case down.
func Min128[T Lanes](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, minLane[T])}
}

// Min256 is Min128 at 256 bits.
func Min256[T Lanes](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, minLane[T])}
}

// Min512 is Min128 at 512 bits.
func Min512[T Lanes](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, minLane[T])}
}

// Max returns the lane-wise maximum, with the same NaN caveat as Min.
func Max128[T Lanes](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, maxLane[T])}
}

// Max256 is Max128 at 256 bits.
func Max256[T Lanes](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, maxLane[T])}
}

// Max512 is Max128 at 512 bits.
func Max512[T Lanes](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, maxLane[T])}
}

// MinPrecise returns the lane-wise minimum, choosing the non-NaN operand
// when exactly one lane is a quiet NaN. Which zero wins for (-0, +0) is
// implementation-defined.
func MinPrecise128[T Floats](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, minLane[T])}
}

// MinPrecise256 is MinPrecise128 at 256 bits.
func MinPrecise256[T Floats](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, minLane[T])}
}

// MinPrecise512 is MinPrecise128 at 512 bits.
func MinPrecise512[T Floats](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, minLane[T])}
}

// MaxPrecise returns the lane-wise maximum with MinPrecise's NaN handling.
func MaxPrecise128[T Floats](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, maxLane[T])}
}

// MaxPrecise256 is MaxPrecise128 at 256 bits.
func MaxPrecise256[T Floats](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, maxLane[T])}
}

// MaxPrecise512 is MaxPrecise128 at 512 bits.
func MaxPrecise512[T Floats](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, maxLane[T])}
}

// Madd computes (a*b)+c lane-wise. Whether the multiply and add fuse into
// a single rounding follows the platform's rule for the expression a*b + c,
// so results can differ by one rounding across architectures.
func Madd128[T Floats](a, b, c Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapTernary(a.v, b.v, c.v, func(x, y, z T) T { return x*y + z })}
}

// Madd256 is Madd128 at 256 bits.
func Madd256[T Floats](a, b, c Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapTernary(a.v, b.v, c.v, func(x, y, z T) T { return x*y + z })}
}

// Madd512 is Madd128 at 512 bits.
func Madd512[T Floats](a, b, c Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapTernary(a.v, b.v, c.v, func(x, y, z T) T { return x*y + z })}
}

// Msub computes (a*b)-c lane-wise, with Madd's fusing caveat.
func Msub128[T Floats](a, b, c Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapTernary(a.v, b.v, c.v, func(x, y, z T) T { return x*y - z })}
}

// Msub256 is Msub128 at 256 bits.
func Msub256[T Floats](a, b, c Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapTernary(a.v, b.v, c.v, func(x, y, z T) T { return x*y - z })}
}

// Msub512 is Msub128 at 512 bits.
func Msub512[T Floats](a, b, c Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapTernary(a.v, b.v, c.v, func(x, y, z T) T { return x*y - z })}
}

// Floor rounds toward negative infinity lane-wise.
func Floor128[T Floats](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, floorLane[T])}
}

// Floor256 is Floor128 at 256 bits.
func Floor256[T Floats](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, floorLane[T])}
}

// Floor512 is Floor128 at 512 bits.
func Floor512[T Floats](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, floorLane[T])}
}

// Ceil rounds toward positive infinity lane-wise.
func Ceil128[T Floats](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, ceilLane[T])}
}

// Ceil256 is Ceil128 at 256 bits.
func Ceil256[T Floats](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, ceilLane[T])}
}

// Ceil512 is Ceil128 at 512 bits.
func Ceil512[T Floats](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, ceilLane[T])}
}

// RoundTiesEven rounds to the nearest integer lane-wise, ties to even.
func RoundTiesEven128[T Floats](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, roundLane[T])}
}

// RoundTiesEven256 is RoundTiesEven128 at 256 bits.
func RoundTiesEven256[T Floats](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, roundLane[T])}
}

// RoundTiesEven512 is RoundTiesEven128 at 512 bits.
func RoundTiesEven512[T Floats](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, roundLane[T])}
}

// Trunc rounds toward zero lane-wise. NaN bit patterns pass through.
func Trunc128[T Floats](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, truncLane[T])}
}

// Trunc256 is Trunc128 at 256 bits.
func Trunc256[T Floats](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, truncLane[T])}
}

// Trunc512 is Trunc128 at 512 bits.
func Trunc512[T Floats](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, truncLane[T])}
}

// Fract returns v-Trunc(v) lane-wise: the fractional part, keeping v's
// sign. Infinite lanes come back NaN.
func Fract128[T Floats](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, fractLane[T])}
}

// Fract256 is Fract128 at 256 bits.
func Fract256[T Floats](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, fractLane[T])}
}

// Fract512 is Fract128 at 512 bits.
func Fract512[T Floats](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, fractLane[T])}
}

// lane helpers

func mapUnary[T Lanes](a []T, f func(T) T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = f(a[i])
	}
	return out
}

func mapBinary[T Lanes](a, b []T, f func(T, T) T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

func mapTernary[T Lanes](a, b, c []T, f func(T, T, T) T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = f(a[i], b[i], c[i])
	}
	return out
}

func negLane[T Signed](x T) T {
	if isFloatLane[T]() {
		return laneFromBits[T](laneBits(x) ^ signBit[T]())
	}
	return -x
}

func absLane[T Floats](x T) T {
	return laneFromBits[T](laneBits(x) &^ signBit[T]())
}

func sqrtLane[T Floats](x T) T {
	return T(math.Sqrt(float64(x)))
}

func copysignLane[T Floats](x, y T) T {
	return laneFromBits[T](laneBits(x)&^signBit[T]() | laneBits(y)&signBit[T]())
}

// minLane follows minNum: the non-NaN operand wins when one lane is NaN.
// For integers the NaN branches are dead and this is the plain minimum.
func minLane[T Lanes](x, y T) T {
	if x != x {
		return y
	}
	if y != y {
		return x
	}
	if x < y {
		return x
	}
	return y
}

func maxLane[T Lanes](x, y T) T {
	if x != x {
		return y
	}
	if y != y {
		return x
	}
	if x > y {
		return x
	}
	return y
}

func floorLane[T Floats](x T) T { return T(math.Floor(float64(x))) }

func ceilLane[T Floats](x T) T { return T(math.Ceil(float64(x))) }

func roundLane[T Floats](x T) T { return T(math.RoundToEven(float64(x))) }

func truncLane[T Floats](x T) T { return T(math.Trunc(float64(x))) }

func fractLane[T Floats](x T) T { return x - truncLane(x) }

// signBit returns the sign-bit mask for T's width.
func signBit[T Lanes]() uint64 {
	return 1 << (uint(laneSize[T]())*8 - 1)
}

// isFloatLane reports whether T is a floating-point lane type. Works for
// named types too, unlike a type switch.
func isFloatLane[T Lanes]() bool {
	return T(1)/T(2) != 0
}

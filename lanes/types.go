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

// Vec128 is a 128-bit vector of T lanes. The three widths are distinct
// types so that width-changing operations (Combine128, Split256, WidenU8x16)
// change the Go type of their result.
//
// Vec instances should not be created directly; use Load128, Splat128 or
// Zero128 instead. The zero value is not a valid vector.
type Vec128[T Lanes] struct {
	v []T
}

// Vec256 is a 256-bit vector of T lanes.
type Vec256[T Lanes] struct {
	v []T
}

// Vec512 is a 512-bit vector of T lanes.
type Vec512[T Lanes] struct {
	v []T
}

// Mask128 is the result shape of 128-bit comparisons: one lane per guarded
// vector lane, holding an all-ones bit pattern for true and all-zero for
// false. Lanes are stored as T so float masks can hold their NaN-shaped
// all-ones patterns.
//
// Operations consuming masks whose lanes are neither all-ones nor all-zero
// produce unspecified values (never memory unsafety).
type Mask128[T Lanes] struct {
	m []T
}

// Mask256 is the 256-bit mask shape.
type Mask256[T Lanes] struct {
	m []T
}

// Mask512 is the 512-bit mask shape.
type Mask512[T Lanes] struct {
	m []T
}

// Lanes128 returns the number of T lanes in a 128-bit vector.
func Lanes128[T Lanes]() int { return 16 / laneSize[T]() }

// Lanes256 returns the number of T lanes in a 256-bit vector.
func Lanes256[T Lanes]() int { return 32 / laneSize[T]() }

// Lanes512 returns the number of T lanes in a 512-bit vector.
func Lanes512[T Lanes]() int { return 64 / laneSize[T]() }

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec128[T]) NumLanes() int { return len(v.v) }

func (v Vec256[T]) NumLanes() int { return len(v.v) }

func (v Vec512[T]) NumLanes() int { return len(v.v) }

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec128[T]) Data() []T { return v.v }

func (v Vec256[T]) Data() []T { return v.v }

func (v Vec512[T]) Data() []T { return v.v }

// Store writes the vector's lanes to dst, stopping at whichever is shorter.
func (v Vec128[T]) Store(dst []T) { copy(dst, v.v) }

func (v Vec256[T]) Store(dst []T) { copy(dst, v.v) }

func (v Vec512[T]) Store(dst []T) { copy(dst, v.v) }

// Bytes serializes the vector lane by lane in little-endian order.
// The result has one byte per bit of vector width.
func (v Vec128[T]) Bytes() []byte { return lanesToBytes(v.v) }

func (v Vec256[T]) Bytes() []byte { return lanesToBytes(v.v) }

func (v Vec512[T]) Bytes() []byte { return lanesToBytes(v.v) }

// Data returns the mask's raw lanes, bit patterns included.
func (m Mask128[T]) Data() []T { return m.m }

func (m Mask256[T]) Data() []T { return m.m }

func (m Mask512[T]) Data() []T { return m.m }

// Lane reports whether lane i of the mask is set. For non-canonical lane
// patterns the answer is unspecified but stable: any nonzero bit counts.
func (m Mask128[T]) Lane(i int) bool { return laneBits(m.m[i]) != 0 }

func (m Mask256[T]) Lane(i int) bool { return laneBits(m.m[i]) != 0 }

func (m Mask512[T]) Lane(i int) bool { return laneBits(m.m[i]) != 0 }

// NumLanes returns the number of lanes in this mask.
func (m Mask128[T]) NumLanes() int { return len(m.m) }

func (m Mask256[T]) NumLanes() int { return len(m.m) }

func (m Mask512[T]) NumLanes() int { return len(m.m) }

// Combine128 combines two vectors into a single vector of twice the width.
// a provides the lower lanes and b provides the upper lanes.
func Combine128[T Lanes](a, b Vec128[T]) Vec256[T] {
	return Vec256[T]{v: combineLanes(a.v, b.v)}
}

// Combine256 combines two 256-bit vectors into a 512-bit vector.
func Combine256[T Lanes](a, b Vec256[T]) Vec512[T] {
	return Vec512[T]{v: combineLanes(a.v, b.v)}
}

// Split256 splits a vector into two vectors of half the width,
// returning (lower half, upper half).
func Split256[T Lanes](v Vec256[T]) (lo, hi Vec128[T]) {
	l, h := splitLanes(v.v)
	return Vec128[T]{v: l}, Vec128[T]{v: h}
}

// Split512 splits a 512-bit vector into two 256-bit vectors.
func Split512[T Lanes](v Vec512[T]) (lo, hi Vec256[T]) {
	l, h := splitLanes(v.v)
	return Vec256[T]{v: l}, Vec256[T]{v: h}
}

// CombineMask128 combines two masks into a double-width mask, preserving
// lane bit patterns.
func CombineMask128[T Lanes](a, b Mask128[T]) Mask256[T] {
	return Mask256[T]{m: combineLanes(a.m, b.m)}
}

// CombineMask256 combines two 256-bit masks into a 512-bit mask.
func CombineMask256[T Lanes](a, b Mask256[T]) Mask512[T] {
	return Mask512[T]{m: combineLanes(a.m, b.m)}
}

// SplitMask256 splits a mask into (lower half, upper half).
func SplitMask256[T Lanes](m Mask256[T]) (lo, hi Mask128[T]) {
	l, h := splitLanes(m.m)
	return Mask128[T]{m: l}, Mask128[T]{m: h}
}

// SplitMask512 splits a 512-bit mask into two 256-bit masks.
func SplitMask512[T Lanes](m Mask512[T]) (lo, hi Mask256[T]) {
	l, h := splitLanes(m.m)
	return Mask256[T]{m: l}, Mask256[T]{m: h}
}

func combineLanes[T Lanes](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func splitLanes[T Lanes](v []T) (lo, hi []T) {
	half := len(v) / 2
	lo = make([]T, half)
	hi = make([]T, half)
	copy(lo, v[:half])
	copy(hi, v[half:])
	return lo, hi
}

func lanesToBytes[T Lanes](v []T) []byte {
	size := laneSize[T]()
	out := make([]byte, 0, len(v)*size)
	for _, lane := range v {
		bits := laneBits(lane)
		for b := 0; b < size; b++ {
			out = append(out, byte(bits>>(8*b)))
		}
	}
	return out
}

func lanesFromBytes[T Lanes](raw []byte) []T {
	size := laneSize[T]()
	out := make([]T, len(raw)/size)
	for i := range out {
		var bits uint64
		for b := size - 1; b >= 0; b-- {
			bits = bits<<8 | uint64(raw[i*size+b])
		}
		out[i] = laneFromBits[T](bits)
	}
	return out
}

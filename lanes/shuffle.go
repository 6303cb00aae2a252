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

// ZipLow128 interleaves the low halves of a and b:
// a0, b0, a1, b1, ... across the whole vector width.
func ZipLow128[T Lanes](a, b Vec128[T]) Vec128[T] {
	raw := activeKernels().zipLow(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec128[T]{v: lanesFromBytes[T](raw)}
}

// ZipLow256 is ZipLow128 at 256 bits.
func ZipLow256[T Lanes](a, b Vec256[T]) Vec256[T] {
	raw := activeKernels().zipLow(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec256[T]{v: lanesFromBytes[T](raw)}
}

// ZipLow512 is ZipLow128 at 512 bits.
func ZipLow512[T Lanes](a, b Vec512[T]) Vec512[T] {
	raw := activeKernels().zipLow(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec512[T]{v: lanesFromBytes[T](raw)}
}

// ZipHigh128 interleaves the high halves of a and b.
func ZipHigh128[T Lanes](a, b Vec128[T]) Vec128[T] {
	raw := activeKernels().zipHigh(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec128[T]{v: lanesFromBytes[T](raw)}
}

// ZipHigh256 is ZipHigh128 at 256 bits.
func ZipHigh256[T Lanes](a, b Vec256[T]) Vec256[T] {
	raw := activeKernels().zipHigh(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec256[T]{v: lanesFromBytes[T](raw)}
}

// ZipHigh512 is ZipHigh128 at 512 bits.
func ZipHigh512[T Lanes](a, b Vec512[T]) Vec512[T] {
	raw := activeKernels().zipHigh(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec512[T]{v: lanesFromBytes[T](raw)}
}

// UnzipLow128 gathers the even-indexed lanes of a, then of b.
func UnzipLow128[T Lanes](a, b Vec128[T]) Vec128[T] {
	raw := activeKernels().unzipLow(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec128[T]{v: lanesFromBytes[T](raw)}
}

// UnzipLow256 is UnzipLow128 at 256 bits.
func UnzipLow256[T Lanes](a, b Vec256[T]) Vec256[T] {
	raw := activeKernels().unzipLow(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec256[T]{v: lanesFromBytes[T](raw)}
}

// UnzipLow512 is UnzipLow128 at 512 bits.
func UnzipLow512[T Lanes](a, b Vec512[T]) Vec512[T] {
	raw := activeKernels().unzipLow(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec512[T]{v: lanesFromBytes[T](raw)}
}

// UnzipHigh128 gathers the odd-indexed lanes of a, then of b.
func UnzipHigh128[T Lanes](a, b Vec128[T]) Vec128[T] {
	raw := activeKernels().unzipHigh(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec128[T]{v: lanesFromBytes[T](raw)}
}

// UnzipHigh256 is UnzipHigh128 at 256 bits.
func UnzipHigh256[T Lanes](a, b Vec256[T]) Vec256[T] {
	raw := activeKernels().unzipHigh(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec256[T]{v: lanesFromBytes[T](raw)}
}

// UnzipHigh512 is UnzipHigh128 at 512 bits.
func UnzipHigh512[T Lanes](a, b Vec512[T]) Vec512[T] {
	raw := activeKernels().unzipHigh(lanesToBytes(a.v), lanesToBytes(b.v), laneSize[T]())
	return Vec512[T]{v: lanesFromBytes[T](raw)}
}

// Slide128 returns the N-lane window starting at lane shift of the 2N-lane
// concatenation [b low, a high]:
//
//	shift 0    -> b
//	0<shift<N  -> b[shift:] followed by a[:shift]
//	shift >= N -> b
//
// Note the saturation: once the window would leave b entirely, the result
// snaps back to b rather than continuing into a.
func Slide128[T Lanes](a, b Vec128[T], shift uint) Vec128[T] {
	raw := slideAcross(activeKernels(), lanesToBytes(a.v), lanesToBytes(b.v), int(shift), laneSize[T]())
	return Vec128[T]{v: lanesFromBytes[T](raw)}
}

// Slide256 is Slide128 at 256 bits.
func Slide256[T Lanes](a, b Vec256[T], shift uint) Vec256[T] {
	raw := slideAcross(activeKernels(), lanesToBytes(a.v), lanesToBytes(b.v), int(shift), laneSize[T]())
	return Vec256[T]{v: lanesFromBytes[T](raw)}
}

// Slide512 is Slide128 at 512 bits.
func Slide512[T Lanes](a, b Vec512[T], shift uint) Vec512[T] {
	raw := slideAcross(activeKernels(), lanesToBytes(a.v), lanesToBytes(b.v), int(shift), laneSize[T]())
	return Vec512[T]{v: lanesFromBytes[T](raw)}
}

// SlideMask128 applies Slide128's law to mask lanes, bit patterns intact.
func SlideMask128[T Lanes](a, b Mask128[T], shift uint) Mask128[T] {
	raw := slideAcross(activeKernels(), lanesToBytes(a.m), lanesToBytes(b.m), int(shift), laneSize[T]())
	return Mask128[T]{m: lanesFromBytes[T](raw)}
}

// SlideMask256 is SlideMask128 at 256 bits.
func SlideMask256[T Lanes](a, b Mask256[T], shift uint) Mask256[T] {
	raw := slideAcross(activeKernels(), lanesToBytes(a.m), lanesToBytes(b.m), int(shift), laneSize[T]())
	return Mask256[T]{m: lanesFromBytes[T](raw)}
}

// SlideMask512 is SlideMask128 at 512 bits.
func SlideMask512[T Lanes](a, b Mask512[T], shift uint) Mask512[T] {
	raw := slideAcross(activeKernels(), lanesToBytes(a.m), lanesToBytes(b.m), int(shift), laneSize[T]())
	return Mask512[T]{m: lanesFromBytes[T](raw)}
}

// SlideWithinBlocks128 applies Slide128's law independently inside each
// 128-bit block, with the block's own lane count as the saturation point.
// At 128 bits there is a single block, so this equals Slide128.
func SlideWithinBlocks128[T Lanes](a, b Vec128[T], shift uint) Vec128[T] {
	raw := slideWithinBlocks(activeKernels(), lanesToBytes(a.v), lanesToBytes(b.v), int(shift), laneSize[T]())
	return Vec128[T]{v: lanesFromBytes[T](raw)}
}

// SlideWithinBlocks256 slides each of the two 128-bit blocks independently.
func SlideWithinBlocks256[T Lanes](a, b Vec256[T], shift uint) Vec256[T] {
	raw := slideWithinBlocks(activeKernels(), lanesToBytes(a.v), lanesToBytes(b.v), int(shift), laneSize[T]())
	return Vec256[T]{v: lanesFromBytes[T](raw)}
}

// SlideWithinBlocks512 slides each of the four 128-bit blocks independently.
func SlideWithinBlocks512[T Lanes](a, b Vec512[T], shift uint) Vec512[T] {
	raw := slideWithinBlocks(activeKernels(), lanesToBytes(a.v), lanesToBytes(b.v), int(shift), laneSize[T]())
	return Vec512[T]{v: lanesFromBytes[T](raw)}
}

// SlideWithinBlocksMask128 is the mask form of SlideWithinBlocks128.
func SlideWithinBlocksMask128[T Lanes](a, b Mask128[T], shift uint) Mask128[T] {
	raw := slideWithinBlocks(activeKernels(), lanesToBytes(a.m), lanesToBytes(b.m), int(shift), laneSize[T]())
	return Mask128[T]{m: lanesFromBytes[T](raw)}
}

// SlideWithinBlocksMask256 is the mask form of SlideWithinBlocks256.
func SlideWithinBlocksMask256[T Lanes](a, b Mask256[T], shift uint) Mask256[T] {
	raw := slideWithinBlocks(activeKernels(), lanesToBytes(a.m), lanesToBytes(b.m), int(shift), laneSize[T]())
	return Mask256[T]{m: lanesFromBytes[T](raw)}
}

// SlideWithinBlocksMask512 is the mask form of SlideWithinBlocks512.
func SlideWithinBlocksMask512[T Lanes](a, b Mask512[T], shift uint) Mask512[T] {
	raw := slideWithinBlocks(activeKernels(), lanesToBytes(a.m), lanesToBytes(b.m), int(shift), laneSize[T]())
	return Mask512[T]{m: lanesFromBytes[T](raw)}
}

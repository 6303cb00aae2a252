package lanes

// Comparisons return canonical masks: all-ones lanes where the predicate
// holds, all-zero lanes where it does not. Unordered float comparisons
// (NaN on either side) are false, so their mask lanes are zero.

// Eq128 compares a == b lane-wise.
func Eq128[T Lanes](a, b Vec128[T]) Mask128[T] {
	return Mask128[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x == y })}
}

// Eq256 is Eq128 at 256 bits.
func Eq256[T Lanes](a, b Vec256[T]) Mask256[T] {
	return Mask256[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x == y })}
}

// Eq512 is Eq128 at 512 bits.
func Eq512[T Lanes](a, b Vec512[T]) Mask512[T] {
	return Mask512[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x == y })}
}

// Lt128 compares a < b lane-wise.
func Lt128[T Lanes](a, b Vec128[T]) Mask128[T] {
	return Mask128[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x < y })}
}

// Lt256 is Lt128 at 256 bits.
func Lt256[T Lanes](a, b Vec256[T]) Mask256[T] {
	return Mask256[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x < y })}
}

// Lt512 is Lt128 at 512 bits.
func Lt512[T Lanes](a, b Vec512[T]) Mask512[T] {
	return Mask512[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x < y })}
}

// Le128 compares a <= b lane-wise.
func Le128[T Lanes](a, b Vec128[T]) Mask128[T] {
	return Mask128[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x <= y })}
}

// Le256 is Le128 at 256 bits.
func Le256[T Lanes](a, b Vec256[T]) Mask256[T] {
	return Mask256[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x <= y })}
}

// Le512 is Le128 at 512 bits.
func Le512[T Lanes](a, b Vec512[T]) Mask512[T] {
	return Mask512[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x <= y })}
}

// Ge128 compares a >= b lane-wise.
func Ge128[T Lanes](a, b Vec128[T]) Mask128[T] {
	return Mask128[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x >= y })}
}

// Ge256 is Ge128 at 256 bits.
func Ge256[T Lanes](a, b Vec256[T]) Mask256[T] {
	return Mask256[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x >= y })}
}

// Ge512 is Ge128 at 512 bits.
func Ge512[T Lanes](a, b Vec512[T]) Mask512[T] {
	return Mask512[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x >= y })}
}

// Gt128 compares a > b lane-wise.
func Gt128[T Lanes](a, b Vec128[T]) Mask128[T] {
	return Mask128[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x > y })}
}

// Gt256 is Gt128 at 256 bits.
func Gt256[T Lanes](a, b Vec256[T]) Mask256[T] {
	return Mask256[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x > y })}
}

// Gt512 is Gt128 at 512 bits.
func Gt512[T Lanes](a, b Vec512[T]) Mask512[T] {
	return Mask512[T]{m: cmpLanes(a.v, b.v, func(x, y T) bool { return x > y })}
}

// Select128 picks ifTrue lanes where the mask is set and ifFalse lanes
// where it is clear. Non-canonical mask lanes blend bitwise, which is one
// of the unspecified-but-safe results the mask contract allows.
func Select128[T Lanes](m Mask128[T], ifTrue, ifFalse Vec128[T]) Vec128[T] {
	raw := activeKernels().selectBits(lanesToBytes(m.m), lanesToBytes(ifTrue.v), lanesToBytes(ifFalse.v))
	return Vec128[T]{v: lanesFromBytes[T](raw)}
}

// Select256 is Select128 at 256 bits.
func Select256[T Lanes](m Mask256[T], ifTrue, ifFalse Vec256[T]) Vec256[T] {
	raw := activeKernels().selectBits(lanesToBytes(m.m), lanesToBytes(ifTrue.v), lanesToBytes(ifFalse.v))
	return Vec256[T]{v: lanesFromBytes[T](raw)}
}

// Select512 is Select128 at 512 bits.
func Select512[T Lanes](m Mask512[T], ifTrue, ifFalse Vec512[T]) Vec512[T] {
	raw := activeKernels().selectBits(lanesToBytes(m.m), lanesToBytes(ifTrue.v), lanesToBytes(ifFalse.v))
	return Vec512[T]{v: lanesFromBytes[T](raw)}
}

// SelectMask128 blends two masks under a third.
func SelectMask128[T Lanes](m, ifTrue, ifFalse Mask128[T]) Mask128[T] {
	raw := activeKernels().selectBits(lanesToBytes(m.m), lanesToBytes(ifTrue.m), lanesToBytes(ifFalse.m))
	return Mask128[T]{m: lanesFromBytes[T](raw)}
}

// SelectMask256 is SelectMask128 at 256 bits.
func SelectMask256[T Lanes](m, ifTrue, ifFalse Mask256[T]) Mask256[T] {
	raw := activeKernels().selectBits(lanesToBytes(m.m), lanesToBytes(ifTrue.m), lanesToBytes(ifFalse.m))
	return Mask256[T]{m: lanesFromBytes[T](raw)}
}

// SelectMask512 is SelectMask128 at 512 bits.
func SelectMask512[T Lanes](m, ifTrue, ifFalse Mask512[T]) Mask512[T] {
	raw := activeKernels().selectBits(lanesToBytes(m.m), lanesToBytes(ifTrue.m), lanesToBytes(ifFalse.m))
	return Mask512[T]{m: lanesFromBytes[T](raw)}
}

// MaskAnd128 intersects two masks bitwise.
func MaskAnd128[T Lanes](a, b Mask128[T]) Mask128[T] {
	return Mask128[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x & y })}
}

// MaskAnd256 is MaskAnd128 at 256 bits.
func MaskAnd256[T Lanes](a, b Mask256[T]) Mask256[T] {
	return Mask256[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x & y })}
}

// MaskAnd512 is MaskAnd128 at 512 bits.
func MaskAnd512[T Lanes](a, b Mask512[T]) Mask512[T] {
	return Mask512[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x & y })}
}

// MaskOr128 unions two masks bitwise.
func MaskOr128[T Lanes](a, b Mask128[T]) Mask128[T] {
	return Mask128[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x | y })}
}

// MaskOr256 is MaskOr128 at 256 bits.
func MaskOr256[T Lanes](a, b Mask256[T]) Mask256[T] {
	return Mask256[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x | y })}
}

// MaskOr512 is MaskOr128 at 512 bits.
func MaskOr512[T Lanes](a, b Mask512[T]) Mask512[T] {
	return Mask512[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x | y })}
}

// MaskXor128 symmetric-differences two masks bitwise.
func MaskXor128[T Lanes](a, b Mask128[T]) Mask128[T] {
	return Mask128[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x ^ y })}
}

// MaskXor256 is MaskXor128 at 256 bits.
func MaskXor256[T Lanes](a, b Mask256[T]) Mask256[T] {
	return Mask256[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x ^ y })}
}

// MaskXor512 is MaskXor128 at 512 bits.
func MaskXor512[T Lanes](a, b Mask512[T]) Mask512[T] {
	return Mask512[T]{m: maskBitwise(a.m, b.m, func(x, y uint64) uint64 { return x ^ y })}
}

// MaskNot128 flips every mask bit.
func MaskNot128[T Lanes](m Mask128[T]) Mask128[T] {
	return Mask128[T]{m: mapUnary(m.m, func(x T) T { return laneFromBits[T](^laneBits(x)) })}
}

// MaskNot256 is MaskNot128 at 256 bits.
func MaskNot256[T Lanes](m Mask256[T]) Mask256[T] {
	return Mask256[T]{m: mapUnary(m.m, func(x T) T { return laneFromBits[T](^laneBits(x)) })}
}

// MaskNot512 is MaskNot128 at 512 bits.
func MaskNot512[T Lanes](m Mask512[T]) Mask512[T] {
	return Mask512[T]{m: mapUnary(m.m, func(x T) T { return laneFromBits[T](^laneBits(x)) })}
}

// MaskEq128 compares two masks lane-wise by bit pattern.
func MaskEq128[T Lanes](a, b Mask128[T]) Mask128[T] {
	return Mask128[T]{m: cmpLanes(a.m, b.m, func(x, y T) bool { return laneBits(x) == laneBits(y) })}
}

// MaskEq256 is MaskEq128 at 256 bits.
func MaskEq256[T Lanes](a, b Mask256[T]) Mask256[T] {
	return Mask256[T]{m: cmpLanes(a.m, b.m, func(x, y T) bool { return laneBits(x) == laneBits(y) })}
}

// MaskEq512 is MaskEq128 at 512 bits.
func MaskEq512[T Lanes](a, b Mask512[T]) Mask512[T] {
	return Mask512[T]{m: cmpLanes(a.m, b.m, func(x, y T) bool { return laneBits(x) == laneBits(y) })}
}

// AnyTrue128 reports whether any mask lane is set.
func AnyTrue128[T Lanes](m Mask128[T]) bool {
	return activeKernels().maskAny(lanesToBytes(m.m), laneSize[T]())
}

// AnyTrue256 is AnyTrue128 at 256 bits.
func AnyTrue256[T Lanes](m Mask256[T]) bool {
	return activeKernels().maskAny(lanesToBytes(m.m), laneSize[T]())
}

// AnyTrue512 is AnyTrue128 at 512 bits.
func AnyTrue512[T Lanes](m Mask512[T]) bool {
	return activeKernels().maskAny(lanesToBytes(m.m), laneSize[T]())
}

// AllTrue128 reports whether every mask lane is set.
func AllTrue128[T Lanes](m Mask128[T]) bool {
	return activeKernels().maskAll(lanesToBytes(m.m), laneSize[T]())
}

// AllTrue256 is AllTrue128 at 256 bits.
func AllTrue256[T Lanes](m Mask256[T]) bool {
	return activeKernels().maskAll(lanesToBytes(m.m), laneSize[T]())
}

// AllTrue512 is AllTrue128 at 512 bits.
func AllTrue512[T Lanes](m Mask512[T]) bool {
	return activeKernels().maskAll(lanesToBytes(m.m), laneSize[T]())
}

// AnyFalse128 reports whether any mask lane is clear.
func AnyFalse128[T Lanes](m Mask128[T]) bool { return !AllTrue128(m) }

// AnyFalse256 is AnyFalse128 at 256 bits.
func AnyFalse256[T Lanes](m Mask256[T]) bool { return !AllTrue256(m) }

// AnyFalse512 is AnyFalse128 at 512 bits.
func AnyFalse512[T Lanes](m Mask512[T]) bool { return !AllTrue512(m) }

// AllFalse128 reports whether every mask lane is clear.
func AllFalse128[T Lanes](m Mask128[T]) bool { return !AnyTrue128(m) }

// AllFalse256 is AllFalse128 at 256 bits.
func AllFalse256[T Lanes](m Mask256[T]) bool { return !AnyTrue256(m) }

// AllFalse512 is AllFalse128 at 512 bits.
func AllFalse512[T Lanes](m Mask512[T]) bool { return !AnyTrue512(m) }

func cmpLanes[T Lanes](a, b []T, pred func(T, T) bool) []T {
	out := make([]T, len(a))
	for i := range a {
		if pred(a[i], b[i]) {
			out[i] = allOnes[T]()
		}
	}
	return out
}

func maskBitwise[T Lanes](a, b []T, f func(uint64, uint64) uint64) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = laneFromBits[T](f(laneBits(a[i]), laneBits(b[i])))
	}
	return out
}

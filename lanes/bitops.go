package lanes

// And128 returns a&b lane-wise.
func And128[T Integers](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x & y })}
}

// And256 is And128 at 256 bits.
func And256[T Integers](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x & y })}
}

// And512 is And128 at 512 bits.
func And512[T Integers](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x & y })}
}

// Or128 returns a|b lane-wise.
func Or128[T Integers](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x | y })}
}

// Or256 is Or128 at 256 bits.
func Or256[T Integers](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x | y })}
}

// Or512 is Or128 at 512 bits.
func Or512[T Integers](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x | y })}
}

// Xor128 returns a^b lane-wise.
func Xor128[T Integers](a, b Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x ^ y })}
}

// Xor256 is Xor128 at 256 bits.
func Xor256[T Integers](a, b Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x ^ y })}
}

// Xor512 is Xor128 at 512 bits.
func Xor512[T Integers](a, b Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(a.v, b.v, func(x, y T) T { return x ^ y })}
}

// Not128 complements every bit.
func Not128[T Integers](v Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, func(x T) T { return ^x })}
}

// Not256 is Not128 at 256 bits.
func Not256[T Integers](v Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, func(x T) T { return ^x })}
}

// Not512 is Not128 at 512 bits.
func Not512[T Integers](v Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, func(x T) T { return ^x })}
}

// Shl128 shifts every lane left by the same count. Counts at or beyond the
// lane width shift out completely.
func Shl128[T Integers](v Vec128[T], shift uint) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, func(x T) T { return x << shift })}
}

// Shl256 is Shl128 at 256 bits.
func Shl256[T Integers](v Vec256[T], shift uint) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, func(x T) T { return x << shift })}
}

// Shl512 is Shl128 at 512 bits.
func Shl512[T Integers](v Vec512[T], shift uint) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, func(x T) T { return x << shift })}
}

// Shr128 shifts every lane right by the same count: arithmetic for signed
// lanes, logical for unsigned.
func Shr128[T Integers](v Vec128[T], shift uint) Vec128[T] {
	return Vec128[T]{v: mapUnary(v.v, func(x T) T { return x >> shift })}
}

// Shr256 is Shr128 at 256 bits.
func Shr256[T Integers](v Vec256[T], shift uint) Vec256[T] {
	return Vec256[T]{v: mapUnary(v.v, func(x T) T { return x >> shift })}
}

// Shr512 is Shr128 at 512 bits.
func Shr512[T Integers](v Vec512[T], shift uint) Vec512[T] {
	return Vec512[T]{v: mapUnary(v.v, func(x T) T { return x >> shift })}
}

// Shrv128 shifts each lane right by the count in the matching lane of
// shifts, taken as an unsigned value. Counts at or beyond the lane width
// shift out completely.
func Shrv128[T Integers](v, shifts Vec128[T]) Vec128[T] {
	return Vec128[T]{v: mapBinary(v.v, shifts.v, shrvLane[T])}
}

// Shrv256 is Shrv128 at 256 bits.
func Shrv256[T Integers](v, shifts Vec256[T]) Vec256[T] {
	return Vec256[T]{v: mapBinary(v.v, shifts.v, shrvLane[T])}
}

// Shrv512 is Shrv128 at 512 bits.
func Shrv512[T Integers](v, shifts Vec512[T]) Vec512[T] {
	return Vec512[T]{v: mapBinary(v.v, shifts.v, shrvLane[T])}
}

func shrvLane[T Integers](x, count T) T {
	return x >> laneBits(count)
}

// Package lanes provides portable SIMD vector types whose accelerated paths
// are gated by capability tokens.
//
// A capability token (Sse42, Avx2, Avx512, Neon, WasmSimd128) can only be
// obtained by proving the CPU features it names hold: either by runtime
// detection (TryNew) or by an explicit caller assertion (NewUnchecked).
// Detect returns the most capable Level for the host; Vectorize amortizes
// the capability check once per dispatch rather than once per operation.
//
// Basic usage:
//
//	import "github.com/veclane/go-lanes/lanes"
//
//	lv := lanes.Detect()
//	out := lanes.Vectorize(lv, func() []float32 {
//		a := lanes.Load128(x)
//		b := lanes.Load128(y)
//		return lanes.Add128(a, b).Data()
//	})
//
// Vector widths are fixed at 128, 256 and 512 bits. Operations on widths
// wider than the active backend's registers decompose into half-width
// halves (see generic.go).
package lanes

import "unsafe"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// laneSize returns the size of one lane of type T in bytes.
func laneSize[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// laneBits returns the raw bit pattern of a lane, zero-extended to 64 bits.
// Floats are reinterpreted, not converted.
func laneBits[T Lanes](v T) uint64 {
	switch unsafe.Sizeof(v) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&v)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&v)))
	default:
		return *(*uint64)(unsafe.Pointer(&v))
	}
}

// laneFromBits builds a lane of type T from a raw bit pattern.
// The inverse of laneBits; high bits beyond the lane size are dropped.
func laneFromBits[T Lanes](b uint64) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = uint8(b)
	case 2:
		*(*uint16)(unsafe.Pointer(&v)) = uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&v)) = uint32(b)
	default:
		*(*uint64)(unsafe.Pointer(&v)) = b
	}
	return v
}

// allOnes returns the lane whose every bit is set. For floats this is a NaN
// bit pattern; it is the canonical "true" mask lane.
func allOnes[T Lanes]() T {
	return laneFromBits[T](^uint64(0))
}

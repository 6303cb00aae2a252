package main

import (
	"fmt"

	"github.com/samber/lo"
)

// ScalarKind classifies a lane element.
type ScalarKind int

const (
	KindFloat ScalarKind = iota
	KindSigned
	KindUnsigned
	KindMask
)

// Scalar is a lane element type: a kind plus a bit width.
type Scalar struct {
	Kind ScalarKind
	Bits int
}

var (
	scalarF32 = Scalar{KindFloat, 32}
	scalarF64 = Scalar{KindFloat, 64}
	scalarI8  = Scalar{KindSigned, 8}
	scalarU8  = Scalar{KindUnsigned, 8}
	scalarI16 = Scalar{KindSigned, 16}
	scalarU16 = Scalar{KindUnsigned, 16}
	scalarI32 = Scalar{KindSigned, 32}
	scalarU32 = Scalar{KindUnsigned, 32}
	scalarM8  = Scalar{KindMask, 8}
	scalarM16 = Scalar{KindMask, 16}
	scalarM32 = Scalar{KindMask, 32}
	scalarM64 = Scalar{KindMask, 64}
)

// scalars lists every element type the generator knows, in catalogue order.
var scalars = []Scalar{
	scalarF32, scalarF64,
	scalarI8, scalarU8, scalarI16, scalarU16, scalarI32, scalarU32,
	scalarM8, scalarM16, scalarM32, scalarM64,
}

// Name returns the short catalogue name, e.g. "f32" or "m8".
func (s Scalar) Name() string {
	prefix := map[ScalarKind]string{
		KindFloat:    "f",
		KindSigned:   "i",
		KindUnsigned: "u",
		KindMask:     "m",
	}[s.Kind]
	return fmt.Sprintf("%s%d", prefix, s.Bits)
}

// Go returns the Go element type. Mask lanes are signed integers so that
// the all-ones pattern is simply -1.
func (s Scalar) Go() string {
	switch s.Kind {
	case KindFloat:
		return fmt.Sprintf("float%d", s.Bits)
	case KindUnsigned:
		return fmt.Sprintf("uint%d", s.Bits)
	default:
		return fmt.Sprintf("int%d", s.Bits)
	}
}

// GoUnsigned returns the unsigned integer type of the same width, used by
// emitted code for bit-pattern manipulation.
func (s Scalar) GoUnsigned() string { return fmt.Sprintf("uint%d", s.Bits) }

func (s Scalar) IsFloat() bool { return s.Kind == KindFloat }
func (s Scalar) IsMask() bool  { return s.Kind == KindMask }

func (s Scalar) IsInt() bool {
	return s.Kind == KindSigned || s.Kind == KindUnsigned
}

// VecType is one row of the catalogue: an element type at a lane count.
type VecType struct {
	Scalar Scalar
	Lanes  int
}

// vecWidths are the register widths the catalogue spans. Every element
// type appears at each width.
var vecWidths = []int{128, 256, 512}

// vecTypes is the full catalogue: 12 element types at 3 widths, 36 rows.
var vecTypes = lo.FlatMap(scalars, func(s Scalar, _ int) []VecType {
	return lo.Map(vecWidths, func(bits int, _ int) VecType {
		return VecType{Scalar: s, Lanes: bits / s.Bits}
	})
})

// Bits returns the total vector width in bits.
func (t VecType) Bits() int { return t.Scalar.Bits * t.Lanes }

// Name returns the catalogue name, e.g. "f32x4".
func (t VecType) Name() string {
	return fmt.Sprintf("%sx%d", t.Scalar.Name(), t.Lanes)
}

// Go returns the Go value type emitted routines traffic in. Fixed-size
// arrays keep the generated API allocation-free and copyable.
func (t VecType) Go() string {
	return fmt.Sprintf("[%d]%s", t.Lanes, t.Scalar.Go())
}

// Mask returns the mask type paired with t: same lane count, mask lanes
// of the same width.
func (t VecType) Mask() VecType {
	return VecType{Scalar: Scalar{KindMask, t.Scalar.Bits}, Lanes: t.Lanes}
}

// Half returns the type holding the low or high half of t.
func (t VecType) Half() VecType {
	return VecType{Scalar: t.Scalar, Lanes: t.Lanes / 2}
}

// Double returns the type formed by combining two values of t.
func (t VecType) Double() VecType {
	return VecType{Scalar: t.Scalar, Lanes: t.Lanes * 2}
}

// WithScalar reinterprets t's bits as lanes of s. Total width is
// preserved; the lane count adjusts.
func (t VecType) WithScalar(s Scalar) VecType {
	return VecType{Scalar: s, Lanes: t.Bits() / s.Bits}
}

// SameLanes converts t's element type while keeping the lane count, as a
// lane-wise conversion does.
func (t VecType) SameLanes(s Scalar) VecType {
	return VecType{Scalar: s, Lanes: t.Lanes}
}

// Widened reports the destination of the widening op: u8 lanes promote to
// u16 lanes at the same count, doubling the register. Only vectors that
// still fit in 512 bits after doubling widen.
func (t VecType) Widened() (VecType, bool) {
	if t.Scalar != scalarU8 || t.Bits() > 256 {
		return VecType{}, false
	}
	return t.SameLanes(scalarU16), true
}

// Narrowed reports the destination of the wrapping narrow: u16 lanes
// truncate to u8 lanes at the same count, halving the register.
func (t VecType) Narrowed() (VecType, bool) {
	if t.Scalar != scalarU16 || t.Bits() < 256 {
		return VecType{}, false
	}
	return t.SameLanes(scalarU8), true
}

// reinterpretTargets lists the element types t may be viewed as. Views
// are bit-level only, so any same-width reinterpret is sound; the
// catalogue offers the handful that callers reach for.
func (t VecType) reinterpretTargets() []Scalar {
	if t.Scalar.IsMask() {
		return nil
	}
	var views []Scalar
	if t.Scalar.IsFloat() {
		views = []Scalar{scalarU8, scalarU32, scalarI32, scalarF32, scalarF64}
	} else {
		views = []Scalar{scalarU8, scalarU32}
	}
	return lo.Filter(views, func(s Scalar, _ int) bool {
		return s != t.Scalar
	})
}

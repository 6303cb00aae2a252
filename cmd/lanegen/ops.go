package main

import "fmt"

// SigKind is the argument/return shape of an operation. Every op with the
// same kind is emitted with the same signature pattern, which is what lets
// the dispatch wrappers be generated mechanically.
type SigKind int

const (
	SigSplat SigKind = iota // (x elem) -> vec
	SigUnary                // (a vec) -> vec
	SigBinary               // (a, b vec) -> vec
	SigTernary              // (a, b, c vec) -> vec
	SigCompare              // (a, b vec) -> mask
	SigSelect               // (m mask, a, b vec) -> vec
	SigShiftImm             // (a vec, k uint) -> vec
	SigShiftVar             // (a, b vec) -> vec, per-lane counts
	SigZip                  // (a, b vec) -> vec, lane interleave
	SigUnzip                // (a, b vec) -> vec, lane deinterleave
	SigCombine              // (lo, hi vec) -> double-width vec
	SigSplit                // (a vec) -> (half, half)
	SigSlide                // (a, b vec, shift int) -> vec
	SigSlideWithin          // (a, b vec, shift int) -> vec, per 128-bit block
	SigCvt                  // (a vec) -> vec of To lanes, same count
	SigReinterpret          // (a vec) -> same bits as To lanes
	SigWiden                // (a u8 vec) -> u16 vec, same count
	SigNarrow               // (a u16 vec) -> u8 vec, same count
	SigLoadInterleaved      // (src vec) -> vec, 4-stream deinterleave
	SigStoreInterleaved     // (a vec) -> vec, 4-stream interleave
	SigMaskReduce           // (m mask) -> bool
)

// Op is one catalogue operation. Method is the snake_case catalogue name;
// the exported Go name is derived from it. To carries the destination
// element type for conversions, views and widen/narrow.
type Op struct {
	Method string
	Sig    SigKind
	Doc    string
	To     Scalar
	Fast   bool // conversion uses the native truncation, not the saturating form
}

var floatOps = []Op{
	{Method: "splat", Sig: SigSplat, Doc: "builds a vector with every lane set to x"},
	{Method: "abs", Sig: SigUnary, Doc: "returns the lane-wise absolute value of a"},
	{Method: "neg", Sig: SigUnary, Doc: "returns the lane-wise negation of a"},
	{Method: "sqrt", Sig: SigUnary, Doc: "returns the lane-wise square root of a"},
	{Method: "add", Sig: SigBinary, Doc: "returns the lane-wise sum a + b"},
	{Method: "sub", Sig: SigBinary, Doc: "returns the lane-wise difference a - b"},
	{Method: "mul", Sig: SigBinary, Doc: "returns the lane-wise product a * b"},
	{Method: "div", Sig: SigBinary, Doc: "returns the lane-wise quotient a / b"},
	{Method: "copysign", Sig: SigBinary, Doc: "returns a with each lane's sign bit replaced by b's"},
	{Method: "simd_eq", Sig: SigCompare, Doc: "compares a == b lane-wise into a mask"},
	{Method: "simd_lt", Sig: SigCompare, Doc: "compares a < b lane-wise into a mask"},
	{Method: "simd_le", Sig: SigCompare, Doc: "compares a <= b lane-wise into a mask"},
	{Method: "simd_ge", Sig: SigCompare, Doc: "compares a >= b lane-wise into a mask"},
	{Method: "simd_gt", Sig: SigCompare, Doc: "compares a > b lane-wise into a mask"},
	{Method: "zip_low", Sig: SigZip, Doc: "interleaves the low-half lanes of a and b"},
	{Method: "zip_high", Sig: SigZip, Doc: "interleaves the high-half lanes of a and b"},
	{Method: "unzip_low", Sig: SigUnzip, Doc: "gathers the even lanes of a, then the even lanes of b"},
	{Method: "unzip_high", Sig: SigUnzip, Doc: "gathers the odd lanes of a, then the odd lanes of b"},
	{Method: "max", Sig: SigBinary, Doc: "returns the lane-wise maximum; a NaN in either operand yields b's lane"},
	{Method: "min", Sig: SigBinary, Doc: "returns the lane-wise minimum; a NaN in either operand yields b's lane"},
	{Method: "max_precise", Sig: SigBinary, Doc: "returns the lane-wise maximum, preferring the non-NaN operand"},
	{Method: "min_precise", Sig: SigBinary, Doc: "returns the lane-wise minimum, preferring the non-NaN operand"},
	{Method: "madd", Sig: SigTernary, Doc: "returns a*b + c lane-wise"},
	{Method: "msub", Sig: SigTernary, Doc: "returns a*b - c lane-wise"},
	{Method: "floor", Sig: SigUnary, Doc: "rounds each lane toward negative infinity"},
	{Method: "ceil", Sig: SigUnary, Doc: "rounds each lane toward positive infinity"},
	{Method: "round_ties_even", Sig: SigUnary, Doc: "rounds each lane to the nearest integer, ties to even"},
	{Method: "fract", Sig: SigUnary, Doc: "returns the lane-wise fractional part a - trunc(a)"},
	{Method: "trunc", Sig: SigUnary, Doc: "rounds each lane toward zero"},
	{Method: "select", Sig: SigSelect, Doc: "chooses a where m is set and b elsewhere, lane-wise"},
}

var intOps = []Op{
	{Method: "splat", Sig: SigSplat, Doc: "builds a vector with every lane set to x"},
	{Method: "add", Sig: SigBinary, Doc: "returns the lane-wise sum a + b, wrapping"},
	{Method: "sub", Sig: SigBinary, Doc: "returns the lane-wise difference a - b, wrapping"},
	{Method: "mul", Sig: SigBinary, Doc: "returns the lane-wise product a * b, wrapping"},
	{Method: "and", Sig: SigBinary, Doc: "returns the bitwise AND of a and b"},
	{Method: "or", Sig: SigBinary, Doc: "returns the bitwise OR of a and b"},
	{Method: "xor", Sig: SigBinary, Doc: "returns the bitwise XOR of a and b"},
	{Method: "not", Sig: SigUnary, Doc: "returns the bitwise complement of a"},
	{Method: "shl", Sig: SigShiftImm, Doc: "shifts every lane left by k bits"},
	{Method: "shr", Sig: SigShiftImm, Doc: "shifts every lane right by k bits; arithmetic for signed lanes"},
	{Method: "shrv", Sig: SigShiftVar, Doc: "shifts each lane of a right by the count in b's matching lane"},
	{Method: "simd_eq", Sig: SigCompare, Doc: "compares a == b lane-wise into a mask"},
	{Method: "simd_lt", Sig: SigCompare, Doc: "compares a < b lane-wise into a mask"},
	{Method: "simd_le", Sig: SigCompare, Doc: "compares a <= b lane-wise into a mask"},
	{Method: "simd_ge", Sig: SigCompare, Doc: "compares a >= b lane-wise into a mask"},
	{Method: "simd_gt", Sig: SigCompare, Doc: "compares a > b lane-wise into a mask"},
	{Method: "zip_low", Sig: SigZip, Doc: "interleaves the low-half lanes of a and b"},
	{Method: "zip_high", Sig: SigZip, Doc: "interleaves the high-half lanes of a and b"},
	{Method: "unzip_low", Sig: SigUnzip, Doc: "gathers the even lanes of a, then the even lanes of b"},
	{Method: "unzip_high", Sig: SigUnzip, Doc: "gathers the odd lanes of a, then the odd lanes of b"},
	{Method: "select", Sig: SigSelect, Doc: "chooses a where m is set and b elsewhere, lane-wise"},
	{Method: "min", Sig: SigBinary, Doc: "returns the lane-wise minimum"},
	{Method: "max", Sig: SigBinary, Doc: "returns the lane-wise maximum"},
}

var maskOps = []Op{
	{Method: "splat", Sig: SigSplat, Doc: "builds a mask with every lane set when x is true"},
	{Method: "and", Sig: SigBinary, Doc: "returns the bitwise AND of a and b"},
	{Method: "or", Sig: SigBinary, Doc: "returns the bitwise OR of a and b"},
	{Method: "xor", Sig: SigBinary, Doc: "returns the bitwise XOR of a and b"},
	{Method: "not", Sig: SigUnary, Doc: "returns the bitwise complement of a"},
	{Method: "select", Sig: SigSelect, Doc: "chooses a where m is set and b elsewhere, lane-wise"},
	{Method: "simd_eq", Sig: SigCompare, Doc: "compares a == b lane-wise into a mask"},
	{Method: "any_true", Sig: SigMaskReduce, Doc: "reports whether any lane of m is set"},
	{Method: "all_true", Sig: SigMaskReduce, Doc: "reports whether every lane of m is set"},
	{Method: "any_false", Sig: SigMaskReduce, Doc: "reports whether any lane of m is clear"},
	{Method: "all_false", Sig: SigMaskReduce, Doc: "reports whether every lane of m is clear"},
}

// opsForType returns the full operation set for one catalogue type. The
// result is freshly allocated; callers may append to it.
func opsForType(ty VecType) []Op {
	out := make([]Op, 0, 48)
	switch {
	case ty.Scalar.IsFloat():
		out = append(out, floatOps...)
	case ty.Scalar.IsMask():
		out = append(out, maskOps...)
	default:
		out = append(out, intOps...)
		if ty.Scalar.Kind == KindSigned {
			out = append(out, Op{Method: "neg", Sig: SigUnary, Doc: "returns the lane-wise negation of a, wrapping"})
		}
	}

	if ty.Bits() < 512 {
		out = append(out, Op{Method: "combine", Sig: SigCombine, Doc: "concatenates lo and hi into a double-width vector"})
	}
	if ty.Bits() > 128 {
		out = append(out, Op{Method: "split", Sig: SigSplit, Doc: "splits a into its low and high halves"})
	}
	out = append(out,
		Op{Method: "slide", Sig: SigSlide, Doc: "returns the lane window starting at shift of the b:a concatenation, saturating to b"},
		Op{Method: "slide_within_blocks", Sig: SigSlideWithin, Doc: "slides independently inside each 128-bit block"},
	)

	for _, s := range ty.reinterpretTargets() {
		out = append(out, Op{
			Method: "reinterpret_" + s.Name(),
			Sig:    SigReinterpret,
			Doc:    fmt.Sprintf("reinterprets the bits of a as %s lanes", s.Name()),
			To:     s,
		})
	}
	if w, ok := ty.Widened(); ok {
		out = append(out, Op{Method: "widen", Sig: SigWiden, Doc: "promotes each u8 lane to u16", To: w.Scalar})
	}
	if n, ok := ty.Narrowed(); ok {
		out = append(out, Op{Method: "narrow", Sig: SigNarrow, Doc: "truncates each u16 lane to u8, wrapping", To: n.Scalar})
	}

	if ty.Bits() == 512 && (ty.Scalar.Kind == KindUnsigned || ty.Scalar == scalarF32) {
		out = append(out,
			Op{Method: "load_interleaved_128", Sig: SigLoadInterleaved, Doc: "deinterleaves four element streams from src into one vector"},
			Op{Method: "store_interleaved_128", Sig: SigStoreInterleaved, Doc: "interleaves a into four element streams"},
		)
	}

	if ty.Scalar == scalarF32 {
		out = append(out,
			Op{Method: "cvt_u32", Sig: SigCvt, Doc: "converts lanes to u32, saturating out-of-range values and mapping NaN to 0", To: scalarU32},
			Op{Method: "cvt_u32_fast", Sig: SigCvt, Doc: "converts lanes to u32 with the backend's native truncation; out-of-range lanes are backend-defined", To: scalarU32, Fast: true},
			Op{Method: "cvt_i32", Sig: SigCvt, Doc: "converts lanes to i32, saturating out-of-range values and mapping NaN to 0", To: scalarI32},
			Op{Method: "cvt_i32_fast", Sig: SigCvt, Doc: "converts lanes to i32 with the backend's native truncation; out-of-range lanes are backend-defined", To: scalarI32, Fast: true},
		)
	}
	if ty.Scalar == scalarU32 || ty.Scalar == scalarI32 {
		out = append(out, Op{Method: "cvt_f32", Sig: SigCvt, Doc: "converts integer lanes to f32, rounding to nearest", To: scalarF32})
	}

	return out
}

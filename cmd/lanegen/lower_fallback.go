package main

// The fallback backend is the reference: plain loops, no instruction
// notes. Its conversions carry the guards Go needs because a float to
// integer conversion out of range is implementation-defined.

var fallbackRules = map[string]ruleFn{
	"zip_low":               zipWalk(true, ""),
	"zip_high":              zipWalk(false, ""),
	"unzip_low":             unzipWalk(true, ""),
	"unzip_high":            unzipWalk(false, ""),
	"select":                selectWalk(""),
	"slide":                 slideWalk(false, ""),
	"slide_within_blocks":   slideWalk(true, ""),
	"load_interleaved_128":  interleaveWalk(true, ""),
	"store_interleaved_128": interleaveWalk(false, ""),
	"widen":                 emitWidenScalar,
	"narrow":                emitNarrowScalar,
	"cvt_u32":               emitCvtSatU32,
	"cvt_u32_fast":          emitCvtSatU32,
	"cvt_i32":               emitCvtSatI32,
	"cvt_i32_fast":          emitCvtSatI32,
	"cvt_f32":               emitCvtToF32Scalar,
	"any_true":              maskReduceWalk(false, ""),
	"all_true":              maskReduceWalk(false, ""),
	"any_false":             maskReduceWalk(false, ""),
	"all_false":             maskReduceWalk(false, ""),
}

func emitWidenScalar(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out %s", ty.SameLanes(scalarU16).Go())
	f.ln("for i := range out {")
	f.ln("out[i] = uint16(a[i])")
	f.ln("}")
	f.ln("return out")
}

func emitNarrowScalar(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out %s", ty.SameLanes(scalarU8).Go())
	f.ln("for i := range out {")
	f.ln("out[i] = uint8(a[i])")
	f.ln("}")
	f.ln("return out")
}

// emitCvtSatU32 is both the precise rule and the fallback's fast rule:
// with no native instruction to mimic, fast mode keeps the saturating
// semantics.
func emitCvtSatU32(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out [%d]uint32", ty.Lanes)
	f.ln("for i := range out {")
	f.ln("x := a[i]")
	f.ln("switch {")
	f.ln("case x != x || x <= -1:")
	f.ln("// NaN and everything at or below -1 land on zero.")
	f.ln("case x >= 4294967296:")
	f.ln("out[i] = 4294967295")
	f.ln("case x > 0:")
	f.ln("out[i] = uint32(x)")
	f.ln("}")
	f.ln("}")
	f.ln("return out")
}

func emitCvtSatI32(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out [%d]int32", ty.Lanes)
	f.ln("for i := range out {")
	f.ln("x := a[i]")
	f.ln("switch {")
	f.ln("case x != x:")
	f.ln("// NaN lands on zero.")
	f.ln("case x >= 2147483648:")
	f.ln("out[i] = 2147483647")
	f.ln("case x <= -2147483648:")
	f.ln("out[i] = -2147483648")
	f.ln("default:")
	f.ln("out[i] = int32(x)")
	f.ln("}")
	f.ln("}")
	f.ln("return out")
}

func emitCvtToF32Scalar(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out [%d]float32", ty.Lanes)
	f.ln("for i := range out {")
	f.ln("out[i] = float32(a[i])")
	f.ln("}")
	f.ln("return out")
}

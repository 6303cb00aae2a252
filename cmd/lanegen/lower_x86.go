package main

// x86 rules. Shuffles and blends are notes over the shared walks; the
// conversions reproduce the instruction compositions for real, through
// the lanes/inst/x86 models, because their edge behavior (sentinel
// values, excess-2^31 biasing) is the part worth pinning down.

const x86Import = "github.com/veclane/go-lanes/lanes/inst/x86"

var x86Rules = map[string]ruleFn{
	"zip_low":               x86Zip(true),
	"zip_high":              x86Zip(false),
	"unzip_low":             unzipWalk(true, "PSHUFB even-lane gather, then PUNPCKLQDQ."),
	"unzip_high":            unzipWalk(false, "PSHUFB odd-lane gather, then PUNPCKLQDQ."),
	"select":                x86Select,
	"slide":                 slideWalk(false, "PALIGNR over adjacent 128-bit block pairs."),
	"slide_within_blocks":   slideWalk(true, "PALIGNR within each 128-bit block."),
	"load_interleaved_128":  interleaveWalk(true, "No x86 structure load; lowered as shuffled gathers."),
	"store_interleaved_128": interleaveWalk(false, "No x86 structure store; lowered as shuffled scatters."),
	"widen":                 x86Widen,
	"narrow":                x86Narrow,
	"cvt_u32":               x86CvtU32Precise,
	"cvt_u32_fast":          x86CvtU32Fast,
	"cvt_i32":               x86CvtI32Precise,
	"cvt_i32_fast":          x86CvtI32Fast,
	"cvt_f32":               x86CvtToF32,
	"any_true":              maskReduceWalk(true, "PMOVMSKB collapses the lane sign bits."),
	"all_true":              maskReduceWalk(true, "PMOVMSKB collapses the lane sign bits."),
	"any_false":             maskReduceWalk(true, "PMOVMSKB collapses the lane sign bits."),
	"all_false":             maskReduceWalk(true, "PMOVMSKB collapses the lane sign bits."),
}

const splat32Src = `func splat32(n int, x float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = x
	}
	return s
}`

// x86Zip picks the note by width: the 256-bit unpacks work per 128-bit
// lane and need a cross-lane reorder afterward.
func x86Zip(low bool) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		comment := "PUNPCKL*"
		if !low {
			comment = "PUNPCKH*"
		}
		if ty.Bits() == 256 {
			comment += " per 128-bit lane, then VPERM2I128 reorders the halves"
		}
		zipWalk(low, comment+".")(f, op, ty, tgt)
	}
}

func x86Select(f *fileBuf, op Op, ty VecType, tgt Target) {
	if tgt.Suffix == "avx512" {
		bitwiseSelect("VPTERNLOGD 0xCA: bitwise select through the mask pattern.")(f, op, ty, tgt)
		return
	}
	f.ln("// PBLENDVB keys on each byte's high bit; on a canonical mask the lane")
	f.ln("// sign test selects identically.")
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	f.ln("if m[i] < 0 {")
	f.ln("out[i] = a[i]")
	f.ln("} else {")
	f.ln("out[i] = b[i]")
	f.ln("}")
	f.ln("}")
	f.ln("return out")
}

func x86Widen(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(x86Import)
	f.ln("// PMOVZXBW")
	f.ln("w := x86.Pmovzxbw(a[:])")
	f.ln("var out %s", ty.SameLanes(scalarU16).Go())
	f.ln("copy(out[:], w)")
	f.ln("return out")
}

func x86Narrow(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(x86Import)
	half := ty.Lanes / 2
	f.ln("// Mask to the low byte first so PACKUSWB's saturation cannot fire;")
	f.ln("// the result wraps like a plain truncation.")
	f.ln("masked := make([]uint16, %d)", ty.Lanes)
	f.ln("for i := range masked {")
	f.ln("masked[i] = a[i] & 0xFF")
	f.ln("}")
	f.ln("p := x86.Packuswb(masked[:%d], masked[%d:])", half, half)
	f.ln("var out %s", ty.SameLanes(scalarU8).Go())
	f.ln("copy(out[:], p)")
	f.ln("return out")
}

func x86CvtI32Fast(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(x86Import)
	f.ln("// CVTTPS2DQ: NaN and out-of-range lanes produce the 0x80000000 sentinel.")
	f.ln("conv := x86.Cvttps2dq(a[:])")
	f.ln("var out [%d]int32", ty.Lanes)
	f.ln("copy(out[:], conv)")
	f.ln("return out")
}

func x86CvtI32Precise(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(x86Import)
	f.needHelper("splat32", splat32Src)
	n := ty.Lanes
	f.ln("// CVTTPS2DQ already saturates the low side via its sentinel; pin the")
	f.ln("// high side with a CMPGEPS clamp and zero the unordered lanes.")
	f.ln("conv := x86.Cvttps2dq(a[:])")
	f.ln("big := x86.CmpgePs(a[:], splat32(%d, 2147483648))", n)
	f.ln("ord := x86.CmpordPs(a[:], a[:])")
	f.ln("var out [%d]int32", n)
	f.ln("for i := range out {")
	f.ln("v := conv[i]")
	f.ln("if big[i] != 0 {")
	f.ln("v = 2147483647")
	f.ln("}")
	f.ln("if ord[i] == 0 {")
	f.ln("v = 0")
	f.ln("}")
	f.ln("out[i] = v")
	f.ln("}")
	f.ln("return out")
}

func x86CvtU32Fast(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(x86Import)
	n := ty.Lanes
	if tgt.Suffix == "avx512" {
		f.ln("// VCVTTPS2UDQ: NaN and out-of-range lanes produce the 0xFFFFFFFF sentinel.")
		f.ln("conv := x86.Cvttps2udq(a[:])")
		f.ln("var out [%d]uint32", n)
		f.ln("copy(out[:], conv)")
		f.ln("return out")
		return
	}
	f.needHelper("splat32", splat32Src)
	f.ln("// No packed u32 truncation below AVX-512: lanes at or above 2^31 are")
	f.ln("// biased down by 2^31, truncated signed, and the bias added back.")
	f.ln("small := x86.CmpltPs(a[:], splat32(%d, 2147483648))", n)
	f.ln("lo := x86.Cvttps2dq(a[:])")
	f.ln("excess := make([]float32, %d)", n)
	f.ln("for i := range excess {")
	f.ln("excess[i] = a[i] - 2147483648")
	f.ln("}")
	f.ln("hi := x86.Cvttps2dq(excess)")
	f.ln("var out [%d]uint32", n)
	f.ln("for i := range out {")
	f.ln("if small[i] != 0 {")
	f.ln("out[i] = uint32(lo[i])")
	f.ln("} else {")
	f.ln("out[i] = uint32(hi[i]) + 0x80000000")
	f.ln("}")
	f.ln("}")
	f.ln("return out")
}

func x86CvtU32Precise(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(x86Import)
	f.needHelper("splat32", splat32Src)
	n := ty.Lanes
	if tgt.Suffix == "avx512" {
		f.ln("// MAXPS launders NaN and negatives to zero (second-source rule), then")
		f.ln("// VCVTTPS2UDQ's sentinel saturates the high side.")
		f.ln("conv := x86.Cvttps2udq(x86.MaxPs(a[:], splat32(%d, 0)))", n)
		f.ln("var out [%d]uint32", n)
		f.ln("copy(out[:], conv)")
		f.ln("return out")
		return
	}
	f.ln("// MAXPS clamps the low side and launders NaN to zero; the fast excess-2^31")
	f.ln("// path runs on the clamped lanes; CMPLTPS pins everything above the")
	f.ln("// largest float below 2^32 to the saturated maximum.")
	f.ln("clamped := x86.MaxPs(a[:], splat32(%d, 0))", n)
	f.ln("small := x86.CmpltPs(clamped, splat32(%d, 2147483648))", n)
	f.ln("lo := x86.Cvttps2dq(clamped)")
	f.ln("excess := make([]float32, %d)", n)
	f.ln("for i := range excess {")
	f.ln("excess[i] = clamped[i] - 2147483648")
	f.ln("}")
	f.ln("hi := x86.Cvttps2dq(excess)")
	f.ln("big := x86.CmpltPs(splat32(%d, 4294967040), a[:])", n)
	f.ln("var out [%d]uint32", n)
	f.ln("for i := range out {")
	f.ln("switch {")
	f.ln("case big[i] != 0:")
	f.ln("out[i] = 4294967295")
	f.ln("case small[i] != 0:")
	f.ln("out[i] = uint32(lo[i])")
	f.ln("default:")
	f.ln("out[i] = uint32(hi[i]) + 0x80000000")
	f.ln("}")
	f.ln("}")
	f.ln("return out")
}

func x86CvtToF32(f *fileBuf, op Op, ty VecType, tgt Target) {
	n := ty.Lanes
	if ty.Scalar == scalarI32 {
		f.needImport(x86Import)
		f.ln("// CVTDQ2PS")
		f.ln("conv := x86.Cvtdq2ps(a[:])")
		f.ln("var out [%d]float32", n)
		f.ln("copy(out[:], conv)")
		f.ln("return out")
		return
	}
	if tgt.Suffix == "avx512" {
		f.needImport(x86Import)
		f.ln("// VCVTUDQ2PS")
		f.ln("conv := x86.Cvtudq2ps(a[:])")
		f.ln("var out [%d]float32", n)
		f.ln("copy(out[:], conv)")
		f.ln("return out")
		return
	}
	f.needImport("math")
	f.ln("// No packed u32 to f32 below AVX-512. Each lane splits into 16-bit")
	f.ln("// halves biased into exactly representable ranges; subtracting the")
	f.ln("// combined bias leaves a single rounding in the final sum, which is")
	f.ln("// exactly what a correctly rounded conversion performs.")
	f.ln("var out [%d]float32", n)
	f.ln("for i := range out {")
	f.ln("u := a[i]")
	f.ln("lo := math.Float32frombits(0x4B000000 | u&0xFFFF)")
	f.ln("hi := math.Float32frombits(0x53000000 | u>>16)")
	f.ln("out[i] = hi - math.Float32frombits(0x53000080) + lo")
	f.ln("}")
	f.ln("return out")
}

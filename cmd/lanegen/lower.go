package main

import "fmt"

// ruleFn emits the body of one routine. The signature line and closing
// brace belong to the caller; rules write statements only.
type ruleFn func(f *fileBuf, op Op, ty VecType, tgt Target)

// familyRules holds each backend family's rule table. Resolution tries
// the family table first, then the portable table shared by every
// backend; element-wise ops wider than the target lower through generic
// decomposition before either table is consulted.
var familyRules = map[string]map[string]ruleFn{
	"fallback": fallbackRules,
	"x86":      x86Rules,
	"neon":     neonRules,
	"wasm":     wasmRules,
}

// methodKey collapses the per-view reinterpret methods onto one rule.
func methodKey(op Op) string {
	if op.Sig == SigReinterpret {
		return "reinterpret"
	}
	return op.Method
}

// decomposable reports whether op splits into independent half-width
// calls. Shape ops (combine, split, slides, interleaves) and the
// width-general conversions lower directly at every width instead.
func decomposable(op Op) bool {
	switch op.Sig {
	case SigUnary, SigBinary, SigTernary, SigCompare, SigSelect,
		SigShiftImm, SigShiftVar, SigZip, SigUnzip:
		return true
	}
	return false
}

// lowerRule resolves the rule that realizes (op, ty) on tgt. The second
// result is false only for catalogue holes; the driver turns those into
// hard errors before any file is written.
func lowerRule(tgt Target, op Op, ty VecType) (ruleFn, bool) {
	if decomposable(op) && ty.Bits() > decomposeBits(tgt, op) {
		return emitDecomposed, true
	}
	if r, ok := familyRules[tgt.Family][methodKey(op)]; ok {
		return r, true
	}
	if r, ok := portableRules[methodKey(op)]; ok {
		return r, true
	}
	return nil, false
}

// portableRules cover the ops whose lowering is the same loop on every
// backend. Backends that have something genuinely different to say about
// an op shadow the entry in their family table.
var portableRules = map[string]ruleFn{
	"splat":    emitSplat,
	"add":      binaryWalk("+"),
	"sub":      binaryWalk("-"),
	"mul":      binaryWalk("*"),
	"div":      binaryWalk("/"),
	"and":      binaryWalk("&"),
	"or":       binaryWalk("|"),
	"xor":      binaryWalk("^"),
	"not":      unaryWalk("^"),
	"neg":      unaryWalk("-"),
	"abs":      emitAbs,
	"sqrt":     emitSqrt,
	"copysign": emitCopysign,
	"min":      minMaxWalk(false),
	"max":      minMaxWalk(true),
	"min_precise": preciseMinMaxWalk(false),
	"max_precise": preciseMinMaxWalk(true),
	"madd":            emitMadd,
	"msub":            emitMsub,
	"floor":           roundWalk("Floor"),
	"ceil":            roundWalk("Ceil"),
	"trunc":           roundWalk("Trunc"),
	"round_ties_even": roundWalk("RoundToEven"),
	"fract":           emitFract,
	"simd_eq":         compareWalk("=="),
	"simd_lt":         compareWalk("<"),
	"simd_le":         compareWalk("<="),
	"simd_ge":         compareWalk(">="),
	"simd_gt":         compareWalk(">"),
	"shl":             emitShl,
	"shr":             emitShr,
	"shrv":            emitShrv,
	"combine":         emitCombine,
	"split":           emitSplit,
	"reinterpret":     emitReinterpret,
}

func emitSplat(f *fileBuf, op Op, ty VecType, tgt Target) {
	if ty.Scalar.IsMask() {
		f.ln("v := %s(0)", ty.Scalar.Go())
		f.ln("if x {")
		f.ln("v = -1")
		f.ln("}")
		f.ln("var out %s", ty.Go())
		f.ln("for i := range out {")
		f.ln("out[i] = v")
		f.ln("}")
		f.ln("return out")
		return
	}
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	f.ln("out[i] = x")
	f.ln("}")
	f.ln("return out")
}

func binaryWalk(opr string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		f.ln("var out %s", ty.Go())
		f.ln("for i := range out {")
		f.ln("out[i] = a[i] %s b[i]", opr)
		f.ln("}")
		f.ln("return out")
	}
}

func unaryWalk(opr string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		f.ln("var out %s", ty.Go())
		f.ln("for i := range out {")
		f.ln("out[i] = %sa[i]", opr)
		f.ln("}")
		f.ln("return out")
	}
}

func emitAbs(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport("math")
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	if ty.Scalar.Bits == 32 {
		f.ln("out[i] = math.Float32frombits(math.Float32bits(a[i]) &^ (1 << 31))")
	} else {
		f.ln("out[i] = math.Float64frombits(math.Float64bits(a[i]) &^ (1 << 63))")
	}
	f.ln("}")
	f.ln("return out")
}

func emitSqrt(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport("math")
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	if ty.Scalar.Bits == 32 {
		f.ln("out[i] = float32(math.Sqrt(float64(a[i])))")
	} else {
		f.ln("out[i] = math.Sqrt(a[i])")
	}
	f.ln("}")
	f.ln("return out")
}

func emitCopysign(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport("math")
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	if ty.Scalar.Bits == 32 {
		f.ln("out[i] = math.Float32frombits(math.Float32bits(a[i])&^(1<<31) | math.Float32bits(b[i])&(1<<31))")
	} else {
		f.ln("out[i] = math.Float64frombits(math.Float64bits(a[i])&^(1<<63) | math.Float64bits(b[i])&(1<<63))")
	}
	f.ln("}")
	f.ln("return out")
}

// minMaxWalk emits the second-source form shared by the catalogue and
// the x86 MINPS/MAXPS instructions: when the comparison fails, including
// on NaN and on equal zeros, b's lane wins.
func minMaxWalk(isMax bool) ruleFn {
	cmp := "<"
	if isMax {
		cmp = ">"
	}
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		f.ln("var out %s", ty.Go())
		f.ln("for i := range out {")
		f.ln("if a[i] %s b[i] {", cmp)
		f.ln("out[i] = a[i]")
		f.ln("} else {")
		f.ln("out[i] = b[i]")
		f.ln("}")
		f.ln("}")
		f.ln("return out")
	}
}

func preciseMinMaxWalk(isMax bool) ruleFn {
	cmp := "<"
	if isMax {
		cmp = ">"
	}
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		f.ln("var out %s", ty.Go())
		f.ln("for i := range out {")
		f.ln("switch {")
		f.ln("case a[i] != a[i]:")
		f.ln("out[i] = b[i]")
		f.ln("case b[i] != b[i]:")
		f.ln("out[i] = a[i]")
		f.ln("case a[i] %s b[i]:", cmp)
		f.ln("out[i] = a[i]")
		f.ln("default:")
		f.ln("out[i] = b[i]")
		f.ln("}")
		f.ln("}")
		f.ln("return out")
	}
}

func emitMadd(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	f.ln("out[i] = a[i]*b[i] + c[i]")
	f.ln("}")
	f.ln("return out")
}

func emitMsub(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	f.ln("out[i] = a[i]*b[i] - c[i]")
	f.ln("}")
	f.ln("return out")
}

func roundWalk(fn string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		f.needImport("math")
		f.ln("var out %s", ty.Go())
		f.ln("for i := range out {")
		if ty.Scalar.Bits == 32 {
			f.ln("out[i] = float32(math.%s(float64(a[i])))", fn)
		} else {
			f.ln("out[i] = math.%s(a[i])", fn)
		}
		f.ln("}")
		f.ln("return out")
	}
}

func emitFract(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport("math")
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	if ty.Scalar.Bits == 32 {
		f.ln("out[i] = a[i] - float32(math.Trunc(float64(a[i])))")
	} else {
		f.ln("out[i] = a[i] - math.Trunc(a[i])")
	}
	f.ln("}")
	f.ln("return out")
}

// compareWalk emits an ordered comparison: a NaN operand fails every
// predicate and leaves the lane clear.
func compareWalk(opr string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		f.ln("var out %s", ty.Mask().Go())
		f.ln("for i := range out {")
		f.ln("if a[i] %s b[i] {", opr)
		f.ln("out[i] = -1")
		f.ln("}")
		f.ln("}")
		f.ln("return out")
	}
}

func emitShl(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	f.ln("out[i] = a[i] << k")
	f.ln("}")
	f.ln("return out")
}

func emitShr(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	f.ln("out[i] = a[i] >> k")
	f.ln("}")
	f.ln("return out")
}

// emitShrv reads each count through the unsigned view so a negative
// count in a signed lane becomes a huge one, which Go then resolves the
// same way hardware does: shift out everything.
func emitShrv(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out %s", ty.Go())
	f.ln("for i := range out {")
	f.ln("out[i] = a[i] >> uint(%s(b[i]))", ty.Scalar.GoUnsigned())
	f.ln("}")
	f.ln("return out")
}

func emitCombine(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.ln("var out %s", ty.Double().Go())
	f.ln("copy(out[:%d], lo[:])", ty.Lanes)
	f.ln("copy(out[%d:], hi[:])", ty.Lanes)
	f.ln("return out")
}

func emitSplit(f *fileBuf, op Op, ty VecType, tgt Target) {
	half := ty.Lanes / 2
	f.ln("var lo, hi %s", ty.Half().Go())
	f.ln("copy(lo[:], a[:%d])", half)
	f.ln("copy(hi[:], a[%d:])", half)
	f.ln("return lo, hi")
}

func emitReinterpret(f *fileBuf, op Op, ty VecType, tgt Target) {
	dst := ty.WithScalar(op.To)
	f.ln("var raw [%d]byte", ty.Bits()/8)
	f.ln("for i, x := range a {")
	emitPackLane(f, ty.Scalar)
	f.ln("}")
	f.ln("var out %s", dst.Go())
	f.ln("for i := range out {")
	f.ln("out[i] = %s", unpackLaneExpr(f, op.To))
	f.ln("}")
	f.ln("return out")
}

// emitPackLane writes x (one lane of scalar s) into raw at i*size,
// little-endian.
func emitPackLane(f *fileBuf, s Scalar) {
	size := s.Bits / 8
	if size == 1 {
		f.ln("raw[i] = byte(x)")
		return
	}
	switch {
	case s.IsFloat() && s.Bits == 32:
		f.needImport("math")
		f.ln("b := math.Float32bits(x)")
	case s.IsFloat():
		f.needImport("math")
		f.ln("b := math.Float64bits(x)")
	default:
		f.ln("b := %s(x)", s.GoUnsigned())
	}
	for j := 0; j < size; j++ {
		if j == 0 {
			f.ln("raw[i*%d] = byte(b)", size)
			continue
		}
		f.ln("raw[i*%d+%d] = byte(b >> %d)", size, j, j*8)
	}
}

// unpackLaneExpr returns the expression reading one lane of scalar s
// from raw at i*size, little-endian.
func unpackLaneExpr(f *fileBuf, s Scalar) string {
	size := s.Bits / 8
	if size == 1 {
		if s.Kind == KindUnsigned {
			return "raw[i]"
		}
		return fmt.Sprintf("%s(raw[i])", s.Go())
	}
	word := ""
	for j := 0; j < size; j++ {
		term := fmt.Sprintf("%s(raw[i*%d+%d])", s.GoUnsigned(), size, j)
		if j > 0 {
			term += fmt.Sprintf("<<%d", j*8)
		}
		if j == 0 {
			word = term
		} else {
			word += " | " + term
		}
	}
	switch {
	case s.IsFloat() && s.Bits == 32:
		f.needImport("math")
		return fmt.Sprintf("math.Float32frombits(%s)", word)
	case s.IsFloat():
		f.needImport("math")
		return fmt.Sprintf("math.Float64frombits(%s)", word)
	case s.Kind == KindUnsigned:
		return word
	default:
		return fmt.Sprintf("%s(%s)", s.Go(), word)
	}
}

// The walks below are shared by the family tables; each backend passes
// the note naming the instruction sequence the loop stands in for.

func zipWalk(low bool, comment string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		half := ty.Lanes / 2
		if comment != "" {
			f.ln("// %s", comment)
		}
		f.ln("var out %s", ty.Go())
		f.ln("for i := 0; i < %d; i++ {", half)
		if low {
			f.ln("out[2*i] = a[i]")
			f.ln("out[2*i+1] = b[i]")
		} else {
			f.ln("out[2*i] = a[%d+i]", half)
			f.ln("out[2*i+1] = b[%d+i]", half)
		}
		f.ln("}")
		f.ln("return out")
	}
}

func unzipWalk(low bool, comment string) ruleFn {
	start := 0
	if !low {
		start = 1
	}
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		half := ty.Lanes / 2
		if comment != "" {
			f.ln("// %s", comment)
		}
		f.ln("var out %s", ty.Go())
		f.ln("for i := 0; i < %d; i++ {", half)
		f.ln("out[i] = a[2*i+%d]", start)
		f.ln("out[%d+i] = b[2*i+%d]", half, start)
		f.ln("}")
		f.ln("return out")
	}
}

func selectWalk(comment string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		if comment != "" {
			f.ln("// %s", comment)
		}
		f.ln("var out %s", ty.Go())
		f.ln("for i := range out {")
		f.ln("if m[i] != 0 {")
		f.ln("out[i] = a[i]")
		f.ln("} else {")
		f.ln("out[i] = b[i]")
		f.ln("}")
		f.ln("}")
		f.ln("return out")
	}
}

// bitwiseSelect emits the blend the way BSL, v128.bitselect and
// VPTERNLOGD 0xCA perform it: bit by bit through the mask pattern.
func bitwiseSelect(comment string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		if comment != "" {
			f.ln("// %s", comment)
		}
		s := ty.Scalar
		f.ln("var out %s", ty.Go())
		f.ln("for i := range out {")
		f.ln("mb := %s(m[i])", s.GoUnsigned())
		switch {
		case s.IsFloat() && s.Bits == 32:
			f.needImport("math")
			f.ln("out[i] = math.Float32frombits(mb&math.Float32bits(a[i]) | ^mb&math.Float32bits(b[i]))")
		case s.IsFloat():
			f.needImport("math")
			f.ln("out[i] = math.Float64frombits(mb&math.Float64bits(a[i]) | ^mb&math.Float64bits(b[i]))")
		default:
			f.ln("out[i] = %s(mb&%s(a[i]) | ^mb&%s(b[i]))", s.Go(), s.GoUnsigned(), s.GoUnsigned())
		}
		f.ln("}")
		f.ln("return out")
	}
}

func slideWalk(within bool, comment string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		if comment != "" {
			f.ln("// %s", comment)
		}
		blockLanes := ty.Lanes
		if within {
			blockLanes = 128 / ty.Scalar.Bits
		}
		f.ln("if shift <= 0 || shift >= %d {", blockLanes)
		f.ln("return b")
		f.ln("}")
		f.ln("var out %s", ty.Go())
		if blockLanes == ty.Lanes {
			f.ln("n := copy(out[:], b[shift:])")
			f.ln("copy(out[n:], a[:])")
		} else {
			f.ln("for blk := 0; blk < %d; blk++ {", ty.Lanes/blockLanes)
			f.ln("base := blk * %d", blockLanes)
			f.ln("n := copy(out[base:base+%d], b[base+shift:base+%d])", blockLanes, blockLanes)
			f.ln("copy(out[base+n:base+%d], a[base:base+%d])", blockLanes, blockLanes)
			f.ln("}")
		}
		f.ln("return out")
	}
}

func interleaveWalk(load bool, comment string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		per := ty.Lanes / 4
		if comment != "" {
			f.ln("// %s", comment)
		}
		f.ln("var out %s", ty.Go())
		if load {
			f.ln("for i := range src {")
			f.ln("out[(i%%4)*%d+i/4] = src[i]", per)
		} else {
			f.ln("for i := range out {")
			f.ln("out[i] = a[(i%%4)*%d+i/4]", per)
		}
		f.ln("}")
		f.ln("return out")
	}
}

// maskReduceWalk emits the quantifier loops. The sign test variant reads
// the lane's top bit the way PMOVMSKB does; canonical masks make the two
// forms agree.
func maskReduceWalk(signTest bool, comment string) ruleFn {
	return func(f *fileBuf, op Op, ty VecType, tgt Target) {
		set, clear := "m[i] != 0", "m[i] == 0"
		if signTest {
			set, clear = "m[i] < 0", "m[i] >= 0"
		}
		if comment != "" {
			f.ln("// %s", comment)
		}
		f.ln("for i := range m {")
		switch op.Method {
		case "any_true":
			f.ln("if %s {", set)
			f.ln("return true")
		case "all_true":
			f.ln("if %s {", clear)
			f.ln("return false")
		case "any_false":
			f.ln("if %s {", clear)
			f.ln("return true")
		case "all_false":
			f.ln("if %s {", set)
			f.ln("return false")
		}
		f.ln("}")
		f.ln("}")
		switch op.Method {
		case "any_true", "any_false":
			f.ln("return false")
		default:
			f.ln("return true")
		}
	}
}

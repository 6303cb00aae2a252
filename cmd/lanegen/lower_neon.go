package main

// NEON rules. The permutes run full-register (no 128-bit lane split to
// fix up), the conversions saturate natively, and LD4/ST4 do the
// interleaving in the load/store unit.

const neonImport = "github.com/veclane/go-lanes/lanes/inst/neon"

var neonRules = map[string]ruleFn{
	"zip_low":               zipWalk(true, "ZIP1 over the full register."),
	"zip_high":              zipWalk(false, "ZIP2 over the full register."),
	"unzip_low":             unzipWalk(true, "UZP1 over the full register."),
	"unzip_high":            unzipWalk(false, "UZP2 over the full register."),
	"select":                bitwiseSelect("BSL: bitwise blend, each mask bit picks a (set) or b (clear)."),
	"slide":                 slideWalk(false, "EXT over adjacent block pairs."),
	"slide_within_blocks":   slideWalk(true, "EXT within each 128-bit block."),
	"load_interleaved_128":  interleaveWalk(true, "LD4 deinterleaves in the load unit."),
	"store_interleaved_128": interleaveWalk(false, "ST4 interleaves in the store unit."),
	"widen":                 neonWiden,
	"narrow":                neonNarrow,
	"cvt_u32":               neonCvtU32,
	"cvt_u32_fast":          neonCvtU32,
	"cvt_i32":               neonCvtI32,
	"cvt_i32_fast":          neonCvtI32,
	"cvt_f32":               neonCvtToF32,
	"any_true":              maskReduceWalk(false, "UMAXV over the mask bytes."),
	"all_true":              maskReduceWalk(false, "UMINV over the mask bytes."),
	"any_false":             maskReduceWalk(false, "UMINV over the mask bytes."),
	"all_false":             maskReduceWalk(false, "UMAXV over the mask bytes."),
}

func neonWiden(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(neonImport)
	f.ln("// UXTL (vmovl_u8)")
	f.ln("w := neon.VmovlU8(a[:])")
	f.ln("var out %s", ty.SameLanes(scalarU16).Go())
	f.ln("copy(out[:], w)")
	f.ln("return out")
}

func neonNarrow(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(neonImport)
	f.ln("// XTN (vmovn_u16) truncates; there is no saturation to undo.")
	f.ln("p := neon.VmovnU16(a[:])")
	f.ln("var out %s", ty.SameLanes(scalarU8).Go())
	f.ln("copy(out[:], p)")
	f.ln("return out")
}

// neonCvtU32 serves both modes: FCVTZU saturates and maps NaN to zero
// natively, so the fast form already has the precise semantics.
func neonCvtU32(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(neonImport)
	f.ln("// FCVTZU")
	f.ln("conv := neon.VcvtU32F32(a[:])")
	f.ln("var out [%d]uint32", ty.Lanes)
	f.ln("copy(out[:], conv)")
	f.ln("return out")
}

func neonCvtI32(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(neonImport)
	f.ln("// FCVTZS")
	f.ln("conv := neon.VcvtS32F32(a[:])")
	f.ln("var out [%d]int32", ty.Lanes)
	f.ln("copy(out[:], conv)")
	f.ln("return out")
}

func neonCvtToF32(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(neonImport)
	if ty.Scalar == scalarI32 {
		f.ln("// SCVTF")
		f.ln("conv := neon.VcvtF32S32(a[:])")
	} else {
		f.ln("// UCVTF")
		f.ln("conv := neon.VcvtF32U32(a[:])")
	}
	f.ln("var out [%d]float32", ty.Lanes)
	f.ln("copy(out[:], conv)")
	f.ln("return out")
}

package main

// wasm simd128 rules. Every permute is an i8x16.shuffle with a computed
// index table, the saturating truncations are the only truncations the
// instruction set offers, and the wrap-narrow is a v128.and followed by
// the saturating narrow.

const wasmImport = "github.com/veclane/go-lanes/lanes/inst/wasm"

var wasmRules = map[string]ruleFn{
	"zip_low":               zipWalk(true, "i8x16.shuffle with an interleave index table."),
	"zip_high":              zipWalk(false, "i8x16.shuffle with an interleave index table."),
	"unzip_low":             unzipWalk(true, "i8x16.shuffle gathering every second lane."),
	"unzip_high":            unzipWalk(false, "i8x16.shuffle gathering every second lane."),
	"select":                bitwiseSelect("v128.bitselect."),
	"slide":                 slideWalk(false, "i8x16.shuffle over the concatenated pair; index j reads byte shift+j."),
	"slide_within_blocks":   slideWalk(true, "i8x16.shuffle within each 128-bit block."),
	"load_interleaved_128":  interleaveWalk(true, "No wasm structure load; lowered as shuffled gathers."),
	"store_interleaved_128": interleaveWalk(false, "No wasm structure store; lowered as shuffled scatters."),
	"widen":                 wasmWiden,
	"narrow":                wasmNarrow,
	"cvt_u32":               wasmCvtU32,
	"cvt_u32_fast":          wasmCvtU32,
	"cvt_i32":               wasmCvtI32,
	"cvt_i32_fast":          wasmCvtI32,
	"cvt_f32":               wasmCvtToF32,
	"any_true":              maskReduceWalk(false, "v128.any_true."),
	"all_true":              maskReduceWalk(false, "all_true over the lane width."),
	"any_false":             maskReduceWalk(false, "all_true over the lane width, inverted."),
	"all_false":             maskReduceWalk(false, "v128.any_true, inverted."),
}

func wasmWiden(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(wasmImport)
	blocks := ty.Bits() / 128
	f.ln("// u16x8.extend_low_u8x16 and extend_high per 128-bit block.")
	f.ln("w := make([]uint16, 0, %d)", ty.Lanes)
	f.ln("for blk := 0; blk < %d; blk++ {", blocks)
	f.ln("w = append(w, wasm.U16x8ExtendLowU8x16(a[blk*16:blk*16+16])...)")
	f.ln("w = append(w, wasm.U16x8ExtendHighU8x16(a[blk*16:blk*16+16])...)")
	f.ln("}")
	f.ln("var out %s", ty.SameLanes(scalarU16).Go())
	f.ln("copy(out[:], w)")
	f.ln("return out")
}

func wasmNarrow(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(wasmImport)
	half := ty.Lanes / 2
	f.ln("// v128.and with 0x00FF so i8x16.narrow_i16x8_u's saturation cannot")
	f.ln("// fire; the result wraps like a plain truncation.")
	f.ln("masked := make([]uint16, %d)", ty.Lanes)
	f.ln("for i := range masked {")
	f.ln("masked[i] = a[i] & 0xFF")
	f.ln("}")
	f.ln("p := wasm.I8x16NarrowI16x8U(masked[:%d], masked[%d:])", half, half)
	f.ln("var out %s", ty.SameLanes(scalarU8).Go())
	f.ln("copy(out[:], p)")
	f.ln("return out")
}

// wasmCvtU32 serves both modes: i32x4.trunc_sat_f32x4_u saturates and
// maps NaN to zero, which is already the precise contract.
func wasmCvtU32(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(wasmImport)
	f.ln("// i32x4.trunc_sat_f32x4_u")
	f.ln("conv := wasm.I32x4TruncSatF32x4U(a[:])")
	f.ln("var out [%d]uint32", ty.Lanes)
	f.ln("copy(out[:], conv)")
	f.ln("return out")
}

func wasmCvtI32(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(wasmImport)
	f.ln("// i32x4.trunc_sat_f32x4_s")
	f.ln("conv := wasm.I32x4TruncSatF32x4S(a[:])")
	f.ln("var out [%d]int32", ty.Lanes)
	f.ln("copy(out[:], conv)")
	f.ln("return out")
}

func wasmCvtToF32(f *fileBuf, op Op, ty VecType, tgt Target) {
	f.needImport(wasmImport)
	if ty.Scalar == scalarI32 {
		f.ln("// f32x4.convert_i32x4_s")
		f.ln("conv := wasm.F32x4ConvertI32x4S(a[:])")
	} else {
		f.ln("// f32x4.convert_i32x4_u")
		f.ln("conv := wasm.F32x4ConvertI32x4U(a[:])")
	}
	f.ln("var out [%d]float32", ty.Lanes)
	f.ln("copy(out[:], conv)")
	f.ln("return out")
}

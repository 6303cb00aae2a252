package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"

	"github.com/veclane/go-lanes/lanes"
)

func TestVecTypeCatalogue(t *testing.T) {
	if got, want := len(vecTypes), 36; got != want {
		t.Fatalf("len(vecTypes) = %d, want %d", got, want)
	}
	seen := map[string]bool{}
	for _, ty := range vecTypes {
		if seen[ty.Name()] {
			t.Errorf("duplicate catalogue entry %s", ty.Name())
		}
		seen[ty.Name()] = true
		switch ty.Bits() {
		case 128, 256, 512:
		default:
			t.Errorf("%s: width %d bits", ty.Name(), ty.Bits())
		}
	}
	for _, want := range []string{"f32x4", "f64x8", "u8x64", "i16x16", "m32x16", "m64x2"} {
		if !seen[want] {
			t.Errorf("catalogue is missing %s", want)
		}
	}
}

func TestVecTypeQueries(t *testing.T) {
	f32x8 := VecType{scalarF32, 8}
	if got, want := f32x8.Go(), "[8]float32"; got != want {
		t.Errorf("Go() = %q, want %q", got, want)
	}
	if got, want := f32x8.Mask().Name(), "m32x8"; got != want {
		t.Errorf("Mask() = %s, want %s", got, want)
	}
	if got, want := f32x8.Half().Name(), "f32x4"; got != want {
		t.Errorf("Half() = %s, want %s", got, want)
	}
	if got, want := f32x8.Double().Name(), "f32x16"; got != want {
		t.Errorf("Double() = %s, want %s", got, want)
	}
	if got, want := f32x8.WithScalar(scalarU8).Name(), "u8x32"; got != want {
		t.Errorf("WithScalar(u8) = %s, want %s", got, want)
	}
	if got, want := f32x8.SameLanes(scalarU32).Name(), "u32x8"; got != want {
		t.Errorf("SameLanes(u32) = %s, want %s", got, want)
	}
	m8x16 := VecType{scalarM8, 16}
	if got, want := m8x16.Scalar.Go(), "int8"; got != want {
		t.Errorf("mask element = %q, want %q", got, want)
	}
}

func hasOp(ty VecType, method string) bool {
	return lo.ContainsBy(opsForType(ty), func(op Op) bool { return op.Method == method })
}

func TestOpsForType(t *testing.T) {
	tests := []struct {
		ty     VecType
		method string
		want   bool
	}{
		{VecType{scalarF32, 4}, "madd", true},
		{VecType{scalarF32, 4}, "cvt_u32", true},
		{VecType{scalarF32, 4}, "cvt_u32_fast", true},
		{VecType{scalarF32, 4}, "combine", true},
		{VecType{scalarF32, 4}, "split", false},
		{VecType{scalarF32, 16}, "combine", false},
		{VecType{scalarF32, 16}, "split", true},
		{VecType{scalarF32, 16}, "load_interleaved_128", true},
		{VecType{scalarF64, 8}, "load_interleaved_128", false},
		{VecType{scalarU8, 64}, "load_interleaved_128", true},
		{VecType{scalarI8, 64}, "load_interleaved_128", false},
		{VecType{scalarU8, 16}, "widen", true},
		{VecType{scalarU8, 32}, "widen", true},
		{VecType{scalarU8, 64}, "widen", false},
		{VecType{scalarU16, 8}, "narrow", false},
		{VecType{scalarU16, 16}, "narrow", true},
		{VecType{scalarM8, 16}, "zip_low", false},
		{VecType{scalarM8, 16}, "any_true", true},
		{VecType{scalarM8, 16}, "slide", true},
		{VecType{scalarI8, 16}, "neg", true},
		{VecType{scalarU8, 16}, "neg", false},
		{VecType{scalarU32, 4}, "cvt_f32", true},
		{VecType{scalarI32, 4}, "cvt_f32", true},
		{VecType{scalarU16, 8}, "cvt_f32", false},
		{VecType{scalarF64, 2}, "cvt_u32", false},
	}
	for _, tt := range tests {
		if got := hasOp(tt.ty, tt.method); got != tt.want {
			t.Errorf("opsForType(%s) has %q = %v, want %v", tt.ty.Name(), tt.method, got, tt.want)
		}
	}
}

func TestMaskOpSet(t *testing.T) {
	got := lo.Map(opsForType(VecType{scalarM8, 16}), func(op Op, _ int) string { return op.Method })
	want := []string{
		"splat", "and", "or", "xor", "not", "select", "simd_eq",
		"any_true", "all_true", "any_false", "all_false",
		"combine", "slide", "slide_within_blocks",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("opsForType(m8x16) mismatch (-want +got):\n%s", diff)
	}
}

func TestReinterpretTargets(t *testing.T) {
	name := func(ty VecType) []string {
		return lo.Map(ty.reinterpretTargets(), func(s Scalar, _ int) string { return s.Name() })
	}
	if diff := cmp.Diff([]string{"u8", "u32", "i32", "f64"}, name(VecType{scalarF32, 4})); diff != "" {
		t.Errorf("f32x4 views mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"u8"}, name(VecType{scalarU32, 4})); diff != "" {
		t.Errorf("u32x4 views mismatch (-want +got):\n%s", diff)
	}
	if got := name(VecType{scalarM8, 16}); len(got) != 0 {
		t.Errorf("m8x16 views = %v, want none", got)
	}
}

func TestExportedName(t *testing.T) {
	tests := []struct {
		method string
		ty     VecType
		want   string
	}{
		{"add", VecType{scalarF32, 4}, "AddF32x4"},
		{"round_ties_even", VecType{scalarF32, 4}, "RoundTiesEvenF32x4"},
		{"cvt_u32_fast", VecType{scalarF32, 8}, "CvtU32FastF32x8"},
		{"simd_eq", VecType{scalarM8, 16}, "SimdEqM8x16"},
		{"load_interleaved_128", VecType{scalarU8, 64}, "LoadInterleaved128U8x64"},
		{"reinterpret_u8", VecType{scalarF32, 4}, "ReinterpretU8F32x4"},
	}
	for _, tt := range tests {
		if got := exportedName(Op{Method: tt.method}, tt.ty); got != tt.want {
			t.Errorf("exportedName(%q, %s) = %q, want %q", tt.method, tt.ty.Name(), got, tt.want)
		}
	}
}

func TestInternalName(t *testing.T) {
	avx2, _ := lo.Find(allTargets, func(tgt Target) bool { return tgt.Suffix == "avx2" })
	if got, want := internalName(Op{Method: "add"}, VecType{scalarF32, 4}, avx2), "addF32x4_avx2"; got != want {
		t.Errorf("internalName = %q, want %q", got, want)
	}
}

func TestResolveTargets(t *testing.T) {
	got, err := resolveTargets([]string{"avx2"})
	if err != nil {
		t.Fatalf("resolveTargets(avx2) error = %v", err)
	}
	names := lo.Map(got, func(t Target, _ int) string { return t.Suffix })
	if diff := cmp.Diff([]string{"fallback", "avx2"}, names); diff != "" {
		t.Errorf("resolveTargets(avx2) mismatch (-want +got):\n%s", diff)
	}

	all, err := resolveTargets([]string{"all"})
	if err != nil {
		t.Fatalf("resolveTargets(all) error = %v", err)
	}
	if len(all) != len(allTargets) {
		t.Errorf("resolveTargets(all) = %d targets, want %d", len(all), len(allTargets))
	}

	if _, err := resolveTargets([]string{"mmx"}); err == nil {
		t.Error("resolveTargets(mmx) succeeded, want error")
	} else if !strings.Contains(err.Error(), "unknown target") {
		t.Errorf("resolveTargets(mmx) error = %v, want it to name the unknown target", err)
	}
}

func TestVerifyTargets(t *testing.T) {
	if err := verifyTargets(allTargets); err != nil {
		t.Errorf("verifyTargets(allTargets) error = %v", err)
	}
}

func TestDecomposeBits(t *testing.T) {
	bySuffix := func(s string) Target {
		tgt, _ := lo.Find(allTargets, func(tgt Target) bool { return tgt.Suffix == s })
		return tgt
	}
	zip := Op{Method: "zip_low", Sig: SigZip}
	add := Op{Method: "add", Sig: SigBinary}
	tests := []struct {
		target string
		op     Op
		want   int
	}{
		{"sse42", add, 128},
		{"sse42", zip, 128},
		{"avx2", add, 256},
		{"avx2", zip, 256},
		{"avx512", add, 512},
		{"avx512", zip, 256},
		{"neon", zip, 128},
	}
	for _, tt := range tests {
		if got := decomposeBits(bySuffix(tt.target), tt.op); got != tt.want {
			t.Errorf("decomposeBits(%s, %s) = %d, want %d", tt.target, tt.op.Method, got, tt.want)
		}
	}
}

func TestCheckCompleteness(t *testing.T) {
	g := &Generator{Targets: allTargets}
	if err := g.check(); err != nil {
		t.Fatalf("check() over all targets: %v", err)
	}

	// A target with no family table has nowhere to send the permutes and
	// conversions; the proof must fail and name the hole.
	hole := Target{Name: "hole", Suffix: "hole", Family: "none", Level: lanes.LevelFallback, ShuffleBits: 128}
	g = &Generator{Targets: []Target{hole}}
	err := g.check()
	if err == nil {
		t.Fatal("check() passed for a target with no rules")
	}
	for _, want := range []string{"zip_low", "f32x4", "hole"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("check() error = %q, want it to mention %q", err, want)
		}
	}
}

package lanes

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelFallback, "fallback"},
		{LevelSse42, "sse4.2"},
		{LevelAvx2, "avx2"},
		{LevelAvx512, "avx512"},
		{LevelNeon, "neon"},
		{LevelWasmSimd128, "wasm128"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelVecBits(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelFallback, 128},
		{LevelSse42, 128},
		{LevelAvx2, 256},
		{LevelAvx512, 512},
		{LevelNeon, 128},
		{LevelWasmSimd128, 128},
	}
	for _, tt := range tests {
		if got := tt.level.VecBits(); got != tt.want {
			t.Errorf("%s.VecBits() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelAccessors(t *testing.T) {
	if _, ok := LevelAvx2.AsAvx2(); !ok {
		t.Error("LevelAvx2.AsAvx2() = false")
	}
	if _, ok := LevelNeon.AsAvx2(); ok {
		t.Error("LevelNeon.AsAvx2() = true")
	}
	if _, ok := LevelSse42.AsSse42(); !ok {
		t.Error("LevelSse42.AsSse42() = false")
	}
	if _, ok := LevelAvx512.AsAvx512(); !ok {
		t.Error("LevelAvx512.AsAvx512() = false")
	}
	if _, ok := LevelNeon.AsNeon(); !ok {
		t.Error("LevelNeon.AsNeon() = false")
	}
	if _, ok := LevelWasmSimd128.AsWasmSimd128(); !ok {
		t.Error("LevelWasmSimd128.AsWasmSimd128() = false")
	}
	if _, ok := LevelFallback.AsNeon(); ok {
		t.Error("LevelFallback.AsNeon() = true")
	}
}

func TestTokenLevelRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		got  Level
		want Level
	}{
		{"fallback", NewFallback().Level(), LevelFallback},
		{"sse4.2", NewSse42Unchecked().Level(), LevelSse42},
		{"avx2", NewAvx2Unchecked().Level(), LevelAvx2},
		{"avx512", NewAvx512Unchecked().Level(), LevelAvx512},
		{"neon", NewNeonUnchecked().Level(), LevelNeon},
		{"wasm128", NewWasmSimd128Unchecked().Level(), LevelWasmSimd128},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s token Level() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestTryNewVerifies(t *testing.T) {
	// A token that constructs must have its whole feature string granted
	// by the host; a token that doesn't must name the gap. Which branch
	// runs depends on the host, so assert the implication both ways.
	check := func(name, features string, ok bool) {
		missing, has := HasFlags(features)
		if ok && !has {
			t.Errorf("TryNew%s succeeded but host lacks %q", name, missing)
		}
		if !ok && has {
			t.Errorf("TryNew%s failed on a host granting all of %q", name, features)
		}
	}
	_, ok := TryNewSse42()
	check("Sse42", sse42Features, ok)
	_, ok = TryNewAvx2()
	check("Avx2", avx2Features, ok)
	_, ok = TryNewAvx512()
	check("Avx512", avx512Features, ok)
	_, ok = TryNewWasmSimd128()
	check("WasmSimd128", wasmFeatures, ok)
}

func TestSetActiveReturnsPrevious(t *testing.T) {
	orig := Active()
	defer SetActive(orig)

	if prev := SetActive(LevelNeon); prev != orig {
		t.Errorf("SetActive returned %v, want %v", prev, orig)
	}
	if got := Active(); got != LevelNeon {
		t.Errorf("Active() = %v after SetActive(LevelNeon)", got)
	}
	if prev := SetActive(LevelFallback); prev != LevelNeon {
		t.Errorf("SetActive returned %v, want LevelNeon", prev)
	}
}

func TestDetectNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true}, // unparseable values count as set
		{"0", false},
		{"false", false},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("LANES_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
			if tt.want && Detect() != LevelFallback {
				t.Errorf("Detect() with LANES_NO_SIMD=%q = %v, want fallback", tt.val, Detect())
			}
		})
	}
}

func TestDetectIsVerified(t *testing.T) {
	// Whatever Detect picks, the host must grant that level's whole
	// feature string. This is the token protocol's core promise.
	lv := Detect()
	if lv == LevelFallback {
		return
	}
	if missing, ok := HasFlags(lv.Features()); !ok {
		t.Errorf("Detect() = %s but host lacks %q", lv, missing)
	}
}

func TestMaxLanes(t *testing.T) {
	orig := Active()
	defer SetActive(orig)

	SetActive(LevelFallback)
	if got := MaxLanes[float32](); got != 4 {
		t.Errorf("MaxLanes[float32]() at fallback = %d, want 4", got)
	}
	if got := MaxLanes[float64](); got != 2 {
		t.Errorf("MaxLanes[float64]() at fallback = %d, want 2", got)
	}

	SetActive(LevelAvx2)
	if got := MaxLanes[float32](); got != 8 {
		t.Errorf("MaxLanes[float32]() at avx2 = %d, want 8", got)
	}
	if got := MaxLanes[uint8](); got != 32 {
		t.Errorf("MaxLanes[uint8]() at avx2 = %d, want 32", got)
	}

	SetActive(LevelAvx512)
	if got := MaxLanes[float64](); got != 8 {
		t.Errorf("MaxLanes[float64]() at avx512 = %d, want 8", got)
	}
}

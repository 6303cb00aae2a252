package lanes

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

// normalizeProj computes x/sqrt(x*x+1) lane-wise, a shape that touches
// splat, madd, sqrt and divide in one pass.
func normalizeProj(xs []float32) []float32 {
	v := Load128(xs)
	den := Sqrt128(Madd128(v, v, Splat128[float32](1)))
	return Div128(v, den).Data()
}

func TestVectorizeFallback(t *testing.T) {
	in := []float32{0, 1, -2, 10}
	got := Vectorize(LevelFallback, func() []float32 {
		if Active() != LevelFallback {
			t.Errorf("Active() inside = %v, want fallback", Active())
		}
		return normalizeProj(in)
	})
	for i, x := range in {
		want := float64(x) / math.Sqrt(float64(x)*float64(x)+1)
		if diff := math.Abs(float64(got[i]) - want); diff > 1e-6 {
			t.Errorf("lane %d = %v, want about %v (diff %g)", i, got[i], want, diff)
		}
	}
}

func TestVectorizeAcrossLevels(t *testing.T) {
	in := []float32{0.5, -3, 42, 1e-8}
	want := Vectorize(LevelFallback, func() []float32 { return normalizeProj(in) })

	for lv := LevelFallback; lv < numLevels; lv++ {
		if _, ok := HasFlags(lv.Features()); !ok && lv != LevelFallback {
			continue
		}
		got := Vectorize(lv, func() []float32 { return normalizeProj(in) })
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v: Vectorize result = %v, want %v", lv, got, want)
		}
	}
}

func TestVectorizeUnsupportedPanics(t *testing.T) {
	// No host grants x86, ARM and wasm capabilities at once, so some
	// level always fails verification.
	var unsupported Level = -1
	for lv := LevelSse42; lv < numLevels; lv++ {
		if _, ok := HasFlags(lv.Features()); !ok {
			unsupported = lv
			break
		}
	}
	if unsupported < 0 {
		t.Fatal("host claims every instruction set; feature probing is broken")
	}

	before := Active()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Vectorize(%v) did not panic", unsupported)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "not supported by host") {
			t.Errorf("panic = %v, want mention of host support", r)
		}
		if !strings.Contains(msg, unsupported.String()) {
			t.Errorf("panic = %q, want the level name %q in it", msg, unsupported.String())
		}
		if Active() != before {
			t.Errorf("Active() = %v after failed Vectorize, want %v", Active(), before)
		}
	}()
	Vectorize(unsupported, func() int { return 0 })
}

func TestVectorizeRestoresPreviousLevel(t *testing.T) {
	orig := Active()
	defer SetActive(orig)

	SetActive(LevelNeon)
	res := Vectorize(LevelFallback, func() string {
		if Active() != LevelFallback {
			t.Errorf("Active() inside = %v, want fallback", Active())
		}
		return "done"
	})
	if res != "done" {
		t.Errorf("Vectorize result = %q, want %q", res, "done")
	}
	if Active() != LevelNeon {
		t.Errorf("Active() after = %v, want the level set before", Active())
	}
}

func TestVectorizeNested(t *testing.T) {
	orig := Active()
	defer SetActive(orig)

	Vectorize(LevelFallback, func() struct{} {
		Vectorize(LevelFallback, func() struct{} { return struct{}{} })
		if Active() != LevelFallback {
			t.Errorf("Active() after nested call = %v, want fallback", Active())
		}
		return struct{}{}
	})
}

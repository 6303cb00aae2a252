package lanes

import (
	"reflect"
	"testing"
)

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"avx2,bmi1,bmi2", []string{"avx2", "bmi1", "bmi2"}},
		{"neon", []string{"neon"}},
		// Splitting an empty string yields one empty-named flag, not zero
		// flags; Subset("") therefore only succeeds against a grant that
		// contains the empty name.
		{"", []string{""}},
	}
	for _, tt := range tests {
		if got := ParseFeatures(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseFeatures(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSubset(t *testing.T) {
	granted := [][]string{
		{"sse4.2", "cmpxchg16b", "popcnt"},
		{"avx2", "bmi1", "bmi2", "fma"},
	}
	tests := []struct {
		name        string
		request     string
		granted     [][]string
		wantMissing string
		wantOk      bool
	}{
		{"single flag", "avx2", granted, "", true},
		{"across groups", "popcnt,fma", granted, "", true},
		{"full group", "sse4.2,cmpxchg16b,popcnt", granted, "", true},
		{"absent flag", "avx512f", granted, "avx512f", false},
		{"first missing wins", "fma,avx512f,avx512bw", granted, "avx512f", false},
		{"duplicates check like any flag", "fma,avx2,fma,fma", granted, "", true},
		{"flag names are byte-exact", "AVX2", granted, "AVX2", false},
		{"non-ASCII names are ordinary bytes", "avx2,čžš", granted, "čžš", false},
		{"empty request string is one empty flag", "", granted, "", false},
		{"empty flag name can be granted", "", [][]string{{""}}, "", true},
		{"nothing granted", "avx2", nil, "avx2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, ok := Subset(tt.request, tt.granted)
			if missing != tt.wantMissing || ok != tt.wantOk {
				t.Errorf("Subset(%q) = (%q, %v), want (%q, %v)",
					tt.request, missing, ok, tt.wantMissing, tt.wantOk)
			}
		})
	}
}

func TestSubsetFlagsNilRequest(t *testing.T) {
	// A request for zero flags is a nil slice and always succeeds, even
	// against an empty grant.
	if missing, ok := SubsetFlags(nil, nil); !ok || missing != "" {
		t.Errorf("SubsetFlags(nil, nil) = (%q, %v), want (\"\", true)", missing, ok)
	}
	if _, ok := SubsetFlags([]string{}, [][]string{{"avx2"}}); !ok {
		t.Error("SubsetFlags(empty, ...) = false, want true")
	}
}

func TestHasFlagUnknown(t *testing.T) {
	if HasFlag("not-a-real-cpu-flag") {
		t.Error("HasFlag(not-a-real-cpu-flag) = true")
	}
}

func TestTokenSelfConsistency(t *testing.T) {
	// Every token's own feature string must be a subset of what it
	// grants; the generator relies on the same law per target.
	tokens := []interface {
		Features() string
		Granted() [][]string
		Level() Level
	}{
		Fallback{}, Sse42{}, Avx2{}, Avx512{}, Neon{}, WasmSimd128{},
	}
	for _, tok := range tokens {
		if tok.Level() == LevelFallback {
			continue // empty feature string, checked by the empty-flag law above
		}
		if missing, ok := Subset(tok.Features(), tok.Granted()); !ok {
			t.Errorf("level %s: token does not grant its own flag %q", tok.Level(), missing)
		}
	}
}

func TestGrantedOrdering(t *testing.T) {
	// Stronger x86 tokens grant every weaker x86 token's flags, never the
	// other way around, and the ARM and wasm tokens stand alone.
	tests := []struct {
		name    string
		request Level
		grant   Level
		wantOk  bool
	}{
		{"avx2 implies sse4.2", LevelSse42, LevelAvx2, true},
		{"avx512 implies avx2", LevelAvx2, LevelAvx512, true},
		{"avx512 implies sse4.2", LevelSse42, LevelAvx512, true},
		{"sse4.2 does not imply avx2", LevelAvx2, LevelSse42, false},
		{"avx2 does not imply avx512", LevelAvx512, LevelAvx2, false},
		{"neon does not imply sse4.2", LevelSse42, LevelNeon, false},
		{"avx512 does not imply neon", LevelNeon, LevelAvx512, false},
		{"wasm128 stands alone", LevelWasmSimd128, LevelAvx512, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Subset(tt.request.Features(), tt.grant.Granted())
			if ok != tt.wantOk {
				t.Errorf("Subset(%s features, %s granted) = %v, want %v",
					tt.request, tt.grant, ok, tt.wantOk)
			}
		})
	}
}

package lanes

import (
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// hostFlags is the set of CPU flags the host reports, keyed by the names
// used in feature strings. Built once; tokens verify against it flag by
// flag, so a token's feature string is checked literally rather than via
// coarse capability booleans.
var hostFlags = buildHostFlags()

// flagAliases maps feature-string names to the names the cpuid package
// reports where the two vocabularies differ. The xsave save-state
// refinements collapse onto the base xsave probe; they are not reported
// separately on all hosts.
var flagAliases = map[string]string{
	"sse4.2":     "sse42",
	"cmpxchg16b": "cx16",
	"aes":        "aesni",
	"pclmulqdq":  "clmul",
	"fma":        "fma3",
	"xsavec":     "xsave",
	"xsaveopt":   "xsave",
	"xsaves":     "xsave",
	"neon":       "asimd",
}

func buildHostFlags() map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range cpuid.CPU.FeatureSet() {
		set[strings.ToLower(name)] = struct{}{}
	}
	// The wasm simd128 capability is a compile-time property, not a cpuid
	// leaf; grant it whenever we were built for wasm at all.
	if runtime.GOARCH == "wasm" {
		set["simd128"] = struct{}{}
	}
	return set
}

// HasFlag reports whether the host grants one named CPU flag.
func HasFlag(flag string) bool {
	name := flag
	if alias, ok := flagAliases[flag]; ok {
		name = alias
	}
	_, ok := hostFlags[name]
	return ok
}

// HasFlags reports whether the host grants every flag in a feature string.
// On failure, missing names the first absent flag in string order.
func HasFlags(features string) (missing string, ok bool) {
	for _, flag := range ParseFeatures(features) {
		if !HasFlag(flag) {
			return flag, false
		}
	}
	return "", true
}

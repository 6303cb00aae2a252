package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/veclane/go-lanes/lanes"
)

// Target is one code-generation backend. The lowering rule tables are
// keyed by Family; Level ties the target to the runtime capability token
// whose dispatch case selects the emitted routines.
type Target struct {
	Name        string      // user-facing: "sse4.2", "avx2", "wasm128"
	Suffix      string      // identifier-safe: routine and file name suffix
	Family      string      // rule table: "fallback", "x86", "neon", "wasm"
	Level       lanes.Level // runtime dispatch case and feature source
	LevelName   string      // Go constant name emitted in dispatch switches
	ShuffleBits int         // widest permute the backend lowers in one routine
	BuildTag    string      // GOARCH constraint of the emitted file; "" for none
	GOARCH      string      // dispatch file grouping; "" rides with fallback
}

var allTargets = []Target{
	{Name: "fallback", Suffix: "fallback", Family: "fallback", Level: lanes.LevelFallback, LevelName: "LevelFallback", ShuffleBits: 128},
	{Name: "sse4.2", Suffix: "sse42", Family: "x86", Level: lanes.LevelSse42, LevelName: "LevelSse42", ShuffleBits: 128, BuildTag: "amd64", GOARCH: "amd64"},
	{Name: "avx2", Suffix: "avx2", Family: "x86", Level: lanes.LevelAvx2, LevelName: "LevelAvx2", ShuffleBits: 256, BuildTag: "amd64", GOARCH: "amd64"},
	{Name: "avx512", Suffix: "avx512", Family: "x86", Level: lanes.LevelAvx512, LevelName: "LevelAvx512", ShuffleBits: 256, BuildTag: "amd64", GOARCH: "amd64"},
	{Name: "neon", Suffix: "neon", Family: "neon", Level: lanes.LevelNeon, LevelName: "LevelNeon", ShuffleBits: 128, BuildTag: "arm64", GOARCH: "arm64"},
	{Name: "wasm128", Suffix: "wasm128", Family: "wasm", Level: lanes.LevelWasmSimd128, LevelName: "LevelWasmSimd128", ShuffleBits: 128, BuildTag: "wasm", GOARCH: "wasm"},
}

// fallbackTarget backs every dispatch default case.
var fallbackTarget = allTargets[0]

// NativeBits is the register width the backend lowers element-wise ops at.
// Wider vectors decompose into recursive half-width calls.
func (t Target) NativeBits() int { return t.Level.VecBits() }

// Features returns the flag set emitted routines require of the host.
func (t Target) Features() string { return t.Level.Features() }

// decomposeBits returns the widest vector the target lowers directly for
// op. Permutes cross lane boundaries, so some backends stop short of
// their element-wise width (avx512 permutes decompose through 256).
func decomposeBits(t Target, op Op) int {
	if op.Sig == SigZip || op.Sig == SigUnzip {
		return t.ShuffleBits
	}
	return t.NativeBits()
}

// resolveTargets expands the --targets flag. The fallback backend is
// always included: every dispatch wrapper needs its default case.
func resolveTargets(names []string) ([]Target, error) {
	if len(names) == 1 && names[0] == "all" {
		return allTargets, nil
	}
	picked := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		tgt, ok := lo.Find(allTargets, func(t Target) bool {
			return t.Name == name || t.Suffix == name
		})
		if !ok {
			known := lo.Map(allTargets, func(t Target, _ int) string { return t.Name })
			return nil, fmt.Errorf("unknown target %q (have %s)", name, strings.Join(known, ", "))
		}
		picked[tgt.Suffix] = true
	}
	picked["fallback"] = true
	return lo.Filter(allTargets, func(t Target, _ int) bool {
		return picked[t.Suffix]
	}), nil
}

// verifyTargets checks each target's required features against its own
// token's granted set, with the same subset law the runtime dispatcher
// applies. A target that fails here would emit wrappers whose gate can
// never pass.
func verifyTargets(targets []Target) error {
	for _, tgt := range targets {
		if missing, ok := lanes.Subset(tgt.Features(), tgt.Level.Granted()); !ok {
			return fmt.Errorf("target %s: feature %q is not granted by its own token", tgt.Name, missing)
		}
	}
	return nil
}

// targetsByArch groups targets into dispatch files, most capable first
// within each group so the emitted switch probes downward.
func targetsByArch(targets []Target) map[string][]Target {
	arch := lo.GroupBy(targets, func(t Target) string { return t.GOARCH })
	for _, group := range arch {
		for i := 1; i < len(group); i++ {
			for j := i; j > 0 && group[j].Level > group[j-1].Level; j-- {
				group[j], group[j-1] = group[j-1], group[j]
			}
		}
	}
	return arch
}

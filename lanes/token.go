// Copyright 2024 The go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import "golang.org/x/sys/cpu"

// Capability tokens are zero-size proofs that a set of CPU features was
// verified. TryNew* constructors perform the verification; New*Unchecked
// constructors accept the caller's assertion that it happened elsewhere
// (a config file, a fleet inventory, a parent process).
//
// Feature strings follow the x86 target-attribute vocabulary. A token's
// Granted set is its own flags plus those of every weaker level it
// implies, which is what makes capability ordering checkable with Subset.

const (
	sse42Features  = "sse4.2,cmpxchg16b,popcnt"
	avx2Features   = "avx2,bmi1,bmi2,cmpxchg16b,f16c,fma,lzcnt,movbe,popcnt,xsave"
	avx512Features = "adx,aes,avx512bitalg,avx512bw,avx512cd,avx512dq,avx512f,avx512ifma," +
		"avx512vbmi,avx512vbmi2,avx512vl,avx512vnni,avx512vpopcntdq,bmi1,bmi2,cmpxchg16b," +
		"fma,gfni,lzcnt,movbe,pclmulqdq,popcnt,rdrand,rdseed,sha,vaes,vpclmulqdq," +
		"xsave,xsavec,xsaveopt,xsaves"
	neonFeatures = "neon"
	wasmFeatures = "simd128"
)

// Fallback is the capability token that proves nothing. It always
// constructs and gates only the portable scalar paths.
type Fallback struct{}

// NewFallback returns the no-capability token.
func NewFallback() Fallback { return Fallback{} }

// Features returns the empty feature string: nothing is required.
func (Fallback) Features() string { return "" }

// Granted returns no flag groups.
func (Fallback) Granted() [][]string { return nil }

// Level returns LevelFallback.
func (Fallback) Level() Level { return LevelFallback }

// Sse42 proves the SSE4.2 feature set (x86-64-v2 era baseline).
type Sse42 struct{}

// TryNewSse42 verifies the SSE4.2 feature set on the host.
func TryNewSse42() (Sse42, bool) {
	if !cpu.X86.HasSSE42 {
		return Sse42{}, false
	}
	_, ok := HasFlags(sse42Features)
	return Sse42{}, ok
}

// NewSse42Unchecked asserts, without verifying, that the SSE4.2 feature set
// holds. Dispatching through a token whose features the host lacks has
// unspecified results.
func NewSse42Unchecked() Sse42 { return Sse42{} }

func (Sse42) Features() string { return sse42Features }

func (Sse42) Granted() [][]string {
	return [][]string{ParseFeatures(sse42Features)}
}

func (Sse42) Level() Level { return LevelSse42 }

// Avx2 proves the AVX2+FMA feature set (x86-64-v3).
type Avx2 struct{}

// TryNewAvx2 verifies the AVX2 feature set on the host.
func TryNewAvx2() (Avx2, bool) {
	if !cpu.X86.HasAVX2 || !cpu.X86.HasFMA {
		return Avx2{}, false
	}
	_, ok := HasFlags(avx2Features)
	return Avx2{}, ok
}

// NewAvx2Unchecked asserts the AVX2 feature set without verifying it.
func NewAvx2Unchecked() Avx2 { return Avx2{} }

func (Avx2) Features() string { return avx2Features }

func (Avx2) Granted() [][]string {
	return [][]string{
		ParseFeatures(sse42Features),
		ParseFeatures(avx2Features),
	}
}

func (Avx2) Level() Level { return LevelAvx2 }

// Avx512 proves the Ice Lake AVX-512 feature set.
type Avx512 struct{}

// TryNewAvx512 verifies the AVX-512 feature set on the host.
func TryNewAvx512() (Avx512, bool) {
	if !cpu.X86.HasAVX512F || !cpu.X86.HasAVX512BW || !cpu.X86.HasAVX512DQ || !cpu.X86.HasAVX512VL {
		return Avx512{}, false
	}
	_, ok := HasFlags(avx512Features)
	return Avx512{}, ok
}

// NewAvx512Unchecked asserts the AVX-512 feature set without verifying it.
func NewAvx512Unchecked() Avx512 { return Avx512{} }

func (Avx512) Features() string { return avx512Features }

func (Avx512) Granted() [][]string {
	return [][]string{
		ParseFeatures(sse42Features),
		ParseFeatures(avx2Features),
		ParseFeatures(avx512Features),
	}
}

func (Avx512) Level() Level { return LevelAvx512 }

// Neon proves ARM AdvSIMD. Part of the ARMv8-A base architecture, so on
// arm64 this verifies trivially.
type Neon struct{}

// TryNewNeon verifies AdvSIMD on the host.
func TryNewNeon() (Neon, bool) {
	if cpu.ARM64.HasASIMD {
		return Neon{}, true
	}
	_, ok := HasFlags(neonFeatures)
	return Neon{}, ok
}

// NewNeonUnchecked asserts AdvSIMD without verifying it.
func NewNeonUnchecked() Neon { return Neon{} }

func (Neon) Features() string { return neonFeatures }

func (Neon) Granted() [][]string {
	return [][]string{ParseFeatures(neonFeatures)}
}

func (Neon) Level() Level { return LevelNeon }

// WasmSimd128 proves the wasm simd128 proposal. Whether the instructions
// exist is decided when the wasm binary is compiled, so verification is a
// build-target check rather than a cpuid probe.
type WasmSimd128 struct{}

// TryNewWasmSimd128 verifies simd128 support for this build.
func TryNewWasmSimd128() (WasmSimd128, bool) {
	_, ok := HasFlags(wasmFeatures)
	return WasmSimd128{}, ok
}

// NewWasmSimd128Unchecked asserts simd128 support without verifying it.
func NewWasmSimd128Unchecked() WasmSimd128 { return WasmSimd128{} }

func (WasmSimd128) Features() string { return wasmFeatures }

func (WasmSimd128) Granted() [][]string {
	return [][]string{ParseFeatures(wasmFeatures)}
}

func (WasmSimd128) Level() Level { return LevelWasmSimd128 }

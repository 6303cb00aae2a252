package lanes

import (
	"os"
	"strconv"
	"sync/atomic"
)

// Level names the most capable verified instruction set.
//
// A Level is obtained from Detect, from a token's Level method, or — as an
// unchecked assertion, like the New*Unchecked constructors — by using one
// of the constants directly.
type Level int32

const (
	// LevelFallback indicates no SIMD, pure Go implementation.
	LevelFallback Level = iota

	// LevelSse42 indicates SSE4.2 instructions (128-bit SIMD).
	LevelSse42

	// LevelAvx2 indicates AVX2 instructions (256-bit SIMD).
	LevelAvx2

	// LevelAvx512 indicates AVX-512 instructions (512-bit SIMD).
	LevelAvx512

	// LevelNeon indicates ARM NEON instructions (128-bit SIMD).
	LevelNeon

	// LevelWasmSimd128 indicates the wasm simd128 instruction set.
	LevelWasmSimd128

	numLevels = iota
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelFallback:
		return "fallback"
	case LevelSse42:
		return "sse4.2"
	case LevelAvx2:
		return "avx2"
	case LevelAvx512:
		return "avx512"
	case LevelNeon:
		return "neon"
	case LevelWasmSimd128:
		return "wasm128"
	default:
		return "unknown"
	}
}

// VecBits returns the native register width of the level in bits.
// The fallback width is 128 so portable code sees consistent shapes.
func (l Level) VecBits() int {
	switch l {
	case LevelAvx2:
		return 256
	case LevelAvx512:
		return 512
	default:
		return 128
	}
}

// Features returns the feature string the level's token verifies.
func (l Level) Features() string {
	switch l {
	case LevelSse42:
		return sse42Features
	case LevelAvx2:
		return avx2Features
	case LevelAvx512:
		return avx512Features
	case LevelNeon:
		return neonFeatures
	case LevelWasmSimd128:
		return wasmFeatures
	default:
		return ""
	}
}

// Granted returns the flag groups the level's token grants: its own flags
// plus those of every weaker level it implies.
func (l Level) Granted() [][]string {
	switch l {
	case LevelSse42:
		return Sse42{}.Granted()
	case LevelAvx2:
		return Avx2{}.Granted()
	case LevelAvx512:
		return Avx512{}.Granted()
	case LevelNeon:
		return Neon{}.Granted()
	case LevelWasmSimd128:
		return WasmSimd128{}.Granted()
	default:
		return nil
	}
}

// AsSse42 returns the SSE4.2 token when the level carries one.
func (l Level) AsSse42() (Sse42, bool) { return Sse42{}, l == LevelSse42 }

// AsAvx2 returns the AVX2 token when the level carries one.
func (l Level) AsAvx2() (Avx2, bool) { return Avx2{}, l == LevelAvx2 }

// AsAvx512 returns the AVX-512 token when the level carries one.
func (l Level) AsAvx512() (Avx512, bool) { return Avx512{}, l == LevelAvx512 }

// AsNeon returns the NEON token when the level carries one.
func (l Level) AsNeon() (Neon, bool) { return Neon{}, l == LevelNeon }

// AsWasmSimd128 returns the simd128 token when the level carries one.
func (l Level) AsWasmSimd128() (WasmSimd128, bool) {
	return WasmSimd128{}, l == LevelWasmSimd128
}

// activeLevel is the level portable operations route through.
// Set by init() in detect_*.go files; tests may override it.
var activeLevel atomic.Int32

// Active returns the level portable operations currently route through.
func Active() Level {
	return Level(activeLevel.Load())
}

// SetActive overrides the routing level and returns the previous one.
// Like the New*Unchecked constructors this is an assertion, not a probe;
// it exists for tests and for hosts whose capabilities are known
// out of band.
func SetActive(l Level) Level {
	return Level(activeLevel.Swap(int32(l)))
}

// Detect probes the host and returns the most capable level, trying each
// candidate in most-capable-first order. Results are not cached; detection
// cost is paid on each call.
func Detect() Level {
	if NoSimdEnv() {
		return LevelFallback
	}
	return detectLevel()
}

// NoSimdEnv checks if the LANES_NO_SIMD environment variable is set.
// When set, detection reports the scalar fallback regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes of type T in one native register of
// the active level.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	return Active().VecBits() / 8 / laneSize[T]()
}

//go:build wasm

package lanes

func init() {
	SetActive(Detect())
}

// Whether simd128 is available is fixed when the wasm binary is compiled,
// so detection degenerates to a build-target check.
func detectLevel() Level {
	if _, ok := TryNewWasmSimd128(); ok {
		return LevelWasmSimd128
	}
	return LevelFallback
}

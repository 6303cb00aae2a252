//go:build !amd64 && !arm64 && !wasm

package lanes

func init() {
	SetActive(Detect())
}

// Architectures without an accelerated backend run the portable fallback.
func detectLevel() Level {
	return LevelFallback
}

//go:build arm64

package lanes

func init() {
	SetActive(Detect())
}

// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
// ARMv8-A base architecture. The probe is kept anyway so the token path is
// the same on every architecture.
func detectLevel() Level {
	if _, ok := TryNewNeon(); ok {
		return LevelNeon
	}
	return LevelFallback
}

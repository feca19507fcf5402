//go:build arm64

package wide

import "golang.org/x/sys/cpu"

func init() {
	// Check for WIDEVEC_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// We still check the cpu package for consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
}

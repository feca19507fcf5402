// Copyright 2026 widevec Authors
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

package wide

import (
	"os"
	"strconv"
	"unsafe"
)

// Level represents the SIMD instruction set the native vector width is
// modeled on.
type Level int

const (
	// LevelScalar indicates no SIMD; 128-bit vectors are still used so that
	// lane counts stay consistent across targets.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 register widths (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 register widths (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 register widths (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON register widths (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the native vector width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the SIMD instruction set the vector width is modeled on.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the native vector width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the WIDEVEC_NO_SIMD environment variable is set.
// When set, widevec sizes vectors for the scalar fallback regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("WIDEVEC_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes of type T in one native vector with
// the current width. This is also the lane count of each link of an Array.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}

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

// LoadFlags selects the memory-access mode for loads and stores. An Array
// forwards the same flags to every link, so a chain behaves like one wide
// access with a uniform mode.
//
// In the scalar fallback all modes behave like Unaligned; they exist so that
// callers can state their intent once and have SIMD-backed implementations
// honor it.
type LoadFlags uint8

const (
	// Unaligned permits any source/destination alignment. This is the
	// default and always safe.
	Unaligned LoadFlags = iota

	// Aligned promises the source/destination is aligned to the native
	// vector width. Violating the promise is a caller bug; the scalar
	// fallback does not check it.
	Aligned

	// Streaming requests a non-temporal access that bypasses the cache.
	// A hint only; correctness never depends on it.
	Streaming
)

// String returns a human-readable name for the flags.
func (f LoadFlags) String() string {
	switch f {
	case Unaligned:
		return "unaligned"
	case Aligned:
		return "aligned"
	case Streaming:
		return "streaming"
	default:
		return "unknown"
	}
}

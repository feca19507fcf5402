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

// Package convdata generates edge-case numeric inputs for testing converting
// loads. The inputs sit near type boundaries where a C-family narrowing or
// float-to-int conversion would be undefined; the generator screens those
// values out so the tests exercise only well-defined conversions.
//
// This is a test-data table for conversion tests, not part of the runtime
// vector contract.
package convdata

import (
	"math"
	"unsafe"
)

// Number is the set of lane types the conversion tests cover.
type Number interface {
	~float32 | ~float64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bounds returns T's representable range as float64 endpoints. float64
// cannot hold MaxInt64 or MaxUint64 exactly and would round up past the true
// maximum, so for those the upper endpoint is the largest float64 strictly
// below 2^63 / 2^64; every value that passes the screen then converts in
// range.
func bounds[T Number]() (lo, hi float64) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case int64:
		return math.MinInt64, math.Nextafter(math.MaxInt64, 0)
	case uint8:
		return 0, math.MaxUint8
	case uint16:
		return 0, math.MaxUint16
	case uint32:
		return 0, math.MaxUint32
	case uint64:
		return 0, math.Nextafter(math.MaxUint64, 0)
	case float32:
		return -math.MaxFloat32, math.MaxFloat32
	default: // float64
		return -math.MaxFloat64, math.MaxFloat64
	}
}

func isFloat[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	return false
}

// halfBits returns the integer whose low half of value bits is set
// (max >> digits/2), or 0 for floating-point types.
func halfBits[T Number]() float64 {
	var zero T
	switch any(zero).(type) {
	case int8:
		return float64(int8(math.MaxInt8) >> 3)
	case int16:
		return float64(int16(math.MaxInt16) >> 7)
	case int32:
		return float64(int32(math.MaxInt32) >> 15)
	case int64:
		return float64(int64(math.MaxInt64) >> 31)
	case uint8:
		return float64(uint8(math.MaxUint8) >> 4)
	case uint16:
		return float64(uint16(math.MaxUint16) >> 8)
	case uint32:
		return float64(uint32(math.MaxUint32) >> 16)
	case uint64:
		return float64(uint64(math.MaxUint64) >> 32)
	}
	return 0
}

// IsUndefined reports whether converting x to To would be undefined behavior
// under C++ conversion rules: a floating-point source whose value lies
// outside the destination's range, converted to an integer type or to a
// narrower floating-point type. All other conversions (including any
// integer source) are at worst implementation-defined and report false.
//
// Go defines all of these conversions, so this is a screen for test inputs,
// not a safety check.
func IsUndefined[To, From Number](x From) bool {
	if !isFloat[From]() {
		return false
	}
	var to To
	var from From
	if isFloat[To]() && unsafe.Sizeof(from) <= unsafe.Sizeof(to) {
		return false
	}
	lo, hi := bounds[To]()
	return float64(x) > hi || float64(x) < lo
}

// AvoidUB converts x to U, substituting 0 when either the conversion to U or
// the later conversion of the result to T would be undefined under the rules
// IsUndefined screens for. Staging values are float64, so int64-scale inputs
// may round; the table is tolerant of that by construction.
func AvoidUB[U, T Number](x float64) U {
	if IsUndefined[U](x) {
		// Also keeps the staging conversion itself in range: out-of-range
		// float-to-int is implementation-dependent in Go.
		return 0
	}
	u := U(x)
	if IsUndefined[T](u) {
		return 0
	}
	return u
}

// Inputs returns the edge-case source values of type U for tests that
// convert U to T: near-boundary bit patterns, values straddling 32-bit
// limits in both signs, the neighborhoods of U's min and max, half-bit
// patterns, and fractions of the ranges scaled by T's size. Values whose
// conversion would be undefined are replaced with 0.
func Inputs[U, T Number]() []U {
	uLo, uHi := bounds[U]()
	_, tHi := bounds[T]()
	var t T
	ts := float64(unsafe.Sizeof(t))
	hb := halfBits[U]()

	raw := []float64{
		0xc0000080, 0xc0000081, 0xc0000082, 0xc0000084, 0xc0000088,
		0xc0000090, 0xc00000a0, 0xc00000c0, 0xc000017f, 0xc0000180,
		0x100000001, 0x100000011, 0x100000111, 0x100001111,
		0x100011111, 0x100111111, 0x101111111,
		-0x100000001, -0x100000011, -0x100000111, -0x100001111,
		-0x100011111, -0x100111111, -0x101111111,
		uLo, uLo + 1,
		-1, -10, -100, -1000, -10000,
		0, 1,
		hb - 1, hb, hb + 1,
		uHi - 1, uHi,
		uHi - 0xff, uHi - 0xff, uHi - 0x55,
		-(uLo + 1), -uHi,
		uHi / math.Pow(2, ts*6-1), -uHi / math.Pow(2, ts*6-1),
		uHi / math.Pow(2, ts*4-1), -uHi / math.Pow(2, ts*4-1),
		uHi / math.Pow(2, ts*2-1), -uHi / math.Pow(2, ts*2-1),
		tHi - 1, tHi * 0.75,
	}

	out := make([]U, len(raw))
	for i, v := range raw {
		out[i] = AvoidUB[U, T](v)
	}
	return out
}

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

// Package wide provides portable SIMD-style vectors of arbitrary logical
// width. A fixed-width native vector Vec[T] covers one hardware register's
// worth of lanes; an Array[T] chains any number of those vectors into one
// logical vector, with every operation fanned out link by link.
//
// Basic usage:
//
//	// Logical vector of 4 native vectors' worth of float32 lanes.
//	a, _ := wide.FromSlice(4, data)
//	b, _ := wide.Broadcast[float32](4, 2.0)
//
//	sum, _ := wide.AddArrays(a, b)
//
//	m, _ := wide.EqualArrays(sum, sum)
//	m.IsFull() // true
//
// The native lane count per link is picked at startup from the CPU's SIMD
// width (see CurrentWidth) and can be forced to scalar with WIDEVEC_NO_SIMD.
package wide

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable native vector handle holding one register's worth of
// lanes. In the scalar fallback it wraps a slice; the slice may alias an
// Array's backing storage when the Vec is a link view (see Array.Link).
//
// Vec instances should not be created directly; use Load, Set, Zero, or
// IotaVec instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// At returns lane i, or the zero value if i is out of range.
func (v Vec[T]) At(i int) T {
	var zero T
	if i < 0 || i >= len(v.data) {
		return zero
	}
	return v.data[i]
}

// Store writes the vector's data to a slice.
// This is the method form of the wide.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}

// Fill sets every lane to value, in place.
func (v Vec[T]) Fill(value T) {
	for i := range v.data {
		v.data[i] = value
	}
}

// AddAssign adds b to v lane by lane, in place.
func (v Vec[T]) AddAssign(b Vec[T]) {
	n := min(len(v.data), len(b.data))
	for i := 0; i < n; i++ {
		v.data[i] += b.data[i]
	}
}

// MulAssign multiplies v by b lane by lane, in place.
func (v Vec[T]) MulAssign(b Vec[T]) {
	n := min(len(v.data), len(b.data))
	for i := 0; i < n; i++ {
		v.data[i] *= b.data[i]
	}
}

// Mask represents the result of a comparison operation, one boolean per lane.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan instead.
type Mask[T Lanes] struct {
	// bits stores which lanes are active (true).
	// bit i is set if lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// NoneTrue returns true if no lane in the mask is active.
func (m Mask[T]) NoneTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return !m.NoneTrue()
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

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

import "fmt"

// This file provides whole-chain operations for consumers that treat an
// Array as a single logical vector. Every operation fans out link by link
// over the native vector layer.

// zipArrays applies a binary native operation link by link, producing a new
// Array of the shared shape.
func zipArrays[T Lanes](a, b *Array[T], fn func(x, y Vec[T]) Vec[T]) (*Array[T], error) {
	if a.links != b.links || a.lanes != b.lanes {
		return nil, fmt.Errorf("wide: combine arrays of %dx%d and %dx%d links: %w",
			a.links, a.lanes, b.links, b.lanes, ErrInvalidShape)
	}
	out := &Array[T]{
		data:  make([]T, len(a.data)),
		links: a.links,
		lanes: a.lanes,
	}
	for k := 0; k < a.links; k++ {
		v := fn(a.Link(k), b.Link(k))
		copy(out.data[k*a.lanes:(k+1)*a.lanes], v.data)
	}
	return out, nil
}

// AddArrays adds two Arrays element-wise.
func AddArrays[T Lanes](a, b *Array[T]) (*Array[T], error) {
	return zipArrays(a, b, Add[T])
}

// SubArrays subtracts b from a element-wise.
func SubArrays[T Lanes](a, b *Array[T]) (*Array[T], error) {
	return zipArrays(a, b, Sub[T])
}

// MulArrays multiplies two Arrays element-wise.
func MulArrays[T Lanes](a, b *Array[T]) (*Array[T], error) {
	return zipArrays(a, b, Mul[T])
}

// DivArrays divides a by b element-wise.
func DivArrays[T Lanes](a, b *Array[T]) (*Array[T], error) {
	return zipArrays(a, b, Div[T])
}

// EqualArrays compares two Arrays element-wise for equality.
func EqualArrays[T Lanes](a, b *Array[T]) (*MaskArray[T], error) {
	return Compare(a, b, Equal[T])
}

// NotEqualArrays compares two Arrays element-wise for inequality.
func NotEqualArrays[T Lanes](a, b *Array[T]) (*MaskArray[T], error) {
	return Compare(a, b, NotEqual[T])
}

// LessThanArrays compares two Arrays element-wise with less-than.
func LessThanArrays[T Lanes](a, b *Array[T]) (*MaskArray[T], error) {
	return Compare(a, b, LessThan[T])
}

// BlendedStoreArray stores v to dst only where mask is true, preserving
// existing dst values elsewhere. v and mask must share one shape; dst must
// hold at least v.Len() elements.
func BlendedStoreArray[T Lanes](v *Array[T], mask *MaskArray[T], dst []T) error {
	if v.links != mask.links || v.lanes != mask.lanes {
		return fmt.Errorf("wide: blended store of %dx%d array with %dx%d mask: %w",
			v.links, v.lanes, mask.links, mask.lanes, ErrInvalidShape)
	}
	if len(dst) < len(v.data) {
		return fmt.Errorf("wide: blended store of %d elements into %d: %w",
			len(v.data), len(dst), ErrOutOfBounds)
	}
	for k := 0; k < v.links; k++ {
		off := k * v.lanes
		BlendedStore(v.Link(k), mask.Link(k), dst[off:off+v.lanes])
	}
	return nil
}

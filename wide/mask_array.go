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

// MaskArray is a chain of native masks, structurally parallel to an Array of
// the same shape: link k holds the truth values for the Array's link k. It is
// produced in lock-step with an Array, never independently shaped.
type MaskArray[T Lanes] struct {
	bits  []bool
	links int
	lanes int
}

// BroadcastMask constructs a MaskArray with every link set to a copy of the
// native mask m.
func BroadcastMask[T Lanes](links int, m Mask[T]) (*MaskArray[T], error) {
	if links < 1 {
		return nil, fmt.Errorf("wide: mask array of %d links: %w", links, ErrInvalidShape)
	}
	lanes := m.NumLanes()
	if lanes < 1 {
		return nil, fmt.Errorf("wide: broadcast of empty mask: %w", ErrInvalidShape)
	}
	ma := &MaskArray[T]{
		bits:  make([]bool, links*lanes),
		links: links,
		lanes: lanes,
	}
	for k := 0; k < links; k++ {
		copy(ma.bits[k*lanes:(k+1)*lanes], m.bits)
	}
	return ma, nil
}

// Compare constructs a MaskArray by applying fn link by link to two Arrays
// of identical shape: link k = fn(lhs.Link(k), rhs.Link(k)).
func Compare[T Lanes](lhs, rhs *Array[T], fn func(a, b Vec[T]) Mask[T]) (*MaskArray[T], error) {
	if lhs.links != rhs.links || lhs.lanes != rhs.lanes {
		return nil, fmt.Errorf("wide: compare arrays of %dx%d and %dx%d links: %w",
			lhs.links, lhs.lanes, rhs.links, rhs.lanes, ErrInvalidShape)
	}
	ma := &MaskArray[T]{
		bits:  make([]bool, lhs.links*lhs.lanes),
		links: lhs.links,
		lanes: lhs.lanes,
	}
	if err := ma.Assign(lhs, rhs, fn); err != nil {
		return nil, err
	}
	return ma, nil
}

// Assign overwrites every link in head-to-tail order with
// fn(lhs.Link(k), rhs.Link(k)). Each assignment is local to its own link, so
// the aggregate result does not depend on visit order. The Arrays and the
// MaskArray must share one shape.
func (m *MaskArray[T]) Assign(lhs, rhs *Array[T], fn func(a, b Vec[T]) Mask[T]) error {
	if lhs.links != m.links || lhs.lanes != m.lanes ||
		rhs.links != m.links || rhs.lanes != m.lanes {
		return fmt.Errorf("wide: assign %dx%d mask from arrays of %dx%d and %dx%d links: %w",
			m.links, m.lanes, lhs.links, lhs.lanes, rhs.links, rhs.lanes, ErrInvalidShape)
	}
	for k := 0; k < m.links; k++ {
		lk := fn(lhs.Link(k), rhs.Link(k))
		copy(m.bits[k*m.lanes:(k+1)*m.lanes], lk.bits)
	}
	return nil
}

// Links returns the chain depth N.
func (m *MaskArray[T]) Links() int {
	return m.links
}

// Lanes returns the lane count of each link's native mask.
func (m *MaskArray[T]) Lanes() int {
	return m.lanes
}

// Len returns the logical lane count, links * lanes.
func (m *MaskArray[T]) Len() int {
	return len(m.bits)
}

// Link returns link k as a native mask. k 0 is the head.
func (m *MaskArray[T]) Link(k int) Mask[T] {
	off := k * m.lanes
	return Mask[T]{bits: m.bits[off : off+m.lanes]}
}

// GetBit returns whether logical lane i is active.
func (m *MaskArray[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// IsFull returns true iff every lane of every link is true: the AND across
// links of each link's all-true check.
func (m *MaskArray[T]) IsFull() bool {
	for k := 0; k < m.links; k++ {
		if !m.Link(k).AllTrue() {
			return false
		}
	}
	return true
}

// IsEmpty returns true iff every lane of every link is false. Note this is
// the AND across links of each link's none-true check, not an OR: a link
// with no set lanes is empty on its own, so all links being empty is exactly
// the whole chain being empty.
func (m *MaskArray[T]) IsEmpty() bool {
	for k := 0; k < m.links; k++ {
		if !m.Link(k).NoneTrue() {
			return false
		}
	}
	return true
}

// CountTrue returns the number of active lanes across all links.
func (m *MaskArray[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

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

// Array is a logical vector of links * MaxLanes[T]() elements, composed of a
// chain of native vectors. Link 0 is the head and owns the first native
// vector's worth of elements; each following link owns the next contiguous
// slice.
//
// All links are backed by one flat contiguous buffer, so the whole chain is
// walkable head to tail through Slice. Links obtained from Link are views
// into that buffer, never copies.
//
// The shape (link count, lanes per link) is fixed at construction; values
// may be overwritten in place with Load or Apply.
type Array[T Lanes] struct {
	data  []T
	links int
	lanes int
}

// newArray validates the shape and allocates the backing buffer.
func newArray[T Lanes](links int) (*Array[T], error) {
	if links < 1 {
		return nil, fmt.Errorf("wide: array of %d links: %w", links, ErrInvalidShape)
	}
	lanes := MaxLanes[T]()
	return &Array[T]{
		data:  make([]T, links*lanes),
		links: links,
		lanes: lanes,
	}, nil
}

// Broadcast constructs an Array with every element of every link set to
// value.
func Broadcast[T Lanes](links int, value T) (*Array[T], error) {
	a, err := newArray[T](links)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// FromSlice constructs an Array by a contiguous unaligned load from src.
// Link k takes src[k*lanes : (k+1)*lanes]. src must hold at least
// links*MaxLanes[T]() elements.
func FromSlice[T Lanes](links int, src []T) (*Array[T], error) {
	return FromSliceWith(links, src, Unaligned)
}

// FromSliceWith is FromSlice with an explicit memory-access mode, forwarded
// identically to every link.
func FromSliceWith[T Lanes](links int, src []T, f LoadFlags) (*Array[T], error) {
	a, err := newArray[T](links)
	if err != nil {
		return nil, err
	}
	if err := a.Load(src, f); err != nil {
		return nil, err
	}
	return a, nil
}

// FromConverted constructs an Array[T] from a slice of a different element
// type, converting each element during the load. Link k reads source
// elements [k*lanes, (k+1)*lanes), so link boundaries fall at the same
// logical positions as in the destination.
func FromConverted[T, U Lanes](links int, src []U, f LoadFlags) (*Array[T], error) {
	a, err := newArray[T](links)
	if err != nil {
		return nil, err
	}
	if len(src) < len(a.data) {
		return nil, fmt.Errorf("wide: converted load of %d elements from %d: %w",
			len(a.data), len(src), ErrOutOfBounds)
	}
	for k := 0; k < a.links; k++ {
		off := k * a.lanes
		v := LoadConvertedWith[T](src[off:off+a.lanes], f)
		copy(a.data[off:off+a.lanes], v.data)
	}
	return a, nil
}

// IotaArray constructs an Array holding the sequence offset, offset+1, ...,
// offset + links*lanes - 1, split across links in order. With offset 0 this
// is the indexes-from-zero vector.
func IotaArray[T Lanes](links int, offset T) (*Array[T], error) {
	a, err := newArray[T](links)
	if err != nil {
		return nil, err
	}
	v := offset
	for i := range a.data {
		a.data[i] = v
		v++
	}
	return a, nil
}

// Links returns the chain depth N.
func (a *Array[T]) Links() int {
	return a.links
}

// Lanes returns the lane count of each link's native vector.
func (a *Array[T]) Lanes() int {
	return a.lanes
}

// Len returns the logical element count, links * lanes.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// At returns logical element i, or the zero value if i is out of range.
func (a *Array[T]) At(i int) T {
	var zero T
	if i < 0 || i >= len(a.data) {
		return zero
	}
	return a.data[i]
}

// Link returns link k as a native vector view. k 0 is the head. The view
// aliases the chain's storage: writes through the view (Fill, AddAssign)
// change the chain. k outside [0, Links()) panics.
func (a *Array[T]) Link(k int) Vec[T] {
	off := k * a.lanes
	return Vec[T]{data: a.data[off : off+a.lanes]}
}

// Slice returns the flat contiguous view of the whole chain, head first.
// This is the begin/end iteration contract: the returned slice spans exactly
// Len() elements and aliases the chain's storage.
func (a *Array[T]) Slice() []T {
	return a.data
}

// Load reloads every link in place from src, using the same per-link slicing
// as FromSlice. The shape is unchanged. Links whose source segment is
// unchanged reload identical values.
func (a *Array[T]) Load(src []T, f LoadFlags) error {
	if len(src) < len(a.data) {
		return fmt.Errorf("wide: load of %d elements from %d: %w",
			len(a.data), len(src), ErrOutOfBounds)
	}
	// Flags are forwarded identically to every link.
	for k := 0; k < a.links; k++ {
		off := k * a.lanes
		v := LoadWith(src[off:off+a.lanes], f)
		copy(a.data[off:off+a.lanes], v.data)
	}
	return nil
}

// Store writes the whole chain contiguously to dst, head first. dst must
// hold at least Len() elements.
func (a *Array[T]) Store(dst []T, f LoadFlags) error {
	if len(dst) < len(a.data) {
		return fmt.Errorf("wide: store of %d elements into %d: %w",
			len(a.data), len(dst), ErrOutOfBounds)
	}
	for k := 0; k < a.links; k++ {
		off := k * a.lanes
		StoreWith(a.Link(k), dst[off:off+a.lanes], f)
	}
	return nil
}

// Apply invokes fn on every link in head-to-tail order. fn receives a view,
// so in-place vector operations mutate the chain. This replaces per-link
// method dispatch with an ordinary closure.
func (a *Array[T]) Apply(fn func(Vec[T])) {
	for k := 0; k < a.links; k++ {
		fn(a.Link(k))
	}
}

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

// LoadConverted creates a Vec[T] from a slice of a different element type,
// converting each lane with Go's numeric conversion rules (truncation toward
// zero for float-to-int, possible precision loss for wide-to-narrow).
//
// The lane count is T's, so a chain built from converted loads slices its
// source by destination lanes: link k reads source elements
// [k*MaxLanes[T](), (k+1)*MaxLanes[T]()).
func LoadConverted[T, U Lanes](src []U) Vec[T] {
	return LoadConvertedWith[T](src, Unaligned)
}

// LoadConvertedWith is LoadConverted with an explicit memory-access mode.
func LoadConvertedWith[T, U Lanes](src []U, _ LoadFlags) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = T(src[i])
	}
	return Vec[T]{data: data}
}

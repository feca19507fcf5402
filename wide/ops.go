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

// This file provides the pure Go (scalar) implementations of the native
// vector operations. SIMD-backed implementations can replace these via build
// tags without changing the Array composition layer above them.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	return LoadWith(src, Unaligned)
}

// LoadWith creates a vector by loading data from a slice with an explicit
// memory-access mode.
func LoadWith[T Lanes](src []T, _ LoadFlags) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	StoreWith(v, dst, Unaligned)
}

// StoreWith writes a vector's data to a slice with an explicit memory-access
// mode.
func StoreWith[T Lanes](v Vec[T], dst []T, _ LoadFlags) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// IotaVec creates a vector whose lanes hold consecutive values starting at
// offset: offset, offset+1, offset+2, ...
func IotaVec[T Lanes](offset T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	v := offset
	for i := range data {
		data[i] = v
		v++
	}
	return Vec[T]{data: data}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division.
// Integer division by zero panics, as in scalar Go code.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// SetMask creates a mask with every lane set to value.
func SetMask[T Lanes](value bool) Mask[T] {
	n := MaxLanes[T]()
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = value
	}
	return Mask[T]{bits: bits}
}

// BlendedStore stores elements from v to dst only where mask is true.
// Existing values in dst are preserved where mask is false.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	n := min(len(dst), min(len(mask.bits), len(v.data)))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
		// else: dst[i] unchanged (the "blend" part)
	}
}

// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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

// Package unsafeslice provides writes into slice storage that skip Go's bounds checks.
//
// The functions in this package exist for callers that have already proven an index is
// in range and hold the only reference that may observe the slot during the write.
// Nothing here synchronizes, and nothing here validates. An index outside [0, len(s))
// writes to memory that does not belong to s.
//
// The outgoing value is bit-replaced. No teardown runs for it: memory it references is
// reclaimed by the garbage collector once unreachable, but resources it owns (open files,
// connections) stay open. Use Swap when the old value has to be retired.
package unsafeslice

import "unsafe"

// Overwrite stores value into s[index] without a bounds check.
//
// index must satisfy 0 <= index < len(s).
func Overwrite[T any](s []T, index int, value T) {
	*at(s, index) = value
}

// Swap stores value into s[index] without a bounds check and returns the value it replaced.
//
// index must satisfy 0 <= index < len(s).
func Swap[T any](s []T, index int, value T) T {
	p := at(s, index)
	old := *p
	*p = value
	return old
}

func at[T any](s []T, index int) *T {
	var zero T
	//nolint:gosec // index is trusted by contract
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(index)*unsafe.Sizeof(zero)))
}

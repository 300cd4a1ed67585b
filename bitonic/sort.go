// Copyright 2025 go-bitonic Authors
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

package bitonic

import "golang.org/x/exp/constraints"

// Sort sorts data in-place in the given order.
//
// len(data) must be zero or a power of two; otherwise Sort returns a
// *LengthError and data is left untouched.
func Sort[E constraints.Ordered](data []E, order Order) error {
	if err := validate(len(data), order); err != nil {
		return err
	}
	build(data, 0, len(data), order)
	return nil
}

// SortBool is Sort with the direction given as an "ascending" flag.
func SortBool[E constraints.Ordered](data []E, ascending bool) error {
	return Sort(data, OrderOf(ascending))
}

// Sorted returns a sorted copy of data and leaves data unchanged.
// It fails under the same conditions as Sort.
func Sorted[E constraints.Ordered](data []E, order Order) ([]E, error) {
	if err := validate(len(data), order); err != nil {
		return nil, err
	}
	out := make([]E, len(data))
	copy(out, data)
	build(out, 0, len(out), order)
	return out, nil
}

// build sorts data[lo:lo+n] by turning it into a bitonic sequence and
// merging it in the requested order.
func build[E constraints.Ordered](data []E, lo, n int, order Order) {
	if n <= 1 {
		return
	}

	mid := n / 2

	// First half ascending, second half descending: the range is bitonic.
	build(data, lo, mid, Ascending)
	build(data, lo+mid, n-mid, Descending)

	merge(data, lo, n, order)
}

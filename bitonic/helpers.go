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

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Helper functions shared by the sort and its tests.

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// IsSorted checks if a slice is sorted in the given order.
func IsSorted[E constraints.Ordered](data []E, order Order) bool {
	n := len(data)
	if n <= 1 {
		return true
	}

	if order == Descending {
		for i := 0; i < n-1; i++ {
			if data[i] < data[i+1] {
				return false
			}
		}
		return true
	}

	for i := 0; i < n-1; i++ {
		if data[i] > data[i+1] {
			return false
		}
	}
	return true
}

// IsBitonic reports whether data is bitonic: non-decreasing then
// non-increasing, or a cyclic rotation of such a sequence.
//
// Runs of equal elements are ignored. Walking the sequence cyclically, a
// bitonic sequence changes direction at most twice.
func IsBitonic[E constraints.Ordered](data []E) bool {
	n := len(data)
	if n <= 2 {
		return true
	}

	// Direction of the first non-flat step, and the number of changes.
	first, prev, changes := 0, 0, 0
	for i := range n {
		a, b := data[i], data[(i+1)%n]
		dir := 0
		switch {
		case a < b:
			dir = 1
		case a > b:
			dir = -1
		}
		if dir == 0 {
			continue
		}
		if first == 0 {
			first = dir
		} else if dir != prev {
			changes++
		}
		prev = dir
	}

	// Close the cycle.
	if first != 0 && prev != first {
		changes++
	}
	return changes <= 2
}

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

// merge sorts the bitonic range data[lo:lo+n] in the given order.
func merge[E constraints.Ordered](data []E, lo, n int, order Order) {
	if n <= 1 {
		return
	}

	compareAndSwap(data, lo, n, order)

	mid := n / 2
	merge(data, lo, mid, order)
	merge(data, lo+mid, n-mid, order)
}

// compareAndSwap compares data[lo+i] with data[lo+i+n/2] for every i in
// [0, n/2) and swaps the pair when it is out of order.
//
// When data[lo:lo+n] is bitonic, both halves are bitonic afterwards and every
// element of the first half precedes every element of the second half in the
// given order.
func compareAndSwap[E constraints.Ordered](data []E, lo, n int, order Order) {
	mid := n / 2
	end := lo + mid

	switch order {
	case Ascending:
		for i := lo; i < end; i++ {
			j := i + mid
			if data[i] > data[j] {
				data[i], data[j] = data[j], data[i]
			}
		}
	case Descending:
		// Equal pairs are swapped too.
		for i := lo; i < end; i++ {
			j := i + mid
			if !(data[i] > data[j]) {
				data[i], data[j] = data[j], data[i]
			}
		}
	}
}

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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-bitonic/internal/testutil"
)

// separated reports whether every element of lo precedes every element of hi
// in the given order.
func separated(lo, hi []int, order Order) bool {
	if order == Ascending {
		return slices.Max(lo) <= slices.Min(hi)
	}
	return slices.Min(lo) >= slices.Max(hi)
}

func TestCompareAndSwap(t *testing.T) {
	tests := []struct {
		in    []int
		order Order
		want  []int
	}{
		{[]int{1, 3, 4, 2}, Ascending, []int{1, 2, 4, 3}},
		{[]int{1, 3, 4, 2}, Descending, []int{4, 3, 1, 2}},
		{[]int{1, 3, 5, 7, 8, 6, 4, 2}, Ascending, []int{1, 3, 4, 2, 8, 6, 5, 7}},
		{[]int{1, 3, 5, 7, 8, 6, 4, 2}, Descending, []int{8, 6, 5, 7, 1, 3, 4, 2}},
		{[]int{5, 5, 5, 5}, Ascending, []int{5, 5, 5, 5}},
	}
	for _, tt := range tests {
		got := slices.Clone(tt.in)
		compareAndSwap(got, 0, len(got), tt.order)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("compareAndSwap(%v, %v) mismatch (-want +got):\n%s", tt.in, tt.order, diff)
		}

		mid := len(got) / 2
		if !IsBitonic(got[:mid]) || !IsBitonic(got[mid:]) {
			t.Errorf("compareAndSwap(%v, %v) = %v, halves are not bitonic", tt.in, tt.order, got)
		}
		if !separated(got[:mid], got[mid:], tt.order) {
			t.Errorf("compareAndSwap(%v, %v) = %v, halves overlap", tt.in, tt.order, got)
		}
	}
}

// TestCompareAndSwapDescendingCondition pins the descending condition: a
// pair is swapped unless the left element is strictly greater.
func TestCompareAndSwapDescendingCondition(t *testing.T) {
	data := []float64{2, 2, 1, 3}
	compareAndSwap(data, 0, 4, Descending)
	if diff := cmp.Diff([]float64{2, 3, 1, 2}, data); diff != "" {
		t.Errorf("compareAndSwap descending mismatch (-want +got):\n%s", diff)
	}

	equal := []int{5, 5}
	compareAndSwap(equal, 0, 2, Descending)
	if !slices.Equal(equal, []int{5, 5}) {
		t.Errorf("compareAndSwap([5 5], descending) = %v, want [5 5]", equal)
	}
}

// TestCompareAndSwapKeepsHalvesBitonic checks the invariant the merge relies
// on for every bitonic ordering of two length 8 inputs.
func TestCompareAndSwapKeepsHalvesBitonic(t *testing.T) {
	inputs := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{0, 0, 1, 1, 2, 2, 3, 3},
	}
	for _, base := range inputs {
		checked := 0
		for _, p := range testutil.Permutations(base) {
			if !IsBitonic(p) {
				continue
			}
			checked++
			for _, order := range []Order{Ascending, Descending} {
				got := slices.Clone(p)
				compareAndSwap(got, 0, len(got), order)
				if !IsBitonic(got[:4]) || !IsBitonic(got[4:]) {
					t.Fatalf("compareAndSwap(%v, %v) = %v, halves are not bitonic", p, order, got)
				}
				if !separated(got[:4], got[4:], order) {
					t.Fatalf("compareAndSwap(%v, %v) = %v, halves overlap", p, order, got)
				}
				if !testutil.SameElements(got, p) {
					t.Fatalf("compareAndSwap(%v, %v) = %v, not a permutation", p, order, got)
				}
			}
		}
		if checked == 0 {
			t.Fatalf("no bitonic permutations of %v", base)
		}
	}
}

func TestMergeSortsBitonic(t *testing.T) {
	tests := [][]int{
		{1, 3, 5, 7, 8, 6, 4, 2},
		{8, 6, 4, 2, 1, 3, 5, 7},
		{4, 6, 8, 7, 5, 3, 1, 2},
		{1, 2, 2, 9, 9, 3, 3, 0},
		{7, 7, 7, 7},
		{2, 1},
	}
	for _, in := range tests {
		if !IsBitonic(in) {
			t.Fatalf("test input %v is not bitonic", in)
		}
		for _, order := range []Order{Ascending, Descending} {
			got := slices.Clone(in)
			merge(got, 0, len(got), order)
			if !IsSorted(got, order) {
				t.Errorf("merge(%v, %v) = %v, not sorted", in, order, got)
			}
		}
	}
}

// TestBuildProducesBitonicHalves checks the state right before the final
// merge: first half ascending, second half descending.
func TestBuildProducesBitonicHalves(t *testing.T) {
	data := []int{3, 7, 4, 8, 6, 2, 1, 5}
	build(data, 0, 4, Ascending)
	build(data, 4, 4, Descending)
	if diff := cmp.Diff([]int{3, 4, 7, 8, 6, 5, 2, 1}, data); diff != "" {
		t.Errorf("halves mismatch (-want +got):\n%s", diff)
	}
	if !IsBitonic(data) {
		t.Errorf("%v is not bitonic", data)
	}
}

// TestBuildSubrange sorts a range in the middle of a larger buffer without
// touching the rest.
func TestBuildSubrange(t *testing.T) {
	data := []int{100, 100, 4, 3, 2, 1, 100, 100}
	build(data, 2, 4, Ascending)
	if diff := cmp.Diff([]int{100, 100, 1, 2, 3, 4, 100, 100}, data); diff != "" {
		t.Errorf("build subrange mismatch (-want +got):\n%s", diff)
	}
}

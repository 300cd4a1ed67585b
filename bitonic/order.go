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

import "fmt"

// Order is the direction a sequence is sorted in.
type Order int

const (
	// Ascending sorts from the smallest element to the largest.
	Ascending Order = iota
	// Descending sorts from the largest element to the smallest.
	Descending
)

// OrderOf converts an "ascending" flag into an Order.
func OrderOf(ascending bool) Order {
	if ascending {
		return Ascending
	}
	return Descending
}

// Valid reports whether o is Ascending or Descending.
func (o Order) Valid() bool {
	return o == Ascending || o == Descending
}

// Reverse returns the opposite direction.
func (o Order) Reverse() Order {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

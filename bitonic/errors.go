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
	"errors"
	"fmt"
)

var (
	// ErrLength is matched by every *LengthError.
	ErrLength = errors.New("bitonic: length of input is not a power of two")

	// ErrInvalidOrder is returned when an Order is neither Ascending nor Descending.
	ErrInvalidOrder = errors.New("bitonic: invalid sort order")
)

// LengthError reports an input whose length is not a power of two.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s (len: %d)", ErrLength, e.Len)
}

// Is makes errors.Is(err, ErrLength) true for a *LengthError.
func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}

// validate checks the preconditions shared by the public entry points.
func validate(n int, order Order) error {
	if !order.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, int(order))
	}
	if n != 0 && !IsPowerOfTwo(n) {
		return &LengthError{Len: n}
	}
	return nil
}

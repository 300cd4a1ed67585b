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

// Package testutil provides reproducible test data for the sorting tests and
// benchmarks.
//
// Every generator seeds its own PCG source with the same fixed seed, so a
// given call always returns the same data.
package testutil

import (
	"math/rand/v2"
	"strings"
)

const (
	seedHi = 0x9e3779b97f4a7c15
	seedLo = 0xbf58476d1ce4e5b9
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewRand returns a PCG-backed generator with the package's fixed seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(seedHi, seedLo))
}

// RandomUint32 returns n pseudo-random uint32 values.
func RandomUint32(n int) []uint32 {
	r := NewRand()
	data := make([]uint32, n)
	for i := range data {
		data[i] = r.Uint32()
	}
	return data
}

// RandomInt64 returns n pseudo-random values in [-limit, limit).
func RandomInt64(n int, limit int64) []int64 {
	r := NewRand()
	data := make([]int64, n)
	for i := range data {
		data[i] = r.Int64N(2*limit) - limit
	}
	return data
}

// RandomFloat64 returns n pseudo-random values in [0, 1000).
func RandomFloat64(n int) []float64 {
	r := NewRand()
	data := make([]float64, n)
	for i := range data {
		data[i] = r.Float64() * 1000
	}
	return data
}

// RandomStrings returns n pseudo-random alphanumeric strings of the given length.
func RandomStrings(n, length int) []string {
	r := NewRand()
	data := make([]string, n)
	var sb strings.Builder
	for i := range data {
		sb.Reset()
		for range length {
			sb.WriteByte(alphabet[r.IntN(len(alphabet))])
		}
		data[i] = sb.String()
	}
	return data
}

// Permutations returns every ordering of s, using Heap's algorithm.
// s itself is not modified.
func Permutations[E any](s []E) [][]E {
	work := make([]E, len(s))
	copy(work, s)

	var out [][]E
	var generate func(k int)
	generate = func(k int) {
		if k <= 1 {
			p := make([]E, len(work))
			copy(p, work)
			out = append(out, p)
			return
		}
		generate(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
			generate(k - 1)
		}
	}
	generate(len(work))
	return out
}

// SameElements reports whether a and b hold the same multiset of elements.
func SameElements[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[E]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

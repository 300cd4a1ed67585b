// Package bitonic provides a generic bitonic sort.
//
// Bitonic sort is a comparison-based sorting network. It sorts a sequence by
// recursively building bitonic sequences (sequences that increase and then
// decrease, or a cyclic rotation of one) and merging them with a fixed pattern
// of compare-and-swap operations.
//
// # Algorithm
//
// Sorting a range of n elements proceeds in two steps:
//   - Build: sort the first half ascending and the second half descending.
//     The concatenation of the two halves is bitonic by construction.
//   - Merge: compare element i with element i+n/2 for every i in the first
//     half and swap the pair if it is out of order. Both halves are now
//     bitonic, and every element of the first half is ordered relative to
//     every element of the second half, so each half is merged recursively.
//
// The whole sort runs in place over one buffer addressed by index ranges and
// performs O(n log² n) comparisons.
//
// # Input Length
//
// The network is only defined for inputs whose length is a power of two.
// Sort and Sorted reject other lengths with a *LengthError. The empty slice is
// accepted and left as is.
//
// # Supported Types
//
// Any type satisfying constraints.Ordered: integers, floats and strings.
// Floating point NaN values have no total order and produce an unspecified
// (but permuted) result.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-bitonic/bitonic"
//
//	func Process(data []uint32) error {
//	    if err := bitonic.Sort(data, bitonic.Ascending); err != nil {
//	        return err
//	    }
//	    return nil
//	}
package bitonic

// Package conv provides safe integer conversion helpers for the sparse set.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., a sparse table larger than the platform can index).
package conv

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Index safely converts an unsigned value to a slice index.
// Panics if n does not fit in int.
//
//go:inline
func Index[U constraints.Unsigned](n U) int {
	if uint64(n) > uint64(math.MaxInt) {
		panic("integer overflow: unsigned value out of int range")
	}
	return int(n)
}

// Unsigned safely converts a slice length to the unsigned type U.
// Panics if n is negative or exceeds the maximum value of U.
//
//go:inline
func Unsigned[U constraints.Unsigned](n int) U {
	if n < 0 || uint64(n) > uint64(^U(0)) {
		panic("integer overflow: int value out of unsigned range")
	}
	return U(n)
}

// Package limits derives the representable range of integer type parameters.
package limits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed reports whether T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// Lowest returns the smallest value representable by T.
func Lowest[T constraints.Integer]() T {
	if !Signed[T]() {
		return 0
	}
	return ^Highest[T]()
}

// Highest returns the largest value representable by T.
func Highest[T constraints.Integer]() T {
	var zero T
	if !Signed[T]() {
		return ^zero
	}
	bits := uint(unsafe.Sizeof(zero)) * 8
	return T(^uint64(0) >> (65 - bits))
}

// Midpoint returns lo + (hi-lo)/2 without intermediate overflow, for lo <= hi.
//
// The distance is computed in uint64 two's complement arithmetic, which is exact
// for every integer type of at most 64 bits.
func Midpoint[T constraints.Integer](lo, hi T) T {
	dist := uint64(hi) - uint64(lo)
	return lo + T(dist/2)
}

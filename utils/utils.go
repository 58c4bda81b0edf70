// Package utils implements small generic helpers shared across the module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum of the two inputs.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value of the input slice.
// The zero value of T is returned for an empty slice.
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	for _, v := range s {
		max = Max(max, v)
	}
	return
}

// EqualSlice checks the equality between two slices of comparable components.
func EqualSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

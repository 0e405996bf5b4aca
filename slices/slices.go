package slices

import (
	"boundedvalue/maths"

	"golang.org/x/exp/constraints"
)

// Contains verifies if a slice contains the target element.
func Contains[T comparable](items []T, target T) bool {
	for _, v := range items {
		if v == target {
			return true
		}
	}

	return false
}

// Max returns an item with the maximum value.
func Max[T constraints.Ordered](items []T) T {
	return extremum(items, maths.GreaterThan[T])
}

// Min returns an item with the minimum value.
func Min[T constraints.Ordered](items []T) T {
	return extremum(items, maths.LessThan[T])
}

// extremum returns the slice item that meets the predicate against every other item.
// If the slice is empty, return zero value.
func extremum[T constraints.Ordered](items []T, predicate func(T, T) bool) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	result := items[0]
	for _, item := range items {
		if predicate(item, result) {
			result = item
		}
	}

	return result
}

func Map[T1, T2 any](items []T1, fn func(T1) T2) []T2 {
	result := make([]T2, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}

	return result
}

// Filter keeps all items that meet predicate from the slice.
func Filter[T any](items []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			result = append(result, item)
		}
	}

	return result
}

package maps

import "golang.org/x/exp/slices"

func ToSlice[K comparable, V, T any](m map[K]V, fn func(k K, v V) T) []T {
	result := make([]T, 0, len(m))
	for k, v := range m {
		result = append(result, fn(k, v))
	}

	return result
}

func Keys[K comparable, V any](m map[K]V) []K {
	return ToSlice(m, func(k K, _ V) K { return k })
}

// SortedKeys returns the string keys of m in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

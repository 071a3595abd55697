package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Sum adds up the values of a map.
func Sum[K comparable, V constraints.Integer](m map[K]V) V {
	var total V
	for _, v := range m {
		total += v
	}
	return total
}

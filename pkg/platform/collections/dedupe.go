// Package collections provides small slice helpers shared by services.
package collections

import "strings"

// Dedupe removes repeated values and zero values from a slice. Order is preserved.
//
// Example:
//
//	Dedupe([]int{3, 0, 1, 3})
//	// Returns: []int{3, 1}
func Dedupe[T comparable](values []T) []T {
	if len(values) == 0 {
		return values
	}

	var zero T
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))

	for _, v := range values {
		if v == zero {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}

// NormalizeEmail trims and lowercases an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

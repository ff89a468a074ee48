// Package testutil provides common utility functions for testing.
package testutil

// Contains reports whether want is present in items.
func Contains[T comparable](items []T, want T) bool {
	return IndexOf(items, want) >= 0
}

// IndexOf returns the position of want in items, or -1 if absent.
func IndexOf[T comparable](items []T, want T) int {
	for i := range items {
		if items[i] == want {
			return i
		}
	}
	return -1
}

// Package maputil provides basic utility functions for generic maps.
package maputil

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Keys returns the keys from the given map.
//
// NOTE: When provided with one or more predicates, only returns keys which match all predicates.
func Keys[M ~map[K]V, K comparable, V any](m M, p ...func(k K, v V) bool) []K {
	return maps.Keys(Filter(m, p...))
}

// SortedKeys returns the keys from the given map in ascending order.
//
// NOTE: When provided with one or more predicates, only returns keys which match all predicates.
func SortedKeys[M ~map[K]V, K constraints.Ordered, V any](m M, p ...func(k K, v V) bool) []K {
	keys := Keys(m, p...)
	slices.Sort(keys)

	return keys
}

package iheap

import "golang.org/x/exp/constraints"

// Weight is the set of numeric types which may be used to order entries in a heap.
//
// NOTE: Floating point weights must not be NaN, the ordering of a heap containing NaN weights is unspecified.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Entry encapsulates a key and the weight it held in the heap.
type Entry[K comparable, W Weight] struct {
	Key    K
	Weight W
}

package iheap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParentAndChildren(t *testing.T) {
	for i := 0; i < 100; i++ {
		left, right := children(i)
		require.Equal(t, i, parent(left))
		require.Equal(t, i, parent(right))
		require.Equal(t, left+1, right)
	}
}

func TestWeightOfOutOfRange(t *testing.T) {
	h := NewHeap(map[string]int{"a": 1})

	weight, ok := h.weightOf(0)
	require.True(t, ok)
	require.Equal(t, 1, weight)

	for _, i := range []int{-1, 1, 2, 100} {
		_, ok := h.weightOf(i)
		require.False(t, ok)
	}
}

func TestDownPrefersLeftOnTie(t *testing.T) {
	h := &Heap[string, int]{
		keys:     []string{"root", "left", "right"},
		position: map[string]int{"root": 0, "left": 1, "right": 2},
		weights:  map[string]int{"root": 5, "left": 1, "right": 1},
	}

	h.down(0)
	require.Equal(t, []string{"left", "root", "right"}, h.keys)
	requireValid(t, h)
}

func TestDownNoSwapOnTie(t *testing.T) {
	h := &Heap[string, int]{
		keys:     []string{"root", "left", "right"},
		position: map[string]int{"root": 0, "left": 1, "right": 2},
		weights:  map[string]int{"root": 1, "left": 1, "right": 1},
	}

	h.down(0)
	require.Equal(t, []string{"root", "left", "right"}, h.keys)
}

func TestUpStopsOnTie(t *testing.T) {
	h := &Heap[string, int]{
		keys:     []string{"a", "b", "c", "d"},
		position: map[string]int{"a": 0, "b": 1, "c": 2, "d": 3},
		weights:  map[string]int{"a": 0, "b": 2, "c": 3, "d": 2},
	}

	h.up(3)
	require.Equal(t, []string{"a", "b", "c", "d"}, h.keys)

	h.weights["d"] = 1
	h.up(3)
	require.Equal(t, []string{"a", "d", "c", "b"}, h.keys)
	requireValid(t, h)
}

package iheap

func parent(i int) int { return (i - 1) / 2 }

func children(i int) (int, int) { return 2*i + 1, 2*i + 2 }

// weightOf returns the weight of the key at index i, or false where i is outside the heap.
func (h *Heap[K, W]) weightOf(i int) (W, bool) {
	if i < 0 || i >= len(h.keys) {
		var zero W
		return zero, false
	}

	return h.weights[h.keys[i]], true
}

// swap exchanges the keys at index i and j keeping the position index in step.
func (h *Heap[K, W]) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.position[h.keys[i]] = i
	h.position[h.keys[j]] = j
}

// up moves the key at index i towards the root until its parent is no heavier than it.
func (h *Heap[K, W]) up(i int) {
	for i > 0 {
		p := parent(i)

		weight, _ := h.weightOf(i)
		pWeight, _ := h.weightOf(p)

		if weight >= pWeight {
			return
		}

		h.swap(i, p)
		i = p
	}
}

// down moves the key at index i towards the leaves until neither child is lighter than it. Ties are resolved in favour
// of not swapping, then of the left child.
func (h *Heap[K, W]) down(i int) {
	for {
		sWeight, ok := h.weightOf(i)
		if !ok {
			return
		}

		var (
			smallest    = i
			left, right = children(i)
		)

		if weight, ok := h.weightOf(left); ok && weight < sWeight {
			smallest, sWeight = left, weight
		}

		if weight, ok := h.weightOf(right); ok && weight < sWeight {
			smallest = right
		}

		if smallest == i {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}

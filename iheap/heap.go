// Package iheap exposes a generic indexed min-heap which supports changing the weight of any key already in the heap.
package iheap

// Heap is a min-heap of unique keys ordered by their weight. Alongside the heap array it tracks the position of every
// key, meaning the weight of an existing key may be decreased or increased in O(log n) time.
//
// NOTE: Heap is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between goroutines.
type Heap[K comparable, W Weight] struct {
	keys     []K
	position map[K]int
	weights  map[K]W
}

// NewHeap creates a new heap containing the given key/weight pairs, the heap is built bottom-up in O(n) time.
//
// NOTE: The given map is copied, modifying it afterwards does not affect the heap.
func NewHeap[K comparable, W Weight](initial map[K]W) *Heap[K, W] {
	h := NewHeapWithCapacity[K, W](len(initial))

	for key, weight := range initial {
		h.position[key] = len(h.keys)
		h.weights[key] = weight
		h.keys = append(h.keys, key)
	}

	for i := parent(len(h.keys) - 1); i >= 0; i-- {
		h.down(i)
	}

	return h
}

// NewHeapWithCapacity creates a new empty heap where the underlying capacity is set to the given value.
//
// NOTE: The capacity has the same behavior as a slices capacity meaning the heap may grow beyond it, the capacity is
// there for performance optimizations.
func NewHeapWithCapacity[K comparable, W Weight](capacity int) *Heap[K, W] {
	return &Heap[K, W]{
		keys:     make([]K, 0, capacity),
		position: make(map[K]int, capacity),
		weights:  make(map[K]W, capacity),
	}
}

// Empty returns a boolean indicating whether the heap contains no entries.
func (h *Heap[K, W]) Empty() bool {
	return len(h.keys) == 0
}

// Len returns the number of entries in the heap.
func (h *Heap[K, W]) Len() int {
	return len(h.keys)
}

// Contains returns a boolean indicating whether the given key is currently in the heap.
func (h *Heap[K, W]) Contains(key K) bool {
	_, ok := h.weights[key]
	return ok
}

// Weight returns the current weight of the given key, and a boolean indicating whether the key is in the heap.
func (h *Heap[K, W]) Weight(key K) (W, bool) {
	weight, ok := h.weights[key]
	return weight, ok
}

// Enqueue adds the given key to the heap with the provided weight. Where the key is already present its weight is
// replaced and it's moved up or down the heap as required, enqueuing the same weight again is a no-op.
func (h *Heap[K, W]) Enqueue(key K, weight W) {
	old, ok := h.weights[key]
	if !ok {
		h.position[key] = len(h.keys)
		h.weights[key] = weight
		h.keys = append(h.keys, key)
		h.up(len(h.keys) - 1)

		return
	}

	h.weights[key] = weight

	switch {
	case weight < old:
		h.up(h.position[key])
	case weight > old:
		h.down(h.position[key])
	}
}

// Dequeue removes and returns the entry with the smallest weight. Where multiple entries share the smallest weight,
// one of them is returned in an arbitrary order. A false boolean is returned if the heap is empty.
func (h *Heap[K, W]) Dequeue() (Entry[K, W], bool) {
	if h.Empty() {
		return Entry[K, W]{}, false
	}

	var (
		last  = len(h.keys) - 1
		entry = Entry[K, W]{Key: h.keys[0], Weight: h.weights[h.keys[0]]}
	)

	delete(h.weights, entry.Key)
	delete(h.position, entry.Key)

	if last > 0 {
		h.keys[0] = h.keys[last]
		h.position[h.keys[0]] = 0
	}

	var zero K

	h.keys[last] = zero
	h.keys = h.keys[:last]

	h.down(0)

	return entry, true
}

// Peek returns the entry with the smallest weight without removing it from the heap. A false boolean is returned if
// the heap is empty.
func (h *Heap[K, W]) Peek() (Entry[K, W], bool) {
	if h.Empty() {
		return Entry[K, W]{}, false
	}

	return Entry[K, W]{Key: h.keys[0], Weight: h.weights[h.keys[0]]}, true
}

// Drain removes all entries from the heap in ascending weight order running the given function on each entry. In the
// event of an error, dequeuing stops early, and returns the error.
func (h *Heap[K, W]) Drain(fn func(entry Entry[K, W]) error) error {
	for {
		entry, ok := h.Dequeue()
		if !ok {
			return nil
		}

		if err := fn(entry); err != nil {
			return err
		}
	}
}

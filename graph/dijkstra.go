package graph

import (
	"fmt"

	"github.com/couchbase/indexed-heap/iheap"
	"github.com/couchbase/indexed-heap/log"
)

// Paths is the result of running 'ShortestPaths', it holds the distance to, and the predecessor of, every vertex
// reachable from the source.
type Paths[V comparable, W iheap.Weight] struct {
	Source V

	distances map[V]W
	previous  map[V]V
	settled   []V
}

// Distance returns the length of the shortest path from the source to the given vertex, and a boolean indicating
// whether the vertex is reachable.
func (p *Paths[V, W]) Distance(v V) (W, bool) {
	distance, ok := p.distances[v]
	return distance, ok
}

// PathTo returns the vertices along the shortest path from the source to the given vertex (inclusive), and a boolean
// indicating whether the vertex is reachable.
func (p *Paths[V, W]) PathTo(v V) ([]V, bool) {
	if _, ok := p.distances[v]; !ok {
		return nil, false
	}

	path := []V{v}

	for v != p.Source {
		v = p.previous[v]
		path = append(path, v)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Reachable returns the vertices reachable from the source in the order their distance was settled, which is
// non-decreasing distance order.
func (p *Paths[V, W]) Reachable() []V {
	return append([]V(nil), p.settled...)
}

// ShortestPaths runs Dijkstra's algorithm from the given source, returning the shortest paths to every vertex which can
// be reached. Tentative distances are re-prioritised in place using the indexed heap.
//
// NOTE: A '*NegativeWeightError' is returned if any edge reachable from the source has a negative weight.
func ShortestPaths[V comparable, W iheap.Weight](g *Graph[V, W], source V) (*Paths[V, W], error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("could not find source '%v': %w", source, ErrUnknownVertex)
	}

	var (
		queue = iheap.NewHeap(map[V]W{source: 0})
		paths = &Paths[V, W]{
			Source:    source,
			distances: make(map[V]W),
			previous:  make(map[V]V),
		}
	)

	for entry, ok := queue.Dequeue(); ok; entry, ok = queue.Dequeue() {
		paths.distances[entry.Key] = entry.Weight
		paths.settled = append(paths.settled, entry.Key)

		log.Tracef("(Dijkstra) Settled '%v' at distance %v", entry.Key, entry.Weight)

		var err error

		g.each(entry.Key, func(to V, weight W) {
			if err != nil {
				return
			}

			if weight < 0 {
				err = &NegativeWeightError[V, W]{From: entry.Key, To: to, Weight: weight}
				return
			}

			if _, ok := paths.distances[to]; ok {
				return
			}

			candidate := entry.Weight + weight

			if current, ok := queue.Weight(to); ok && current <= candidate {
				return
			}

			log.Tracef("(Dijkstra) Relaxed '%v' via '%v' to distance %v", to, entry.Key, candidate)

			queue.Enqueue(to, candidate)
			paths.previous[to] = entry.Key
		})

		if err != nil {
			return nil, err
		}
	}

	log.Debugf("(Dijkstra) Reached %d of %d vertices from '%v'", len(paths.settled), g.Order(), source)

	return paths, nil
}

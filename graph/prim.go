package graph

import (
	"fmt"

	"github.com/couchbase/indexed-heap/iheap"
	"github.com/couchbase/indexed-heap/log"
)

// Tree is a minimum spanning tree of the component containing 'Root'.
type Tree[V comparable, W iheap.Weight] struct {
	Root V

	// Edges are the edges of the tree in the order they were added by Prim's algorithm, each edge is directed away
	// from the root.
	Edges []Edge[V, W]

	// Weight is the sum of the weights of the edges in the tree.
	Weight W
}

// Vertices returns the vertices spanned by the tree, starting with the root.
func (t *Tree[V, W]) Vertices() []V {
	vertices := make([]V, 0, len(t.Edges)+1)
	vertices = append(vertices, t.Root)

	for _, edge := range t.Edges {
		vertices = append(vertices, edge.To)
	}

	return vertices
}

// MinimumSpanningTree runs Prim's algorithm from the given root, returning a minimum spanning tree of every vertex
// connected to it. The cheapest known connection of each vertex is re-prioritised in place using the indexed heap.
//
// NOTE: Negative weights are permitted, self loops are ignored.
func MinimumSpanningTree[V comparable, W iheap.Weight](g *Graph[V, W], root V) (*Tree[V, W], error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	if !g.HasVertex(root) {
		return nil, fmt.Errorf("could not find root '%v': %w", root, ErrUnknownVertex)
	}

	var (
		queue  = iheap.NewHeap(map[V]W{root: 0})
		parent = make(map[V]V)
		inTree = make(map[V]struct{})
		tree   = &Tree[V, W]{Root: root}
	)

	for entry, ok := queue.Dequeue(); ok; entry, ok = queue.Dequeue() {
		inTree[entry.Key] = struct{}{}

		if from, ok := parent[entry.Key]; ok {
			tree.Edges = append(tree.Edges, Edge[V, W]{From: from, To: entry.Key, Weight: entry.Weight})
			tree.Weight += entry.Weight

			log.Tracef("(Prim) Added edge '%v' -> '%v' with weight %v", from, entry.Key, entry.Weight)
		}

		g.each(entry.Key, func(to V, weight W) {
			if _, ok := inTree[to]; ok {
				return
			}

			if current, ok := queue.Weight(to); ok && current <= weight {
				return
			}

			queue.Enqueue(to, weight)
			parent[to] = entry.Key
		})
	}

	log.Debugf("(Prim) Spanned %d of %d vertices from '%v' with total weight %v", len(inTree), g.Order(), root,
		tree.Weight)

	return tree, nil
}

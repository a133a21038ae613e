// Package graph provides a weighted graph along with the shortest path and minimum spanning tree algorithms which are
// driven by the indexed heap in 'iheap'.
package graph

import (
	"github.com/couchbase/indexed-heap/iheap"
	"github.com/couchbase/indexed-heap/maputil"
)

// Edge is a weighted connection between two vertices.
type Edge[V comparable, W iheap.Weight] struct {
	From   V
	To     V
	Weight W
}

// adjacency holds the outgoing edges of a vertex keeping the order in which the targets were added.
type adjacency[V comparable, W iheap.Weight] struct {
	targets []V
	weights map[V]W
}

// Graph is a weighted graph stored as adjacency lists. Vertices and neighbours are iterated in the order they were
// added, meaning the algorithms in this package are deterministic for a given sequence of additions.
//
// NOTE: Graph is not safe for concurrent modification.
type Graph[V comparable, W iheap.Weight] struct {
	directed bool
	vertices []V
	index    map[V]int
	edges    map[V]*adjacency[V, W]
}

// NewGraph creates a new empty graph, undirected graphs store every edge in both directions.
func NewGraph[V comparable, W iheap.Weight](directed bool) *Graph[V, W] {
	return &Graph[V, W]{
		directed: directed,
		index:    make(map[V]int),
		edges:    make(map[V]*adjacency[V, W]),
	}
}

// Directed returns a boolean indicating whether this is a directed graph.
func (g *Graph[V, W]) Directed() bool {
	return g.directed
}

// Order returns the number of vertices in the graph.
func (g *Graph[V, W]) Order() int {
	return len(g.vertices)
}

// AddVertex adds the given vertex to the graph, adding an existing vertex is a no-op.
func (g *Graph[V, W]) AddVertex(v V) {
	if _, ok := g.index[v]; ok {
		return
	}

	g.index[v] = len(g.vertices)
	g.vertices = append(g.vertices, v)
	g.edges[v] = &adjacency[V, W]{weights: make(map[V]W)}
}

// AddEdge adds a weighted edge between the given vertices, adding them to the graph if required. Adding an edge which
// already exists replaces its weight.
func (g *Graph[V, W]) AddEdge(from, to V, weight W) {
	g.AddVertex(from)
	g.AddVertex(to)

	g.edges[from].set(to, weight)

	if !g.directed {
		g.edges[to].set(from, weight)
	}
}

func (a *adjacency[V, W]) set(to V, weight W) {
	if _, ok := a.weights[to]; !ok {
		a.targets = append(a.targets, to)
	}

	a.weights[to] = weight
}

// HasVertex returns a boolean indicating whether the given vertex is in the graph.
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, ok := g.index[v]
	return ok
}

// Vertices returns the vertices of the graph in the order they were added.
func (g *Graph[V, W]) Vertices() []V {
	return append([]V(nil), g.vertices...)
}

// Weight returns the weight of the edge between the given vertices, and a boolean indicating whether it exists.
func (g *Graph[V, W]) Weight(from, to V) (W, bool) {
	adj, ok := g.edges[from]
	if !ok {
		var zero W
		return zero, false
	}

	weight, ok := adj.weights[to]

	return weight, ok
}

// Neighbours returns a copy of the outgoing edges of the given vertex keyed by their target.
func (g *Graph[V, W]) Neighbours(v V) map[V]W {
	adj, ok := g.edges[v]
	if !ok {
		return nil
	}

	return maputil.Filter(adj.weights)
}

// Edges returns every edge in the graph. Undirected edges are returned once, from the vertex which was added first.
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	edges := make([]Edge[V, W], 0)

	for _, from := range g.vertices {
		g.each(from, func(to V, weight W) {
			if g.directed || g.index[from] <= g.index[to] {
				edges = append(edges, Edge[V, W]{From: from, To: to, Weight: weight})
			}
		})
	}

	return edges
}

// each runs the given function on every outgoing edge of the given vertex in the order they were added.
func (g *Graph[V, W]) each(v V, fn func(to V, weight W)) {
	adj, ok := g.edges[v]
	if !ok {
		return
	}

	for _, to := range adj.targets {
		fn(to, adj.weights[to])
	}
}

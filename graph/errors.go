package graph

import (
	"errors"
	"fmt"

	"github.com/couchbase/indexed-heap/iheap"
)

var (
	// ErrUnknownVertex is returned when an algorithm is started from a vertex which is not in the graph.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrDirectedGraph is returned by 'MinimumSpanningTree' when given a directed graph.
	ErrDirectedGraph = errors.New("minimum spanning tree requires an undirected graph")
)

// NegativeWeightError is returned by 'ShortestPaths' when it reaches an edge with a negative weight.
type NegativeWeightError[V comparable, W iheap.Weight] struct {
	From   V
	To     V
	Weight W
}

func (e *NegativeWeightError[V, W]) Error() string {
	return fmt.Sprintf("edge '%v' -> '%v' has negative weight %v", e.From, e.To, e.Weight)
}

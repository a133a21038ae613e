package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newClassicGraph returns the undirected six vertex graph commonly used to illustrate Dijkstra's algorithm.
func newClassicGraph() *Graph[string, int] {
	g := NewGraph[string, int](false)

	for _, e := range []Edge[string, int]{
		{From: "a", To: "b", Weight: 7},
		{From: "a", To: "c", Weight: 9},
		{From: "a", To: "f", Weight: 14},
		{From: "b", To: "c", Weight: 10},
		{From: "b", To: "d", Weight: 15},
		{From: "c", To: "d", Weight: 11},
		{From: "c", To: "f", Weight: 2},
		{From: "d", To: "e", Weight: 6},
		{From: "e", To: "f", Weight: 9},
	} {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}

func TestGraphAddEdgeUndirected(t *testing.T) {
	g := NewGraph[string, int](false)
	g.AddEdge("a", "b", 1)

	require.False(t, g.Directed())
	require.Equal(t, 2, g.Order())
	require.Equal(t, []string{"a", "b"}, g.Vertices())

	weight, ok := g.Weight("b", "a")
	require.True(t, ok)
	require.Equal(t, 1, weight)

	g.AddEdge("b", "a", 5)

	weight, ok = g.Weight("a", "b")
	require.True(t, ok)
	require.Equal(t, 5, weight)
	require.Equal(t, []Edge[string, int]{{From: "a", To: "b", Weight: 5}}, g.Edges())
}

func TestGraphAddEdgeDirected(t *testing.T) {
	g := NewGraph[int, float64](true)
	g.AddEdge(1, 2, 0.5)

	require.True(t, g.Directed())

	_, ok := g.Weight(2, 1)
	require.False(t, ok)
	require.Equal(t, map[int]float64{2: 0.5}, g.Neighbours(1))
	require.Empty(t, g.Neighbours(2))
	require.Nil(t, g.Neighbours(3))
}

func TestGraphAddVertex(t *testing.T) {
	g := NewGraph[string, int](false)
	g.AddVertex("a")
	g.AddVertex("a")

	require.True(t, g.HasVertex("a"))
	require.False(t, g.HasVertex("b"))
	require.Equal(t, 1, g.Order())
	require.Empty(t, g.Edges())

	_, ok := g.Weight("b", "a")
	require.False(t, ok)
}

func TestGraphVerticesCopy(t *testing.T) {
	g := NewGraph[string, int](false)
	g.AddVertex("a")

	vertices := g.Vertices()
	vertices[0] = "z"

	require.Equal(t, []string{"a"}, g.Vertices())
}

func TestGraphEdgesInsertionOrder(t *testing.T) {
	g := newClassicGraph()

	expected := []Edge[string, int]{
		{From: "a", To: "b", Weight: 7},
		{From: "a", To: "c", Weight: 9},
		{From: "a", To: "f", Weight: 14},
		{From: "b", To: "c", Weight: 10},
		{From: "b", To: "d", Weight: 15},
		{From: "c", To: "d", Weight: 11},
		{From: "c", To: "f", Weight: 2},
		{From: "f", To: "e", Weight: 9},
		{From: "d", To: "e", Weight: 6},
	}

	require.Equal(t, []string{"a", "b", "c", "f", "d", "e"}, g.Vertices())
	require.Equal(t, expected, g.Edges())
}

func TestGraphSelfLoop(t *testing.T) {
	g := NewGraph[string, int](false)
	g.AddEdge("a", "a", 3)

	require.Equal(t, []Edge[string, int]{{From: "a", To: "a", Weight: 3}}, g.Edges())
}

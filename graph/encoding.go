package graph

import (
	"fmt"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"

	"github.com/couchbase/indexed-heap/errdefs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the JSON representation of a graph with string vertices and floating point weights.
type Document struct {
	Directed bool           `json:"directed"`
	Vertices []string       `json:"vertices,omitempty"`
	Edges    []EdgeDocument `json:"edges,omitempty"`
}

// EdgeDocument is the JSON representation of a single edge.
type EdgeDocument struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Decode reads a JSON graph document from the given reader, returning an error if it's malformed or fails validation.
func Decode(r io.Reader) (*Graph[string, float64], error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode graph: %w", err)
	}

	return doc.Graph()
}

// Encode writes the given graph to the writer as a JSON graph document.
func Encode(w io.Writer, g *Graph[string, float64]) error {
	if err := json.NewEncoder(w).Encode(NewDocument(g)); err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}

	return nil
}

// NewDocument returns the document representation of the given graph, vertices and edges are listed in the order they
// were added.
func NewDocument(g *Graph[string, float64]) Document {
	doc := Document{Directed: g.Directed(), Vertices: g.Vertices()}

	for _, edge := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDocument{From: edge.From, To: edge.To, Weight: edge.Weight})
	}

	return doc
}

// Validate returns an error describing every problem with the document, or nil if it's valid.
func (d Document) Validate() error {
	var (
		errs     = errdefs.MultiError{Prefix: "invalid graph: "}
		vertices = make(map[string]struct{}, len(d.Vertices))
		edges    = make(map[[2]string]struct{}, len(d.Edges))
	)

	for i, v := range d.Vertices {
		if v == "" {
			errs.Addf("vertex %d has an empty name", i)
			continue
		}

		if _, ok := vertices[v]; ok {
			errs.Addf("vertex '%s' is listed more than once", v)
		}

		vertices[v] = struct{}{}
	}

	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			errs.Addf("edge %d has an empty vertex name", i)
			continue
		}

		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			errs.Addf("edge '%s' -> '%s' has invalid weight %v", e.From, e.To, e.Weight)
		}

		key := [2]string{e.From, e.To}
		if !d.Directed && e.To < e.From {
			key = [2]string{e.To, e.From}
		}

		if _, ok := edges[key]; ok {
			errs.Addf("edge '%s' -> '%s' is listed more than once", e.From, e.To)
		}

		edges[key] = struct{}{}
	}

	return errs.ErrOrNil()
}

// Graph validates the document and builds the graph it describes. Vertices only referenced by edges are added in the
// order they're first seen.
func (d Document) Graph() (*Graph[string, float64], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := NewGraph[string, float64](d.Directed)

	for _, v := range d.Vertices {
		g.AddVertex(v)
	}

	for _, e := range d.Edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	return g, nil
}

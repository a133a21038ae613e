// Command heappath loads a JSON graph document and prints the shortest paths from, or the minimum spanning tree
// rooted at, a source vertex.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/couchbase/indexed-heap/graph"
	"github.com/couchbase/indexed-heap/log"
	"github.com/couchbase/indexed-heap/maputil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type pathsOutput struct {
	Source    string              `json:"source"`
	Distances map[string]float64  `json:"distances"`
	Paths     map[string][]string `json:"paths"`
}

type targetOutput struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Distance float64  `json:"distance"`
	Path     []string `json:"path"`
}

type treeOutput struct {
	Root   string               `json:"root"`
	Weight float64              `json:"weight"`
	Edges  []graph.EdgeDocument `json:"edges"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command returning the exit code, it's separate from 'main' so that it may be tested.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, errUsage) {
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "heappath: %v\n", err)
		return 2
	}

	log.SetLogger(log.StdoutLogger{MinLevel: cfg.level, Writer: stderr})
	defer log.SetLogger(nil)

	if err := execute(cfg, stdin, stdout); err != nil {
		log.Errorf("(heappath) Failed to run '%s' from '%s': %v", cfg.algorithm, cfg.source, err)
		fmt.Fprintf(stderr, "heappath: %v\n", err)

		return 1
	}

	return 0
}

func execute(cfg config, stdin io.Reader, stdout io.Writer) error {
	g, err := load(cfg.graph, stdin)
	if err != nil {
		return err
	}

	log.Infof("(heappath) Loaded graph '%s' with %d vertices", cfg.graph, g.Order())

	var output any

	switch cfg.algorithm {
	case algorithmPrim:
		output, err = spanningTree(g, cfg.source)
	default:
		output, err = shortestPaths(g, cfg.source, cfg.target)
	}

	if err != nil {
		return err
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func load(path string, stdin io.Reader) (*graph.Graph[string, float64], error) {
	if path == "-" {
		return graph.Decode(stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph: %w", err)
	}
	defer file.Close()

	return graph.Decode(file)
}

func shortestPaths(g *graph.Graph[string, float64], source, target string) (any, error) {
	paths, err := graph.ShortestPaths(g, source)
	if err != nil {
		return nil, fmt.Errorf("failed to find shortest paths: %w", err)
	}

	if target != "" {
		path, ok := paths.PathTo(target)
		if !ok {
			return nil, fmt.Errorf("vertex '%s' is not reachable from '%s'", target, source)
		}

		distance, _ := paths.Distance(target)

		return targetOutput{Source: source, Target: target, Distance: distance, Path: path}, nil
	}

	reached := make(map[string]bool, g.Order())
	for _, v := range g.Vertices() {
		_, reached[v] = paths.Distance(v)
	}

	unreachable := maputil.SortedKeys(reached, func(_ string, ok bool) bool { return !ok })
	if len(unreachable) > 0 {
		log.Warnf("(heappath) %d vertices are not reachable from '%s': %v", len(unreachable), source, unreachable)
	}

	output := pathsOutput{
		Source:    source,
		Distances: make(map[string]float64),
		Paths:     make(map[string][]string),
	}

	for _, v := range paths.Reachable() {
		output.Distances[v], _ = paths.Distance(v)
		output.Paths[v], _ = paths.PathTo(v)
	}

	return output, nil
}

func spanningTree(g *graph.Graph[string, float64], root string) (any, error) {
	tree, err := graph.MinimumSpanningTree(g, root)
	if err != nil {
		return nil, fmt.Errorf("failed to find minimum spanning tree: %w", err)
	}

	output := treeOutput{Root: root, Weight: tree.Weight, Edges: make([]graph.EdgeDocument, 0, len(tree.Edges))}

	for _, edge := range tree.Edges {
		output.Edges = append(output.Edges, graph.EdgeDocument{From: edge.From, To: edge.To, Weight: edge.Weight})
	}

	return output, nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/couchbase/indexed-heap/envvar"
	"github.com/couchbase/indexed-heap/log"
)

const (
	algorithmDijkstra = "dijkstra"
	algorithmPrim     = "prim"
)

// errUsage is returned when the arguments are invalid, the usage has already been printed.
var errUsage = errors.New("invalid usage")

// config is the configuration of a single run, populated from flags and then the environment.
type config struct {
	graph     string
	algorithm string
	source    string
	target    string
	level     log.Level
}

// parseConfig parses the given arguments, the 'HEAPPATH_LOG_LEVEL' and 'HEAPPATH_VERBOSE' environment variables
// override the '-log-level' flag.
func parseConfig(args []string, output io.Writer) (config, error) {
	var (
		cfg   config
		level string
		flags = flag.NewFlagSet("heappath", flag.ContinueOnError)
	)

	flags.SetOutput(output)
	flags.StringVar(&cfg.graph, "graph", "-", "path to the JSON graph document, '-' reads from stdin")
	flags.StringVar(&cfg.algorithm, "algorithm", algorithmDijkstra, "algorithm to run, one of 'dijkstra' or 'prim'")
	flags.StringVar(&cfg.source, "source", "", "vertex to start from, the root of the tree when using 'prim'")
	flags.StringVar(&cfg.target, "target", "", "only output the shortest path to this vertex when using 'dijkstra'")
	flags.StringVar(&level, "log-level", "warning", "minimum level of log lines written to stderr")

	if err := flags.Parse(args); err != nil {
		return config{}, errUsage
	}

	if env, ok := envvar.GetString("HEAPPATH_LOG_LEVEL"); ok {
		level = env
	}

	var ok bool
	if cfg.level, ok = log.ParseLevel(level); !ok {
		return config{}, fmt.Errorf("unknown log level '%s'", level)
	}

	if verbose, ok := envvar.GetBool("HEAPPATH_VERBOSE"); ok && verbose {
		cfg.level = log.LevelTrace
	}

	if cfg.source == "" {
		return config{}, errors.New("a source vertex must be provided using '-source'")
	}

	switch cfg.algorithm {
	case algorithmDijkstra:
	case algorithmPrim:
		if cfg.target != "" {
			return config{}, errors.New("'-target' is only supported by the 'dijkstra' algorithm")
		}
	default:
		return config{}, fmt.Errorf("unknown algorithm '%s'", cfg.algorithm)
	}

	return cfg, nil
}

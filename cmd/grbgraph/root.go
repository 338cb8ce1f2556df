// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grbgraph/loader"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	output    string
	workers   int
	directed  bool
	weighted  bool
	loops     bool
}

// app carries what subcommands need after flag parsing.
type app struct {
	flags  globalFlags
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "grbgraph",
		Short: "Graph algorithms as sparse linear algebra",
		Long: `Run BFS, Bellman-Ford, Floyd-Warshall and triangle counting on a graph
file, with every algorithm expressed as masked semiring products.

Graph files:
  *.yaml, *.yml  YAML document (vertices, directed, weighted, loops, edges)
  anything else  edge list: vertex count line, then "from to [weight]" lines

Examples:
  grbgraph bfs diamond.txt 0 --directed
  grbgraph msbfs diamond.txt 0 2 --directed
  grbgraph bellman-ford roads.yaml 0
  grbgraph floyd-warshall roads.yaml --output yaml
  grbgraph triangles social.txt --method cohen`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.flags.logLevel, a.flags.logFormat)
			if err != nil {
				return err
			}
			a.logger = logger
			switch a.flags.output {
			case outputText, outputYAML:
			default:
				return fmt.Errorf("unknown --output %q (want %s or %s)", a.flags.output, outputText, outputYAML)
			}
			if a.flags.workers < 0 {
				return fmt.Errorf("--workers cannot be negative (%d)", a.flags.workers)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "text", "Log format: text, json")
	pf.StringVarP(&a.flags.output, "output", "o", outputText, "Result format: text, yaml")
	pf.IntVar(&a.flags.workers, "workers", 1, "Goroutines per matrix product (0 = GOMAXPROCS)")
	pf.BoolVar(&a.flags.directed, "directed", false, "Treat edges as directed (overrides the file)")
	pf.BoolVar(&a.flags.weighted, "weighted", false, "Use edge weights (overrides the file)")
	pf.BoolVar(&a.flags.loops, "loops", false, "Allow self-loop edges (overrides the file)")

	root.AddCommand(
		newBFSCmd(a),
		newMultiSourceBFSCmd(a),
		newBellmanFordCmd(a),
		newFloydWarshallCmd(a),
		newTrianglesCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// newLogger builds an slog.Logger writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unknown --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown --log-format %q (want text or json)", format)
	}
}

// loadGraph reads path and returns the graph plus the build options implied
// by explicitly set flags.
func (a *app) loadGraph(cmd *cobra.Command, path string) (*loader.Graph, []loader.Option, error) {
	g, err := loader.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var opts []loader.Option
	flags := cmd.Flags()
	if flags.Changed("directed") {
		opts = append(opts, loader.WithDirected(a.flags.directed))
	}
	if flags.Changed("weighted") && a.flags.weighted {
		opts = append(opts, loader.WithWeighted())
	}
	if flags.Changed("loops") && a.flags.loops {
		opts = append(opts, loader.WithLoops())
	}
	a.logger.Info("graph loaded", "path", path, "vertices", g.Vertices, "edges", len(g.Edges))

	return g, opts, nil
}

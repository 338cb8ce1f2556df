// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grbgraph/loader"
)

// topologies maps generate's TOPOLOGY argument to a constructor.
var topologies = map[string]func(n int, p float64) loader.Topology{
	"complete": func(n int, _ float64) loader.Topology { return loader.Complete(n) },
	"cycle":    func(n int, _ float64) loader.Topology { return loader.Cycle(n) },
	"path":     func(n int, _ float64) loader.Topology { return loader.Path(n) },
	"star":     func(n int, _ float64) loader.Topology { return loader.Star(n) },
	"wheel":    func(n int, _ float64) loader.Topology { return loader.Wheel(n) },
	"random":   loader.RandomSparse,
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		p          float64
		seed       int64
		minW, maxW int
	)
	cmd := &cobra.Command{
		Use:   "generate TOPOLOGY N",
		Short: "Write a generated graph as a YAML document",
		Long: `Write a generated graph as a YAML document readable by the other commands.

Topologies: complete, cycle, path, star, wheel, random (uses --p and --seed).
--directed, --weighted and --loops select the graph mode.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := topologies[args[0]]
			if !ok {
				return fmt.Errorf("unknown topology %q", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("vertex count %q is not an integer", args[1])
			}
			opts := []loader.GenOption{loader.WithSeed(seed)}
			if a.flags.directed {
				opts = append(opts, loader.WithDirectedEdges())
			}
			if a.flags.loops {
				opts = append(opts, loader.WithSelfLoops())
			}
			if a.flags.weighted {
				opts = append(opts, loader.WithIntWeights(minW, maxW))
			}
			g, err := loader.Generate(build(n, p), opts...)
			if err != nil {
				return err
			}
			a.logger.Info("graph generated", "topology", args[0], "vertices", g.Vertices, "edges", len(g.Edges))

			return loader.WriteYAML(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().Float64Var(&p, "p", 0.1, "Edge probability for the random topology")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().IntVar(&minW, "min-weight", 1, "Smallest integer weight (with --weighted)")
	cmd.Flags().IntVar(&maxW, "max-weight", 9, "Largest integer weight (with --weighted)")

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grbgraph/bfs"
	"github.com/katalvlaran/grbgraph/shortestpath"
	"github.com/katalvlaran/grbgraph/triangles"
)

// parseVertices converts vertex arguments to indices.
func parseVertices(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("vertex %q is not an integer", s)
		}
		out[i] = v
	}

	return out, nil
}

func newBFSCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "bfs FILE START",
		Short: "Hop distance from START to every vertex (-1 = unreachable)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, opts, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			adj, err := g.BoolAdjacency(opts...)
			if err != nil {
				return err
			}
			starts, err := parseVertices(args[1:])
			if err != nil {
				return err
			}
			dist, err := bfs.BFS(adj, starts[0],
				bfs.WithLogger(a.logger), bfs.WithWorkers(a.flags.workers), bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			return writeSlice(cmd.OutOrStdout(), a.flags.output, dist)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Stop after this depth (0 = no limit)")

	return cmd
}

func newMultiSourceBFSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "msbfs FILE START...",
		Short: "BFS parent of every vertex, one row per START (-1 = start, -2 = unreachable)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, opts, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			adj, err := g.BoolAdjacency(opts...)
			if err != nil {
				return err
			}
			starts, err := parseVertices(args[1:])
			if err != nil {
				return err
			}
			rows, err := bfs.MultiSourceBFS(adj, starts, bfs.WithLogger(a.logger), bfs.WithWorkers(a.flags.workers))
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), a.flags.output, rows)
		},
	}
}

func newBellmanFordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bellman-ford FILE START...",
		Short: "Shortest distances from each START (+Inf = unreachable)",
		Long: `Shortest distances from each START by Bellman-Ford. Negative edge weights
are allowed; a negative cycle reachable from a start is reported as an error.
With a single START the distances are printed as one list.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, opts, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			adj, err := g.FloatAdjacency(opts...)
			if err != nil {
				return err
			}
			starts, err := parseVertices(args[1:])
			if err != nil {
				return err
			}
			spOpts := []shortestpath.Option{shortestpath.WithLogger(a.logger), shortestpath.WithWorkers(a.flags.workers)}
			if len(starts) == 1 {
				dist, err := shortestpath.SingleSourceBellmanFord(adj, starts[0], spOpts...)
				if err != nil {
					return err
				}
				return writeSlice(cmd.OutOrStdout(), a.flags.output, dist)
			}
			rows, err := shortestpath.MultiSourceBellmanFord(adj, starts, spOpts...)
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), a.flags.output, rows)
		},
	}
}

func newFloydWarshallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "floyd-warshall FILE",
		Short: "All-pairs shortest distances (+Inf = unreachable)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, opts, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			adj, err := g.FloatAdjacency(opts...)
			if err != nil {
				return err
			}
			rows, err := shortestpath.AllPairsFloydWarshall(adj,
				shortestpath.WithLogger(a.logger), shortestpath.WithWorkers(a.flags.workers))
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), a.flags.output, rows)
		},
	}
}

const (
	methodVertex = "vertex"
	methodCohen  = "cohen"
	methodSandia = "sandia"
)

func newTrianglesCmd(a *app) *cobra.Command {
	var (
		method string
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "triangles FILE",
		Short: "Count triangles of an undirected graph",
		Long: `Count triangles of an undirected graph.

Methods:
  vertex  triangles each vertex belongs to, one number per vertex
  cohen   total count, Cohen's algorithm
  sandia  total count, Sandia's algorithm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, opts, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			adj, err := g.BoolAdjacency(opts...)
			if err != nil {
				return err
			}
			tOpts := []triangles.Option{triangles.WithLogger(a.logger), triangles.WithWorkers(a.flags.workers)}
			if verify {
				tOpts = append(tOpts, triangles.WithVerifySymmetric())
			}
			out := cmd.OutOrStdout()
			switch method {
			case methodVertex:
				counts, err := triangles.CountForEachVertex(adj, tOpts...)
				if err != nil {
					return err
				}
				return writeSlice(out, a.flags.output, counts)
			case methodCohen:
				n, err := triangles.CountCohen(adj, tOpts...)
				if err != nil {
					return err
				}
				return writeScalar(out, a.flags.output, "triangles", n)
			case methodSandia:
				n, err := triangles.CountSandia(adj, tOpts...)
				if err != nil {
					return err
				}
				return writeScalar(out, a.flags.output, "triangles", n)
			default:
				return fmt.Errorf("unknown --method %q (want %s, %s or %s)", method, methodVertex, methodCohen, methodSandia)
			}
		},
	}
	cmd.Flags().StringVar(&method, "method", methodSandia, "Counting method: vertex, cohen, sandia")
	cmd.Flags().BoolVar(&verify, "verify-symmetric", false, "Reject a non-symmetric adjacency matrix")

	return cmd
}

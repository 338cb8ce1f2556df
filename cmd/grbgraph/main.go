// SPDX-License-Identifier: MIT

// Command grbgraph runs the sparse-algebra graph algorithms on a graph file.
//
//	grbgraph bfs graph.txt 0 --directed
//	grbgraph bellman-ford roads.yaml 0 3
//	grbgraph triangles social.txt --method sandia
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

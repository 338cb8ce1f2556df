package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/grbgraph/bfs"
	"github.com/katalvlaran/grbgraph/sparse"
)

// ExampleBFS walks the diamond 0→1, 0→2, 1→3, 2→3.
func ExampleBFS() {
	adj, _ := sparse.MatrixFromTriples(4, 4,
		[]int{0, 0, 1, 2}, []int{1, 2, 3, 3}, []bool{true, true, true, true})

	dist, err := bfs.BFS(adj, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output:
	// [0 1 1 2]
}

// ExampleMultiSourceBFS builds parent trees for two starts in one pass.
// -1 marks the start itself, -2 a vertex the start never reaches.
func ExampleMultiSourceBFS() {
	adj, _ := sparse.MatrixFromTriples(4, 4,
		[]int{0, 0, 1, 2}, []int{1, 2, 3, 3}, []bool{true, true, true, true})

	rows, err := bfs.MultiSourceBFS(adj, []int{0, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range rows {
		fmt.Println(r.Key, r.Values)
	}
	// Output:
	// 0 [-1 0 0 1]
	// 2 [-2 -2 -1 2]
}

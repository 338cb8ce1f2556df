package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/grbgraph/sparse"
)

// One BFS step: advance the frontier {0} through the adjacency matrix,
// skipping vertices already visited.
func ExampleVxM() {
	adj, _ := sparse.MatrixFromTriples(4, 4,
		[]int{0, 0, 1, 2}, []int{1, 2, 3, 3}, []bool{true, true, true, true})
	frontier, _ := sparse.VectorFromEntries(4, []int{0}, []bool{true})
	visited, _ := sparse.VectorFromEntries(4, []int{0, 2}, []int64{0, 1})

	_ = sparse.VxM(frontier, visited, nil, sparse.OrAnd(), frontier, adj, sparse.DescRSC)
	fmt.Println(frontier.Indices())
	// Output:
	// [1]
}

func ExampleMxM() {
	// Shortest two-hop distances under MIN_PLUS.
	a, _ := sparse.MatrixFromTriples(3, 3,
		[]int{0, 0, 1}, []int{1, 2, 2}, []float64{1, 5, 1})
	c, _ := sparse.NewMatrix[float64](3, 3)

	_ = sparse.MxM(c, nil, nil, sparse.MinPlus[float64](), a, a, sparse.Descriptor{})
	fmt.Println(c.Element(0, 2))
	// Output:
	// 2 true
}

// Package grbgraph runs classic graph algorithms as sparse linear algebra:
// every traversal step is a matrix or vector product over a semiring, with
// masks standing in for visited and finalized sets.
//
// What is inside:
//
//	sparse/       Vector and Matrix containers, semirings, masks, MxM/VxM
//	dense/        sparse results exported to dense rows with a fill value
//	bfs/          single and multi-source BFS (distances, parent trees)
//	shortestpath/ Bellman–Ford (single and multi-source), Floyd–Warshall
//	triangles/    per-vertex, Cohen and Sandia triangle counting
//	loader/       edge-list and YAML graph files, topology generators
//	cmd/grbgraph  command-line front end
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	The square above is the boolean adjacency A with A[0,1], A[0,2],
//	A[1,3], A[2,3] and their mirrors set. One BFS level from vertex 0 is
//	the product f ⊕.⊗ A over OR_AND, masked by the complement of the
//	visited set.
//
//	go install github.com/katalvlaran/grbgraph/cmd/grbgraph@latest
package grbgraph

// Package bfs provides breadth-first search expressed as sparse linear
// algebra: no queue, no adjacency lists, only masked products over a boolean
// adjacency matrix.
//
// What
//
//   - BFS: hop distance from one start vertex to every vertex.
//   - MultiSourceBFS: BFS parent tree for several start vertices at once,
//     one row per start.
//
// How
//
//	frontier (current layer): boolean vector / int64 matrix row
//	visited  (already seen) : the result container itself, used as a mask
//	advance                 : frontier × adj under OR_AND (BFS) or
//	                            MIN_FIRST (MultiSourceBFS), masked by the
//	                            complement of visited, with Replace
//
//	Iteration stops once the frontier is empty. Absent entries are
//	materialized only at the end: Unvisited (-1) distance, SourceParent (-1)
//	for a start itself, NoParent (-2) for unreached vertices.
//
// Determinism
//
//	When several frontier vertices reach the same vertex in one round, the
//	smallest index becomes its parent (minimum reduction of MIN_FIRST).
//	Products are bit-identical for any WithWorkers value.
//
// Complexity (V = vertices, E = edges, S = starts)
//
//   - BFS:            O(V·depth + E)
//   - MultiSourceBFS: O(S·(V·depth + E)) work, rows computed in parallel
//
// Usage
//
//	adj, _ := sparse.MatrixFromTriples(4, 4,
//	    []int{0, 0, 1, 2}, []int{1, 2, 3, 3}, []bool{true, true, true, true})
//	dist, err := bfs.BFS(adj, 0)                   // [0 1 1 2]
//	rows, err := bfs.MultiSourceBFS(adj, []int{0, 2}) // {0 [-1 0 0 1]} {2 [-2 -2 -1 2]}
//
// Options
//
//   - WithLogger(l):     per-level Debug records.
//   - WithWorkers(n):    goroutines for matrix products (0 = GOMAXPROCS).
//   - WithMaxDepth(d):   stop after depth d (>0); 0 means no limit.
//   - WithOnLevel(fn):   hook per level; returning an error aborts.
//
// Errors
//
//   - sparse.ErrNonSquare       adjacency not square.
//   - sparse.ErrDomainMismatch  adjacency not boolean.
//   - sparse.ErrIndexOutOfRange a start outside [0, V); checked for every
//     start before any work.
//   - ErrOptionViolation        invalid Option.
package bfs

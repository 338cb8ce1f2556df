// Package shortestpath computes weighted shortest paths over a float64
// adjacency matrix using the MIN_PLUS semiring.
//
// What
//
//   - SingleSourceBellmanFord / MultiSourceBellmanFord: distances from one or
//     several starts, negative edge weights allowed.
//   - AllPairsFloydWarshall: distances between every ordered pair.
//
// How
//
//	Both algorithms first add a 0-weight self-loop to every vertex through an
//	element-wise MIN against the identity, so an existing negative self-loop
//	survives and is later detected as a negative cycle.
//
//	Bellman-Ford keeps one distance row per start and relaxes all rows at once:
//	    dist ← dist MIN.PLUS adj
//	until two consecutive rounds are exactly equal (same structure, same
//	values). V rounds without a fixpoint mean a negative cycle is reachable.
//
//	Floyd-Warshall folds, for every pivot k, the outer product of column k and
//	row k into the distance matrix with MIN as accumulator. A negative entry
//	on the final diagonal means a negative cycle.
//
// Determinism
//
//	Matrix products are bit-identical for any WithWorkers value, so the exact
//	fixpoint test is never disturbed by parallel evaluation.
//
// Complexity (V = vertices, E = edges, S = starts)
//
//   - Bellman-Ford:   O(V · S · (V + E)) worst case.
//   - Floyd-Warshall: O(V³) worst case; sparse pivots are cheaper.
//
// Errors
//
//   - sparse.ErrNonSquare, sparse.ErrDomainMismatch (adjacency not FP64).
//   - sparse.ErrIndexOutOfRange for any start outside [0, V), checked for
//     every start before any work.
//   - ErrInvalidWeight for a NaN or infinite edge weight.
//   - ErrNegativeCycle.
//   - ErrOptionViolation.
package shortestpath

// Package dense materializes sparse results into ordinary Go slices.
//
// Sparse containers use absence to mean "unknown" or "unreached". At the
// boundary to callers that absence becomes an explicit fill value chosen by
// the algorithm: -1 for unvisited BFS vertices, -2 for parents never reached,
// +Inf for unreachable shortest-path targets, 0 for triangle-free vertices.
//
//	dist := dense.VectorToSlice(v, -1)
//	rows, err := dense.MatrixToKeyedRows(m, starts, math.Inf(1))
package dense

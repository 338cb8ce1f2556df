// SPDX-License-Identifier: MIT
// Package: shortestpath
//
// Purpose:
//   - All-pairs shortest paths by Floyd-Warshall over a sparse distance
//     matrix: pivot k folds column k ⊗ row k into the matrix under MIN.
//
// Contract:
//   - Pivots run in ascending order; each fold reads copies of the pivot
//     row and column taken before the write, so the sweep is deterministic.
//   - A negative diagonal after the full sweep reports ErrNegativeCycle.

package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/grbgraph/dense"
	"github.com/katalvlaran/grbgraph/sparse"
)

const opFloydWarshall = "FloydWarshall"

// AllPairsFloydWarshall returns one row per vertex v (in order 0..V-1) with
// the shortest distance from v to every vertex; +Inf marks no path.
//
// Errors: sparse.ErrNonSquare, sparse.ErrDomainMismatch, ErrInvalidWeight,
// ErrNegativeCycle, ErrOptionViolation.
func AllPairsFloydWarshall(adj sparse.AnyMatrix, opts ...Option) ([]dense.KeyedRow[float64], error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	a, err := validate(adj)
	if err != nil {
		return nil, err
	}
	n := a.Nrows()

	dist, err := withZeroLoops(a)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: %s: %w", opFloydWarshall, err)
	}

	var (
		minPlus = sparse.MinPlus[float64]()
		minimum = sparse.Min[float64]()
		desc    = sparse.Descriptor{}.WithWorkers(o.Workers)
	)
	for k := 0; k < n; k++ {
		col, err := sparse.ExtractCol(dist, k)
		if err != nil {
			return nil, fmt.Errorf("shortestpath: %s pivot %d: %w", opFloydWarshall, k, err)
		}
		row, err := sparse.ExtractRow(dist, k)
		if err != nil {
			return nil, fmt.Errorf("shortestpath: %s pivot %d: %w", opFloydWarshall, k, err)
		}
		// dist = min(dist, dist[:,k] ⊗ dist[k,:])
		if err = sparse.MxM(dist, nil, minimum, minPlus, col.AsColumn(), row.AsRow(), desc); err != nil {
			return nil, fmt.Errorf("shortestpath: %s pivot %d: %w", opFloydWarshall, k, err)
		}
		o.Logger.Debug("floyd-warshall pivot", "pivot", k, "entries", dist.Nvals())
	}

	diag, err := sparse.Diag(dist)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: %s: %w", opFloydWarshall, err)
	}
	if least := sparse.ReduceVector(sparse.MinMonoid[float64](), diag); least < 0 {
		return nil, fmt.Errorf("shortestpath: %s: diagonal minimum %g: %w", opFloydWarshall, least, ErrNegativeCycle)
	}

	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}

	return dense.MatrixToKeyedRows(dist, keys, Unreachable)
}

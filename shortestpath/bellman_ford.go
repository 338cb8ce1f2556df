// SPDX-License-Identifier: MIT
// Package: shortestpath
//
// Purpose:
//   - Bellman-Ford as iterated MIN_PLUS relaxation of a (sources × V)
//     distance matrix; one row per source.
//
// Contract:
//   - Convergence is exact structural and numeric equality between rounds.
//   - At most V rounds; no fixpoint within them means a reachable negative
//     cycle and ErrNegativeCycle, never a partial answer.

package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/grbgraph/dense"
	"github.com/katalvlaran/grbgraph/sparse"
)

const opBellmanFord = "BellmanFord"

// MultiSourceBellmanFord returns, for every start, its shortest distance to
// every vertex of the weighted digraph adj (FP64, entries are edge weights).
// Unreachable vertices get +Inf. Rows follow the order of starts.
//
// Errors: sparse.ErrNonSquare, sparse.ErrDomainMismatch,
// sparse.ErrIndexOutOfRange (checked for every start first),
// ErrInvalidWeight, ErrNegativeCycle, ErrOptionViolation.
func MultiSourceBellmanFord(adj sparse.AnyMatrix, starts []int, opts ...Option) ([]dense.KeyedRow[float64], error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	a, err := validate(adj)
	if err != nil {
		return nil, err
	}
	n := a.Nrows()
	if err = sparse.CheckIndicesInRange(starts, n); err != nil {
		return nil, fmt.Errorf("shortestpath: %w", err)
	}
	if n == 0 {
		return []dense.KeyedRow[float64]{}, nil
	}

	aug, err := withZeroLoops(a)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: %s: %w", opBellmanFord, err)
	}

	k := len(starts)
	dist, _ := sparse.NewMatrix[float64](k, n)
	for r, s := range starts {
		_ = dist.SetElement(r, s, 0)
	}

	var (
		minPlus = sparse.MinPlus[float64]()
		desc    = sparse.Descriptor{}.WithWorkers(o.Workers)
	)
	for round := 1; round <= n; round++ {
		next, _ := sparse.NewMatrix[float64](k, n)
		if err = sparse.MxM(next, nil, nil, minPlus, dist, aug, desc); err != nil {
			return nil, fmt.Errorf("shortestpath: %s round %d: %w", opBellmanFord, round, err)
		}
		o.Logger.Debug("bellman-ford round", "round", round, "entries", next.Nvals())
		if sparse.MatrixEqual(dist, next) {
			return dense.MatrixToKeyedRows(dist, starts, Unreachable)
		}
		dist = next
	}
	o.Logger.Debug("bellman-ford did not converge", "rounds", n)

	return nil, fmt.Errorf("shortestpath: %s: no fixpoint after %d rounds: %w", opBellmanFord, n, ErrNegativeCycle)
}

// SingleSourceBellmanFord is MultiSourceBellmanFord with one start; it
// returns that start's distance row.
func SingleSourceBellmanFord(adj sparse.AnyMatrix, start int, opts ...Option) ([]float64, error) {
	rows, err := MultiSourceBellmanFord(adj, []int{start}, opts...)
	if err != nil {
		return nil, err
	}

	return rows[0].Values, nil
}

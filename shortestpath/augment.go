// SPDX-License-Identifier: MIT

package shortestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grbgraph/sparse"
)

// validate checks adj is a square FP64 matrix of finite weights and returns
// it typed.
func validate(adj sparse.AnyMatrix) (*sparse.Matrix[float64], error) {
	if err := sparse.CheckAdjacency(adj, sparse.Float64); err != nil {
		return nil, fmt.Errorf("shortestpath: %w", err)
	}
	a, err := sparse.As[float64](adj)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: %w", err)
	}
	for i := 0; i < a.Nrows(); i++ {
		for j, w := range a.Row(i) {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("shortestpath: edge (%d,%d) weight %g: %w", i, j, w, ErrInvalidWeight)
			}
		}
	}

	return a, nil
}

// withZeroLoops returns min(A, I·0): every vertex gets a 0-weight self-loop
// unless it already carries a negative one.
func withZeroLoops(a *sparse.Matrix[float64]) (*sparse.Matrix[float64], error) {
	n := a.Nrows()
	id, err := sparse.Identity(n, 0.0)
	if err != nil {
		return nil, err
	}
	out, _ := sparse.NewMatrix[float64](n, n)
	if err = sparse.EWiseAddMatrix(out, nil, nil, sparse.Min[float64](), a, id, sparse.Descriptor{}); err != nil {
		return nil, err
	}

	return out, nil
}

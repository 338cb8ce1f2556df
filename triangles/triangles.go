// SPDX-License-Identifier: MIT
// Package: triangles
//
// Purpose:
//   - Triangle counting in an undirected simple graph given as a symmetric
//     boolean adjacency matrix, three ways: per vertex, Cohen, Sandia.
//
// Contract:
//   - Self-loops are stripped before counting.
//   - Symmetry is only checked with WithVerifySymmetric.

package triangles

import (
	"fmt"

	"github.com/katalvlaran/grbgraph/dense"
	"github.com/katalvlaran/grbgraph/sparse"
)

const (
	opForEachVertex = "CountForEachVertex"
	opCohen         = "CountCohen"
	opSandia        = "CountSandia"
)

// prepare validates adj, applies the optional symmetry check and returns the
// loop-free typed adjacency.
func prepare(op string, adj sparse.AnyMatrix, o Options) (*sparse.Matrix[bool], error) {
	if err := sparse.CheckAdjacency(adj, sparse.Bool); err != nil {
		return nil, fmt.Errorf("triangles: %w", err)
	}
	a, err := sparse.As[bool](adj)
	if err != nil {
		return nil, fmt.Errorf("triangles: %w", err)
	}
	if o.VerifySymmetric && !sparse.MatrixEqual(a, sparse.Transpose(a)) {
		return nil, fmt.Errorf("triangles: %s: %w", op, ErrAsymmetric)
	}

	return sparse.OffDiagonal(a), nil
}

// CountForEachVertex returns, for every vertex, the number of triangles it
// belongs to.
//
// (A ⊕.⊗ A)<A>[i,j] counts the common neighbours of adjacent i and j; the
// row sum visits every triangle at i twice (once per incident edge), hence
// the final halving. Vertices with no entry get 0.
func CountForEachVertex(adj sparse.AnyMatrix, opts ...Option) ([]int64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	a, err := prepare(opForEachVertex, adj, o)
	if err != nil {
		return nil, err
	}
	n := a.Nrows()

	paths, _ := sparse.NewMatrix[int64](n, n)
	if err = sparse.MxM(paths, a, nil, sparse.PlusTimesCount(), a, a, sparse.DescS.WithWorkers(o.Workers)); err != nil {
		return nil, fmt.Errorf("triangles: %s: %w", opForEachVertex, err)
	}
	counts, _ := sparse.NewVector[int64](n)
	if err = sparse.ReduceRows(counts, nil, nil, sparse.PlusMonoid[int64](), paths, sparse.Descriptor{}); err != nil {
		return nil, fmt.Errorf("triangles: %s: %w", opForEachVertex, err)
	}
	// counts<!counts> = 0
	if err = sparse.AssignVectorScalar(counts, counts, nil, 0, sparse.DescSC); err != nil {
		return nil, fmt.Errorf("triangles: %s: %w", opForEachVertex, err)
	}
	halve := func(x int64) int64 { return x / 2 }
	if err = sparse.ApplyVector(counts, nil, sparse.Second[int64, int64](), halve, counts, sparse.Descriptor{}); err != nil {
		return nil, fmt.Errorf("triangles: %s: %w", opForEachVertex, err)
	}
	o.Logger.Debug("triangles per vertex", "vertices", n, "edges", a.Nvals(), "wedges", paths.Nvals())

	return dense.VectorToSlice(counts, 0), nil
}

// CountCohen returns the number of triangles using Cohen's algorithm:
// sum((L ⊕.⊗ U)<A>) / 2 with L, U the strict lower and upper triangles.
// Each triangle shows up once per orientation of the edge opposite its
// smallest vertex.
func CountCohen(adj sparse.AnyMatrix, opts ...Option) (int64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	a, err := prepare(opCohen, adj, o)
	if err != nil {
		return 0, err
	}
	n := a.Nrows()
	lower, upper := sparse.Tril(a, -1), sparse.Triu(a, 1)

	c, _ := sparse.NewMatrix[int64](n, n)
	if err = sparse.MxM(c, a, nil, sparse.PlusTimesCount(), lower, upper, sparse.DescS.WithWorkers(o.Workers)); err != nil {
		return 0, fmt.Errorf("triangles: %s: %w", opCohen, err)
	}
	total := sparse.ReduceMatrix(sparse.PlusMonoid[int64](), c) / 2
	o.Logger.Debug("triangles cohen", "vertices", n, "triangles", total)

	return total, nil
}

// CountSandia returns the number of triangles using Sandia's algorithm:
// sum((L ⊕.⊗ Lᵀ)<L>). Every triangle i > j > k is counted once, at (i, j).
func CountSandia(adj sparse.AnyMatrix, opts ...Option) (int64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	a, err := prepare(opSandia, adj, o)
	if err != nil {
		return 0, err
	}
	n := a.Nrows()
	lower := sparse.Tril(a, -1)

	c, _ := sparse.NewMatrix[int64](n, n)
	if err = sparse.MxM(c, lower, nil, sparse.PlusTimesCount(), lower, sparse.Transpose(lower), sparse.DescS.WithWorkers(o.Workers)); err != nil {
		return 0, fmt.Errorf("triangles: %s: %w", opSandia, err)
	}
	total := sparse.ReduceMatrix(sparse.PlusMonoid[int64](), c)
	o.Logger.Debug("triangles sandia", "vertices", n, "triangles", total)

	return total, nil
}

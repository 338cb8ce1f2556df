// SPDX-License-Identifier: MIT
// Package: loader
//
// Purpose:
//   - Turn a Graph (vertex count + edges) into a square sparse adjacency
//     matrix: boolean for BFS and triangle counting, float64 for shortest
//     paths.
//
// Contract:
//   - Edge endpoints must lie in [0, Vertices).
//   - Undirected edges are mirrored; duplicate edges keep the last weight in
//     input order.
//   - Weights must be finite.

package loader

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grbgraph/sparse"
)

// BoolAdjacency builds the boolean adjacency matrix of g.
func (g *Graph) BoolAdjacency(opts ...Option) (*sparse.Matrix[bool], error) {
	return build(g, g.options(opts), func(Edge) bool { return true })
}

// FloatAdjacency builds the float64 adjacency matrix of g. Entries are edge
// weights when the graph is weighted, 1 otherwise.
func (g *Graph) FloatAdjacency(opts ...Option) (*sparse.Matrix[float64], error) {
	o := g.options(opts)
	weight := func(Edge) float64 { return unitWeight }
	if o.Weighted {
		weight = func(e Edge) float64 { return e.Weight }
	}

	return build(g, o, weight)
}

// build validates every edge and writes value(e) at (From, To), plus
// (To, From) for undirected graphs.
func build[T sparse.Scalar](g *Graph, o Options, value func(Edge) T) (*sparse.Matrix[T], error) {
	if g == nil {
		return nil, fmt.Errorf("loader: %w", sparse.ErrNilContainer)
	}
	m, err := sparse.NewMatrix[T](g.Vertices, g.Vertices)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	for k, e := range g.Edges {
		if err = checkEdge(e, g.Vertices, o); err != nil {
			return nil, fmt.Errorf("loader: edge %d (%d->%d): %w", k, e.From, e.To, err)
		}
		x := value(e)
		_ = m.SetElement(e.From, e.To, x) // endpoints checked above
		if !o.Directed {
			_ = m.SetElement(e.To, e.From, x)
		}
	}

	return m, nil
}

func checkEdge(e Edge, n int, o Options) error {
	if err := sparse.CheckIndexInRange(e.From, n); err != nil {
		return err
	}
	if err := sparse.CheckIndexInRange(e.To, n); err != nil {
		return err
	}
	if e.From == e.To && !o.Loops {
		return ErrLoopNotAllowed
	}
	if o.Weighted && (math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0)) {
		return ErrInvalidWeight
	}

	return nil
}

package bfs

import (
	"fmt"

	"github.com/katalvlaran/grbgraph/dense"
	"github.com/katalvlaran/grbgraph/sparse"
)

// MultiSourceBFS runs one BFS per start vertex at once and returns, per
// start, the BFS parent of every vertex: SourceParent (-1) for the start
// itself and NoParent (-2) for vertices that start never reaches. Rows are
// returned in the order of starts.
//
// Each start owns one row of a (len(starts) × n) int64 frontier matrix.
// Every round:
//  1. newly discovered frontier entries are committed into the parent matrix;
//  2. each frontier entry is rewritten to its own column index;
//  3. the frontier advances through adj under MIN_FIRST, masked by the
//     complement of the parent matrix.
//
// MIN_FIRST reduces competing predecessors by minimum, so when several
// frontier vertices reach the same vertex in one round the smallest index
// becomes its parent.
//
// Every start is range-checked before any work begins.
func MultiSourceBFS(adj sparse.AnyMatrix, starts []int, opts ...Option) ([]dense.KeyedRow[int64], error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = sparse.CheckAdjacency(adj, sparse.Bool); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	n := adj.Nrows()
	if err = sparse.CheckIndicesInRange(starts, n); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	a, err := sparse.As[bool](adj)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	k := len(starts)
	frontier, _ := sparse.NewMatrix[int64](k, n)
	parents, _ := sparse.NewMatrix[int64](k, n)
	for r, s := range starts {
		_ = frontier.SetElement(r, s, SourceParent)
	}

	var (
		minFirst  = sparse.MinFirst[int64, bool]()
		overwrite = sparse.Second[int64, int64]()
		advance   = sparse.DescRSC.WithWorkers(o.Workers)
	)
	for depth := 0; frontier.Nvals() > 0; depth++ {
		// parents<frontier> = frontier (only fills absent slots)
		if err = sparse.AssignMatrix(parents, frontier, nil, frontier, sparse.DescS); err != nil {
			return nil, fmt.Errorf("bfs: commit level %d: %w", depth, err)
		}
		o.Logger.Debug("multi-source bfs level", "depth", depth, "frontier", frontier.Nvals(), "resolved", parents.Nvals())
		if err = o.OnLevel(depth, frontier.Nvals()); err != nil {
			return nil, fmt.Errorf("bfs: OnLevel error at depth %d: %w", depth, err)
		}
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			break
		}
		// frontier[r, j] = j
		if err = sparse.ApplyIndexMatrix(frontier, nil, overwrite, sparse.ColumnIndex[int64], frontier, sparse.Descriptor{}); err != nil {
			return nil, fmt.Errorf("bfs: index level %d: %w", depth, err)
		}
		// frontier<!parents, replace> = frontier MIN.FIRST adj
		if err = sparse.MxM(frontier, parents, nil, minFirst, frontier, a, advance); err != nil {
			return nil, fmt.Errorf("bfs: advance from level %d: %w", depth, err)
		}
	}

	return dense.MatrixToKeyedRows(parents, starts, NoParent)
}

// Package bfs computes breadth-first distances and parent trees by iterated
// masked products over a boolean adjacency matrix.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/grbgraph/dense"
	"github.com/katalvlaran/grbgraph/sparse"
)

// BFS returns the hop distance from start to every vertex of the graph whose
// boolean adjacency matrix is adj; unreached vertices get Unvisited (-1).
//
// The frontier is a boolean vector and the distance vector doubles as the
// visited set: at level i, i is written into every frontier slot still
// absent from dist, then the frontier advances through adj under OR_AND,
// masked by the complement of dist so finished vertices drop out.
//
// Errors: sparse.ErrNonSquare, sparse.ErrDomainMismatch, sparse.ErrIndexOutOfRange,
// ErrOptionViolation, or an error returned by the OnLevel hook.
func BFS(adj sparse.AnyMatrix, start int, opts ...Option) ([]int64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = sparse.CheckAdjacency(adj, sparse.Bool); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	n := adj.Nrows()
	if err = sparse.CheckIndexInRange(start, n); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	a, err := sparse.As[bool](adj)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	frontier, _ := sparse.NewVector[bool](n)
	_ = frontier.SetElement(start, true) // start validated above
	dist, _ := sparse.NewVector[int64](n)

	for depth := 0; frontier.Nvals() > 0; depth++ {
		// Record the level; slots already holding a distance are kept.
		if err = sparse.AssignVectorScalar(dist, frontier, nil, int64(depth), sparse.DescS); err != nil {
			return nil, fmt.Errorf("bfs: level %d: %w", depth, err)
		}
		o.Logger.Debug("bfs level", "depth", depth, "frontier", frontier.Nvals(), "visited", dist.Nvals())
		if err = o.OnLevel(depth, frontier.Nvals()); err != nil {
			return nil, fmt.Errorf("bfs: OnLevel error at depth %d: %w", depth, err)
		}
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			break
		}
		// frontier<!dist, replace> = frontier OR.AND adj
		if err = sparse.VxM(frontier, dist, nil, sparse.OrAnd(), frontier, a, sparse.DescRSC); err != nil {
			return nil, fmt.Errorf("bfs: advance from level %d: %w", depth, err)
		}
	}

	return dense.VectorToSlice(dist, Unvisited), nil
}

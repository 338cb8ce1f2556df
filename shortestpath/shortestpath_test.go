package shortestpath_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grbgraph/loader"
	"github.com/katalvlaran/grbgraph/shortestpath"
	"github.com/katalvlaran/grbgraph/sparse"
)

var inf = math.Inf(1)

type wedge struct {
	u, v int
	w    float64
}

func weighted(t testing.TB, n int, edges []wedge) *sparse.Matrix[float64] {
	t.Helper()
	a, err := sparse.NewMatrix[float64](n, n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, a.SetElement(e.u, e.v, e.w))
	}

	return a
}

// clrs is the classic 5-vertex digraph with negative edges and no negative cycle.
func clrs(t testing.TB) *sparse.Matrix[float64] {
	return weighted(t, 5, []wedge{
		{0, 1, 3}, {0, 2, 8}, {0, 4, -4},
		{1, 3, 1}, {1, 4, 7},
		{2, 1, 4},
		{3, 0, 2}, {3, 2, -5},
		{4, 3, 6},
	})
}

var clrsDist = [][]float64{
	{0, 1, -3, 2, -4},
	{3, 0, -4, 1, -1},
	{7, 4, 0, 5, 3},
	{2, -1, -5, 0, -2},
	{8, 5, 1, 6, 0},
}

// randomWeighted builds a reproducible digraph with small integer weights,
// so sums are exact in float64 regardless of evaluation order.
func randomWeighted(t testing.TB, n int, p float64, seed int64) *sparse.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var edges []wedge
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < p {
				edges = append(edges, wedge{i, j, float64(rng.Intn(20) + 1)})
			}
		}
	}

	return weighted(t, n, edges)
}

func TestShortestPath_ValidationErrors(t *testing.T) {
	boolAdj, _ := sparse.NewMatrix[bool](2, 2)
	_, err := shortestpath.SingleSourceBellmanFord(boolAdj, 0)
	require.ErrorIs(t, err, sparse.ErrDomainMismatch)
	_, err = shortestpath.AllPairsFloydWarshall(boolAdj)
	require.ErrorIs(t, err, sparse.ErrDomainMismatch)

	wide, _ := sparse.NewMatrix[float64](2, 3)
	_, err = shortestpath.MultiSourceBellmanFord(wide, []int{0})
	require.ErrorIs(t, err, sparse.ErrNonSquare)
	_, err = shortestpath.AllPairsFloydWarshall(wide)
	require.ErrorIs(t, err, sparse.ErrNonSquare)

	sq, _ := sparse.NewMatrix[float64](2, 2)
	_, err = shortestpath.SingleSourceBellmanFord(sq, 2)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
	_, err = shortestpath.MultiSourceBellmanFord(sq, []int{0, -1})
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)

	_, err = shortestpath.AllPairsFloydWarshall(sq, shortestpath.WithWorkers(-1))
	require.ErrorIs(t, err, shortestpath.ErrOptionViolation)
}

func TestShortestPath_RangeCheckedBeforeNegativeCycle(t *testing.T) {
	// A negative cycle must not hide an invalid start.
	adj := weighted(t, 2, []wedge{{0, 1, -5}, {1, 0, 1}})
	_, err := shortestpath.MultiSourceBellmanFord(adj, []int{0, 7})
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
	require.NotErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	adj := weighted(t, 2, []wedge{{0, 1, -5}, {1, 0, 1}})
	_, err := shortestpath.SingleSourceBellmanFord(adj, 0)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)

	_, err = shortestpath.AllPairsFloydWarshall(adj)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestBellmanFord_NegativeSelfLoop(t *testing.T) {
	adj := weighted(t, 2, []wedge{{0, 1, 2}, {1, 1, -1}})
	_, err := shortestpath.SingleSourceBellmanFord(adj, 0)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	_, err = shortestpath.AllPairsFloydWarshall(adj)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableNegativeCycleIgnored(t *testing.T) {
	// Cycle 2↔3 is negative but 0 cannot reach it.
	adj := weighted(t, 4, []wedge{{0, 1, 4}, {2, 3, -3}, {3, 2, 1}})
	got, err := shortestpath.SingleSourceBellmanFord(adj, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 4, inf, inf}, got)

	_, err = shortestpath.AllPairsFloydWarshall(adj)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestBellmanFord_CLRS(t *testing.T) {
	adj := clrs(t)
	starts := []int{4, 0, 2}
	rows, err := shortestpath.MultiSourceBellmanFord(adj, starts)
	require.NoError(t, err)
	require.Len(t, rows, len(starts))
	for r, s := range starts {
		require.Equal(t, s, rows[r].Key)
		require.Equal(t, clrsDist[s], rows[r].Values)
	}

	single, err := shortestpath.SingleSourceBellmanFord(adj, 3)
	require.NoError(t, err)
	require.Equal(t, clrsDist[3], single)
}

func TestFloydWarshall_CLRS(t *testing.T) {
	rows, err := shortestpath.AllPairsFloydWarshall(clrs(t))
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, r := range rows {
		require.Equal(t, i, r.Key)
		require.Equal(t, clrsDist[i], r.Values)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	adj := weighted(t, 3, []wedge{{0, 1, 2.5}})
	got, err := shortestpath.SingleSourceBellmanFord(adj, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2.5, inf}, got)

	rows, err := shortestpath.AllPairsFloydWarshall(adj)
	require.NoError(t, err)
	require.Equal(t, []float64{inf, 0, inf}, rows[1].Values)
	require.Equal(t, []float64{inf, inf, 0}, rows[2].Values)
}

func TestShortestPath_Empty(t *testing.T) {
	adj, _ := sparse.NewMatrix[float64](0, 0)
	rows, err := shortestpath.MultiSourceBellmanFord(adj, nil)
	require.NoError(t, err)
	require.Empty(t, rows)

	rows, err = shortestpath.AllPairsFloydWarshall(adj)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestShortestPath_NonFiniteWeights(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		adj := weighted(t, 3, []wedge{{0, 1, 2}, {1, 2, w}})

		_, err := shortestpath.SingleSourceBellmanFord(adj, 0)
		require.ErrorIs(t, err, shortestpath.ErrInvalidWeight, "weight %g", w)
		require.NotErrorIs(t, err, shortestpath.ErrNegativeCycle)

		_, err = shortestpath.AllPairsFloydWarshall(adj)
		require.ErrorIs(t, err, shortestpath.ErrInvalidWeight, "weight %g", w)
	}
}

func TestShortestPath_PositiveSelfLoopIgnored(t *testing.T) {
	adj := weighted(t, 2, []wedge{{0, 0, 3}, {0, 1, 1}})
	got, err := shortestpath.SingleSourceBellmanFord(adj, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, got)
}

func TestShortestPath_FloydWarshallAgreesWithBellmanFord(t *testing.T) {
	const n = 60
	adj := randomWeighted(t, n, 0.06, 42)
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	bf, err := shortestpath.MultiSourceBellmanFord(adj, all)
	require.NoError(t, err)
	fw, err := shortestpath.AllPairsFloydWarshall(adj)
	require.NoError(t, err)
	require.Equal(t, bf, fw)
	for i := range all {
		require.Equal(t, 0.0, bf[i].Values[i])
	}
}

func TestShortestPath_WorkersMatchSequential(t *testing.T) {
	const n = 180
	adj := randomWeighted(t, n, 0.03, 9)
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	seq, err := shortestpath.MultiSourceBellmanFord(adj, all, shortestpath.WithWorkers(1))
	require.NoError(t, err)
	par, err := shortestpath.MultiSourceBellmanFord(adj, all, shortestpath.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, seq, par)
}

func TestShortestPath_InputUntouched(t *testing.T) {
	adj := clrs(t)
	before := adj.Dup()

	r1, err := shortestpath.AllPairsFloydWarshall(adj)
	require.NoError(t, err)
	r2, err := shortestpath.AllPairsFloydWarshall(adj)
	require.NoError(t, err)
	require.Equal(t, r1, r2)

	_, err = shortestpath.SingleSourceBellmanFord(adj, 0)
	require.NoError(t, err)
	require.True(t, sparse.MatrixEqual(before, adj))
}

func TestShortestPath_DirectedCycle(t *testing.T) {
	const n = 7
	g, err := loader.Generate(loader.Cycle(n), loader.WithDirectedEdges(), loader.WithIntWeights(2, 2))
	require.NoError(t, err)
	adj, err := g.FloatAdjacency()
	require.NoError(t, err)

	rows, err := shortestpath.AllPairsFloydWarshall(adj)
	require.NoError(t, err)
	for i, r := range rows {
		for j, d := range r.Values {
			require.Equal(t, float64(2*((j-i+n)%n)), d, "dist(%d,%d)", i, j)
		}
	}
}

package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grbgraph/sparse"
)

// vec builds an int64 vector from an index→value map.
func vec(t *testing.T, size int, entries map[int]int64) *sparse.Vector[int64] {
	t.Helper()
	v, err := sparse.NewVector[int64](size)
	require.NoError(t, err)
	for i, x := range entries {
		require.NoError(t, v.SetElement(i, x))
	}

	return v
}

// bmask builds a boolean mask vector.
func bmask(size int, idx []int, vals []bool) *sparse.Vector[bool] {
	m, _ := sparse.VectorFromEntries(size, idx, vals)
	return m
}

// entries flattens a vector back into a map for comparison.
func entries(v *sparse.Vector[int64]) map[int]int64 {
	out := map[int]int64{}
	for i, x := range v.Entries() {
		out[i] = x
	}

	return out
}

func TestAssignVector_OutputRule(t *testing.T) {
	var noMask *sparse.Vector[bool]
	tests := []struct {
		name  string
		mask  sparse.VectorMask
		accum sparse.BinaryOp[int64, int64, int64]
		desc  sparse.Descriptor
		want  map[int]int64
	}{
		{
			name: "no mask, first write wins",
			mask: nil,
			want: map[int]int64{0: 10, 1: 11, 2: 2, 3: 3},
		},
		{
			name: "typed nil mask selects all",
			mask: noMask,
			want: map[int]int64{0: 10, 1: 11, 2: 2, 3: 3},
		},
		{
			name:  "accumulate with plus",
			accum: sparse.Plus[int64](),
			want:  map[int]int64{0: 10, 1: 13, 2: 2, 3: 3},
		},
		{
			name:  "overwrite with second",
			accum: sparse.Second[int64, int64](),
			want:  map[int]int64{0: 10, 1: 2, 2: 2, 3: 3},
		},
		{
			name: "structural mask {1,2}",
			mask: bmask(5, []int{1, 2}, []bool{false, true}),
			desc: sparse.DescS,
			want: map[int]int64{0: 10, 1: 11, 2: 2},
		},
		{
			name:  "value mask drops false entry",
			mask:  bmask(5, []int{1, 2}, []bool{false, true}),
			accum: sparse.Second[int64, int64](),
			want:  map[int]int64{0: 10, 1: 11, 2: 2},
		},
		{
			name: "replace clears unselected",
			mask: bmask(5, []int{1, 2}, []bool{true, true}),
			desc: sparse.DescR,
			want: map[int]int64{1: 11, 2: 2},
		},
		{
			name: "complemented structural mask",
			mask: bmask(5, []int{1, 2}, []bool{true, true}),
			desc: sparse.DescSC,
			want: map[int]int64{0: 10, 1: 11, 3: 3},
		},
		{
			name: "complement with replace",
			mask: bmask(5, []int{0, 1}, []bool{true, true}),
			desc: sparse.DescRSC,
			want: map[int]int64{2: 2, 3: 3},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := vec(t, 5, map[int]int64{0: 10, 1: 11})
			u := vec(t, 5, map[int]int64{1: 2, 2: 2, 3: 3})
			require.NoError(t, sparse.AssignVector(w, tc.mask, tc.accum, u, tc.desc))
			require.Equal(t, tc.want, entries(w))
		})
	}
}

func TestAssignVector_Errors(t *testing.T) {
	w := vec(t, 3, nil)
	require.ErrorIs(t, sparse.AssignVector(w, nil, nil, vec(t, 4, nil), sparse.Descriptor{}), sparse.ErrDimensionMismatch)
	mask, _ := sparse.NewVector[bool](2)
	require.ErrorIs(t, sparse.AssignVector(w, mask, nil, vec(t, 3, nil), sparse.DescS), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, sparse.AssignVector(nil, nil, nil, w, sparse.Descriptor{}), sparse.ErrNilContainer)
}

func TestAssignVectorScalar(t *testing.T) {
	w := vec(t, 4, map[int]int64{0: 1})
	mask, _ := sparse.VectorFromEntries(4, []int{0, 2}, []bool{true, true})
	require.NoError(t, sparse.AssignVectorScalar(w, mask, nil, 9, sparse.DescS))
	require.Equal(t, map[int]int64{0: 1, 2: 9}, entries(w))

	// Fill the holes: w<!w> = 0.
	require.NoError(t, sparse.AssignVectorScalar(w, w, nil, 0, sparse.DescSC))
	require.Equal(t, map[int]int64{0: 1, 1: 0, 2: 9, 3: 0}, entries(w))
}

func TestAssignMatrix_AndScalar(t *testing.T) {
	c, _ := sparse.MatrixFromTriples(2, 3, []int{0}, []int{0}, []int64{5})
	a, _ := sparse.MatrixFromTriples(2, 3, []int{0, 0, 1}, []int{0, 1, 2}, []int64{1, 2, 3})
	require.NoError(t, sparse.AssignMatrix(c, a, nil, a, sparse.DescS))
	rows, cols, vals := c.Triples()
	require.Equal(t, []int{0, 0, 1}, rows)
	require.Equal(t, []int{0, 1, 2}, cols)
	require.Equal(t, []int64{5, 2, 3}, vals)

	s, _ := sparse.NewMatrix[int64](2, 2)
	require.NoError(t, sparse.AssignMatrixScalar(s, nil, nil, 7, sparse.Descriptor{}))
	require.Equal(t, 4, s.Nvals())
	mask, _ := sparse.MatrixFromTriples(2, 2, []int{1}, []int{0}, []bool{true})
	require.NoError(t, sparse.AssignMatrixScalar(s, mask, sparse.Plus[int64](), 1, sparse.DescR.WithWorkers(2)))
	_, rcols, rvals := s.Triples()
	require.Equal(t, []int{0}, rcols)
	require.Equal(t, []int64{8}, rvals)

	wrong, _ := sparse.NewMatrix[int64](3, 3)
	require.ErrorIs(t, sparse.AssignMatrix(c, nil, nil, wrong, sparse.Descriptor{}), sparse.ErrDimensionMismatch)
}

func TestEWiseAdd(t *testing.T) {
	u := vec(t, 4, map[int]int64{0: 1, 1: 5})
	v := vec(t, 4, map[int]int64{1: 3, 3: 2})
	w := vec(t, 4, nil)
	require.NoError(t, sparse.EWiseAddVector(w, nil, nil, sparse.Min[int64](), u, v, sparse.Descriptor{}))
	require.Equal(t, map[int]int64{0: 1, 1: 3, 3: 2}, entries(w))

	a, _ := sparse.MatrixFromTriples(2, 2, []int{0, 1}, []int{1, 1}, []float64{-1, 4})
	id, err := sparse.Identity(2, 0.0)
	require.NoError(t, err)
	c, _ := sparse.NewMatrix[float64](2, 2)
	require.NoError(t, sparse.EWiseAddMatrix(c, nil, nil, sparse.Min[float64](), a, id, sparse.Descriptor{}))
	want, _ := sparse.MatrixFromTriples(2, 2, []int{0, 0, 1}, []int{0, 1, 1}, []float64{0, -1, 0})
	require.True(t, sparse.MatrixEqual(want, c), "got %v", c)

	require.ErrorIs(t, sparse.EWiseAddVector(w, nil, nil, sparse.Min[int64](), u, vec(t, 3, nil), sparse.Descriptor{}), sparse.ErrDimensionMismatch)
}

func TestVxM_OrAnd(t *testing.T) {
	a, _ := sparse.MatrixFromTriples(4, 4, []int{0, 0, 1, 2}, []int{1, 2, 3, 3}, []bool{true, true, true, true})
	u, _ := sparse.VectorFromEntries(4, []int{0}, []bool{true})
	w, _ := sparse.NewVector[bool](4)
	require.NoError(t, sparse.VxM(w, nil, nil, sparse.OrAnd(), u, a, sparse.Descriptor{}))
	require.Equal(t, []int{1, 2}, w.Indices())

	// Mask out vertex 2.
	visited, _ := sparse.VectorFromEntries(4, []int{2}, []int64{0})
	w2, _ := sparse.NewVector[bool](4)
	require.NoError(t, sparse.VxM(w2, visited, nil, sparse.OrAnd(), u, a, sparse.DescRSC))
	require.Equal(t, []int{1}, w2.Indices())

	bad, _ := sparse.NewVector[bool](3)
	require.ErrorIs(t, sparse.VxM(w, nil, nil, sparse.OrAnd(), bad, a, sparse.Descriptor{}), sparse.ErrDimensionMismatch)
}

func TestMxM_MinFirstPicksSmallestPredecessor(t *testing.T) {
	// 0→2 and 1→2; frontier entries carry their own index, so the
	// smaller predecessor 0 wins.
	a, _ := sparse.MatrixFromTriples(3, 3, []int{0, 1}, []int{2, 2}, []bool{true, true})
	f, _ := sparse.MatrixFromTriples(1, 3, []int{0, 0}, []int{1, 0}, []int64{1, 0})
	c, _ := sparse.NewMatrix[int64](1, 3)
	require.NoError(t, sparse.MxM(c, nil, nil, sparse.MinFirst[int64, bool](), f, a, sparse.Descriptor{}))
	x, ok := c.Element(0, 2)
	require.True(t, ok)
	require.Equal(t, int64(0), x)
}

// denseProduct is the textbook triple loop over present entries.
func denseProduct(a, b *sparse.Matrix[int64]) map[[2]int]int64 {
	out := map[[2]int]int64{}
	for i := 0; i < a.Nrows(); i++ {
		for k, x := range a.Row(i) {
			for j, y := range b.Row(k) {
				out[[2]int{i, j}] += x * y
			}
		}
	}

	return out
}

func randomInt64(t *testing.T, r, c int, p float64, rng *rand.Rand) *sparse.Matrix[int64] {
	t.Helper()
	m, err := sparse.NewMatrix[int64](r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < p {
				require.NoError(t, m.SetElement(i, j, int64(rng.Intn(9)-4)))
			}
		}
	}

	return m
}

func TestMxM_PlusTimesMatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := randomInt64(t, 30, 20, 0.2, rng)
	b := randomInt64(t, 20, 25, 0.2, rng)
	c, _ := sparse.NewMatrix[int64](30, 25)
	require.NoError(t, sparse.MxM(c, nil, nil, sparse.PlusTimes[int64](), a, b, sparse.Descriptor{}))

	want := denseProduct(a, b)
	require.Equal(t, len(want), c.Nvals())
	for pos, x := range want {
		got, ok := c.Element(pos[0], pos[1])
		require.True(t, ok)
		require.Equal(t, x, got)
	}
}

func TestMxM_ParallelIsBitIdentical(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 300
	a, _ := sparse.NewMatrix[float64](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < 0.03 {
				require.NoError(t, a.SetElement(i, j, rng.NormFloat64()))
			}
		}
	}
	seq, _ := sparse.NewMatrix[float64](n, n)
	par, _ := sparse.NewMatrix[float64](n, n)
	require.NoError(t, sparse.MxM(seq, nil, nil, sparse.PlusTimes[float64](), a, a, sparse.Descriptor{}))
	require.NoError(t, sparse.MxM(par, nil, nil, sparse.PlusTimes[float64](), a, a, sparse.Descriptor{}.WithWorkers(7)))
	require.True(t, sparse.MatrixEqual(seq, par))
}

func TestMxM_MaskAndAccum(t *testing.T) {
	a, _ := sparse.MatrixFromTriples(2, 2, []int{0, 0, 1}, []int{0, 1, 1}, []float64{1, 2, 3})
	c, _ := sparse.MatrixFromTriples(2, 2, []int{0, 1}, []int{1, 1}, []float64{1, 100})
	mask, _ := sparse.MatrixFromTriples(2, 2, []int{0, 1}, []int{1, 1}, []bool{true, true})
	// A·A holds (0,0)=1, (0,1)=1·2+2·3=8 and (1,1)=9; the mask keeps column 1.
	require.NoError(t, sparse.MxM(c, mask, sparse.Min[float64](), sparse.PlusTimes[float64](), a, a, sparse.DescS))
	rows, cols, vals := c.Triples()
	require.Equal(t, []int{0, 1}, rows)
	require.Equal(t, []int{1, 1}, cols)
	require.Equal(t, []float64{1, 9}, vals)

	wrong, _ := sparse.NewMatrix[float64](3, 2)
	require.ErrorIs(t, sparse.MxM(c, nil, nil, sparse.PlusTimes[float64](), wrong, a, sparse.Descriptor{}), sparse.ErrDimensionMismatch)
}

func TestStructuralHelpers(t *testing.T) {
	a, _ := sparse.MatrixFromTriples(3, 3,
		[]int{0, 0, 1, 2, 2}, []int{0, 2, 0, 1, 2}, []int64{1, 2, 3, 4, 5})

	at := sparse.Transpose(a)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x, ok := a.Element(i, j)
			y, ok2 := at.Element(j, i)
			require.Equal(t, ok, ok2)
			require.Equal(t, x, y)
		}
	}

	lower := sparse.Tril(a, -1)
	_, cols, _ := lower.Triples()
	require.Equal(t, []int{0, 1}, cols)
	upper := sparse.Triu(a, 1)
	require.Equal(t, 1, upper.Nvals())
	require.Equal(t, 3, sparse.OffDiagonal(a).Nvals())

	d, err := sparse.Diag(a)
	require.NoError(t, err)
	require.Equal(t, map[int]int64{0: 1, 2: 5}, entries(d))

	r, err := sparse.ExtractRow(a, 2)
	require.NoError(t, err)
	require.Equal(t, map[int]int64{1: 4, 2: 5}, entries(r))
	c, err := sparse.ExtractCol(a, 0)
	require.NoError(t, err)
	require.Equal(t, map[int]int64{0: 1, 1: 3}, entries(c))

	_, err = sparse.ExtractRow(a, 3)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
	_, err = sparse.ExtractCol(a, -1)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
	wide, _ := sparse.NewMatrix[int64](2, 3)
	_, err = sparse.Diag(wide)
	require.ErrorIs(t, err, sparse.ErrNonSquare)

	require.Equal(t, 1, r.AsRow().Nrows())
	require.Equal(t, 3, r.AsColumn().Nrows())
}

func TestApply(t *testing.T) {
	a, _ := sparse.MatrixFromTriples(2, 3, []int{0, 1}, []int{2, 0}, []int64{-1, -1})
	c, _ := sparse.NewMatrix[int64](2, 3)
	require.NoError(t, sparse.ApplyIndexMatrix(c, nil, nil, sparse.ColumnIndex[int64], a, sparse.Descriptor{}))
	_, _, vals := c.Triples()
	require.Equal(t, []int64{2, 0}, vals)

	require.NoError(t, sparse.ApplyIndexMatrix(c, nil, sparse.Second[int64, int64](), sparse.RowIndex[int64], a, sparse.Descriptor{}))
	_, _, vals = c.Triples()
	require.Equal(t, []int64{0, 1}, vals)

	f, _ := sparse.NewMatrix[float64](2, 3)
	require.NoError(t, sparse.ApplyMatrix(f, nil, nil, func(x int64) float64 { return float64(x) / 2 }, a, sparse.Descriptor{}))
	_, _, fv := f.Triples()
	require.Equal(t, []float64{-0.5, -0.5}, fv)

	u := vec(t, 3, map[int]int64{1: 6})
	require.NoError(t, sparse.ApplyVector(u, nil, sparse.Second[int64, int64](), func(x int64) int64 { return x / 2 }, u, sparse.Descriptor{}))
	require.Equal(t, map[int]int64{1: 3}, entries(u))
}

func TestReduce(t *testing.T) {
	empty := vec(t, 3, nil)
	require.Equal(t, int64(math.MaxInt64), sparse.ReduceVector(sparse.MinMonoid[int64](), empty))
	require.Equal(t, int64(0), sparse.ReduceVector(sparse.PlusMonoid[int64](), empty))

	f, _ := sparse.NewVector[float64](2)
	require.True(t, math.IsInf(sparse.ReduceVector(sparse.MinMonoid[float64](), f), 1))
	require.True(t, math.IsInf(sparse.ReduceVector(sparse.MaxMonoid[float64](), f), -1))

	a, _ := sparse.MatrixFromTriples(3, 3, []int{0, 0, 2}, []int{0, 1, 2}, []int64{2, 3, 4})
	require.Equal(t, int64(9), sparse.ReduceMatrix(sparse.PlusMonoid[int64](), a))
	require.Equal(t, int64(4), sparse.ReduceMatrix(sparse.MaxMonoid[int64](), a))

	w := vec(t, 3, nil)
	require.NoError(t, sparse.ReduceRows(w, nil, nil, sparse.PlusMonoid[int64](), a, sparse.Descriptor{}))
	require.Equal(t, map[int]int64{0: 5, 2: 4}, entries(w), "empty rows stay absent")

	b, _ := sparse.MatrixFromTriples(2, 2, []int{0}, []int{0}, []bool{true})
	require.True(t, sparse.ReduceMatrix(sparse.LorMonoid(), b))
	require.True(t, sparse.ReduceMatrix(sparse.LandMonoid(), b))
}

func TestEquality(t *testing.T) {
	x, y := 0.1, 0.2
	a, _ := sparse.MatrixFromTriples(2, 2, []int{0}, []int{1}, []float64{x + y})
	b, _ := sparse.MatrixFromTriples(2, 2, []int{0}, []int{1}, []float64{0.3})
	require.False(t, sparse.MatrixEqual(a, b), "equality is exact")
	require.True(t, sparse.MatrixEqual(a, a.Dup()))

	c, _ := sparse.MatrixFromTriples(2, 2, []int{0, 1}, []int{1, 0}, []float64{x + y, 0})
	require.False(t, sparse.MatrixEqual(a, c), "structure differs")
	d, _ := sparse.NewMatrix[float64](2, 3)
	require.False(t, sparse.MatrixEqual(a, d), "shape differs")

	u := vec(t, 3, map[int]int64{0: 1})
	require.True(t, sparse.VectorEqual(u, u.Dup()))
	require.False(t, sparse.VectorEqual(u, vec(t, 3, map[int]int64{0: 2})))
	require.False(t, sparse.VectorEqual(u, vec(t, 3, map[int]int64{1: 1})))
	require.False(t, sparse.VectorEqual(u, vec(t, 4, map[int]int64{0: 1})))
}

package dense

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grbgraph/sparse"
)

// ErrKeyCount is returned when the number of row keys differs from the
// number of matrix rows.
var ErrKeyCount = errors.New("dense: number of keys isn't equal to number of rows")

// KeyedRow is one materialized matrix row labelled by its key, e.g. the
// source vertex a row of distances or parents belongs to.
type KeyedRow[T sparse.Scalar] struct {
	Key    int
	Values []T
}

// VectorToSlice returns a slice of length v.Size() holding v's entries and
// fill everywhere v is absent.
func VectorToSlice[T sparse.Scalar](v *sparse.Vector[T], fill T) []T {
	out := make([]T, v.Size())
	for i := range out {
		out[i] = fill
	}
	for i, x := range v.Entries() {
		out[i] = x
	}

	return out
}

// MatrixToKeyedRows turns every row i of m into KeyedRow{keys[i], values},
// with fill in place of absent entries.
func MatrixToKeyedRows[T sparse.Scalar](m *sparse.Matrix[T], keys []int, fill T) ([]KeyedRow[T], error) {
	if len(keys) != m.Nrows() {
		return nil, fmt.Errorf("MatrixToKeyedRows: %d keys for %d rows: %w", len(keys), m.Nrows(), ErrKeyCount)
	}
	out := make([]KeyedRow[T], m.Nrows())
	for i := range out {
		vals := make([]T, m.Ncols())
		for j := range vals {
			vals[j] = fill
		}
		for j, x := range m.Row(i) {
			vals[j] = x
		}
		out[i] = KeyedRow[T]{Key: keys[i], Values: vals}
	}

	return out, nil
}

// Keys returns the keys of rows in order.
func Keys[T sparse.Scalar](rows []KeyedRow[T]) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Key
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Vector[T]: fixed-size sparse vector in bitmap form. The roaring bitmap
//     records which indices are present; vals is the dense value backing,
//     read only at present indices.
//
// Determinism:
//   - Iteration always walks the bitmap in ascending index order.

package sparse

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Vector is a sparse vector of fixed size over element domain T.
// The zero value is not usable; build vectors with NewVector.
type Vector[T Scalar] struct {
	size    int             // fixed at creation
	pattern *roaring.Bitmap // present indices
	vals    []T             // len == size; meaningful only where pattern is set
}

// NewVector returns an empty (all-absent) vector of the given size.
// Returns ErrInvalidDimensions if size is negative or too large.
func NewVector[T Scalar](size int) (*Vector[T], error) {
	if size < 0 || int64(size) > maxSize {
		return nil, fmt.Errorf("NewVector(%d): %w", size, ErrInvalidDimensions)
	}

	return &Vector[T]{size: size, pattern: roaring.New(), vals: make([]T, size)}, nil
}

// VectorFromEntries builds a vector from parallel index/value slices.
// Duplicate indices keep the last value.
func VectorFromEntries[T Scalar](size int, indices []int, values []T) (*Vector[T], error) {
	if len(indices) != len(values) {
		return nil, sparseErrorf("VectorFromEntries", ErrDimensionMismatch)
	}
	v, err := NewVector[T](size)
	if err != nil {
		return nil, err
	}
	for k, i := range indices {
		if err = v.SetElement(i, values[k]); err != nil {
			return nil, sparseErrorf("VectorFromEntries", err)
		}
	}

	return v, nil
}

// Size returns the fixed dimension of v.
func (v *Vector[T]) Size() int { return v.size }

// Nvals returns the number of present entries.
func (v *Vector[T]) Nvals() int { return int(v.pattern.GetCardinality()) }

// Domain returns the element domain tag of v.
func (v *Vector[T]) Domain() Domain { return DomainOf[T]() }

// SetElement stores x at index i, making it present.
func (v *Vector[T]) SetElement(i int, x T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("Vector.SetElement(%d) size %d: %w", i, v.size, ErrIndexOutOfRange)
	}
	v.pattern.Add(uint32(i))
	v.vals[i] = x

	return nil
}

// Element returns the value at i and whether it is present.
// Out-of-range indices report absent.
func (v *Vector[T]) Element(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.size || !v.pattern.Contains(uint32(i)) {
		return zero, false
	}

	return v.vals[i], true
}

// RemoveElement makes index i absent. Removing an absent entry is a no-op.
func (v *Vector[T]) RemoveElement(i int) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("Vector.RemoveElement(%d) size %d: %w", i, v.size, ErrIndexOutOfRange)
	}
	v.pattern.Remove(uint32(i))

	return nil
}

// Clear removes every entry; the size is unchanged.
func (v *Vector[T]) Clear() {
	v.pattern.Clear()
}

// Dup returns an independent deep copy of v.
func (v *Vector[T]) Dup() *Vector[T] {
	vals := make([]T, len(v.vals))
	copy(vals, v.vals)

	return &Vector[T]{size: v.size, pattern: v.pattern.Clone(), vals: vals}
}

// Entries yields (index, value) pairs of present entries in ascending order.
func (v *Vector[T]) Entries() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.pattern.Iterator()
		for it.HasNext() {
			i := int(it.Next())
			if !yield(i, v.vals[i]) {
				return
			}
		}
	}
}

// Indices returns the present indices in ascending order.
func (v *Vector[T]) Indices() []int {
	out := make([]int, 0, v.Nvals())
	for i := range v.Entries() {
		out = append(out, i)
	}

	return out
}

// AsRow returns a 1×Size matrix holding the entries of v.
func (v *Vector[T]) AsRow() *Matrix[T] {
	m := &Matrix[T]{nrows: 1, ncols: v.size, rows: make([]row[T], 1)}
	for j, x := range v.Entries() {
		m.rows[0].cols = append(m.rows[0].cols, j)
		m.rows[0].vals = append(m.rows[0].vals, x)
	}

	return m
}

// AsColumn returns a Size×1 matrix holding the entries of v.
func (v *Vector[T]) AsColumn() *Matrix[T] {
	m := &Matrix[T]{nrows: v.size, ncols: 1, rows: make([]row[T], v.size)}
	for i, x := range v.Entries() {
		m.rows[i] = row[T]{cols: []int{0}, vals: []T{x}}
	}

	return m
}

// String renders the present entries for debugging.
func (v *Vector[T]) String() string {
	s := fmt.Sprintf("Vector[%s](%d){", v.Domain(), v.size)
	first := true
	for i, x := range v.Entries() {
		if !first {
			s += ", "
		}
		s += fmt.Sprintf("%d:%v", i, x)
		first = false
	}

	return s + "}"
}

// has reports whether index i is present; i must be in range.
func (v *Vector[T]) has(i int) bool { return v.pattern.Contains(uint32(i)) }

// vectorMask implements VectorMask. A nil receiver means "no mask".
func (v *Vector[T]) vectorMask(structural bool) (*roaring.Bitmap, int, bool) {
	if v == nil {
		return nil, 0, false
	}
	if structural {
		return v.pattern, v.size, true
	}
	// Value mode: keep only entries holding a non-zero value.
	var zero T
	bits := roaring.New()
	for i, x := range v.Entries() {
		if x != zero {
			bits.Add(uint32(i))
		}
	}

	return bits, v.size, true
}

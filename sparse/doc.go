// Package sparse is the semiring algebra engine behind the graph algorithms
// of this module.
//
// What
//
//   - Vector[T] and Matrix[T] are sparse containers over one of three element
//     domains (bool, int64, float64). An absent entry is NOT a zero: it is
//     "no value", and every operation preserves that distinction.
//   - Semiring[Z,X,Y] bundles an additive Monoid (the reduction ⊕ with its
//     identity) and a multiplicative BinaryOp (the combine ⊗). It is a plain
//     value passed into each product, so the semiring in use is visible at
//     every call site.
//   - Every mutating operation writes through the same output rule:
//     mask (optionally complemented) selects the positions that may change,
//     an accumulator merges old and new values, and Replace clears
//     everything the mask does not select.
//
// Output rule
//
//	Let C be the output container and T the freshly computed result.
//	  1. Z = C ∪ T, where positions present in both are merged by accum.
//	     A nil accum keeps the C value ("first write wins").
//	  2. For every position p selected by the mask: C[p] = Z[p].
//	  3. For every position not selected: C[p] is kept, or deleted when
//	     Descriptor.Replace is set.
//
//	A nil mask selects every position. With Descriptor.Structure the mask is
//	read structurally (presence only); otherwise an entry must also hold a
//	non-zero value to select its position. Descriptor.Complement inverts the
//	selection.
//
// Operations
//
//	EWiseAddMatrix / EWiseAddVector   union with op on the intersection
//	AssignVector / AssignMatrix       masked copy
//	AssignVectorScalar / ...Matrix... masked scalar broadcast
//	VxM / MxM                         semiring products
//	ApplyVector / ApplyMatrix /
//	ApplyIndexMatrix                  structure-preserving transforms
//	ExtractRow / ExtractCol / Transpose / Diag / Identity /
//	Select / Tril / Triu / OffDiagonal structural helpers
//	ReduceVector / ReduceMatrix / ReduceRows
//	VectorEqual / MatrixEqual         exact structural + value equality
//	CheckAdjacency / CheckIndexInRange / As  validation gate for algorithms
//
// Concurrency
//
//	MxM spreads output rows over Descriptor.Workers goroutines. Each row is
//	owned by exactly one goroutine and reduced in ascending column order, so
//	results are bit-identical to a sequential run. Containers themselves are
//	not safe for concurrent mutation.
//
// Errors
//
//	ErrDimensionMismatch, ErrDomainMismatch, ErrIndexOutOfRange, ErrNonSquare,
//	ErrInvalidDimensions, ErrNilContainer. Match with errors.Is.
package sparse

// Package triangles counts triangles of an undirected graph given as a
// symmetric boolean adjacency matrix, using masked matrix products under a
// counting PLUS_TIMES semiring (bool × bool → int64).
//
//   - CountForEachVertex: triangles each vertex belongs to.
//   - CountCohen:         total via (L·U) masked by A, halved.
//   - CountSandia:        total via (L·Lᵀ) masked by L.
//
// CountCohen and CountSandia agree on every symmetric graph, and the
// per-vertex counts sum to three times that total (each triangle has three
// corners).
//
// Self-loops are ignored. Symmetry is assumed and not verified unless
// WithVerifySymmetric is passed; on an asymmetric input without it the
// result is unspecified.
//
// Errors: sparse.ErrNonSquare, sparse.ErrDomainMismatch (adjacency not
// boolean), ErrAsymmetric, ErrOptionViolation.
package triangles

// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Operator vocabulary: BinaryOp, Monoid, Semiring as plain values.
//   - Predefined operators and the semirings the graph algorithms use:
//     OR_AND (reachability), MIN_FIRST (parent selection), MIN_PLUS
//     (shortest paths), PLUS_TIMES (counting).
//
// Contract:
//   - A Monoid's Op must be associative and commutative; Identity must be
//     neutral so that reducing an empty input yields Identity.

package sparse

// BinaryOp combines x (left operand, domain X) and y (right operand, domain Y)
// into a value of domain Z.
type BinaryOp[Z, X, Y Scalar] func(x X, y Y) Z

// Monoid is an associative, commutative BinaryOp with its identity.
type Monoid[T Scalar] struct {
	Op       BinaryOp[T, T, T]
	Identity T
}

// Semiring pairs the additive monoid (⊕, reduces partial products) with the
// multiplicative operator (⊗, combines one left and one right entry).
type Semiring[Z, X, Y Scalar] struct {
	Add      Monoid[Z]
	Multiply BinaryOp[Z, X, Y]
}

// ---------- Binary operators ----------

// First returns the left operand.
func First[X, Y Scalar]() BinaryOp[X, X, Y] {
	return func(x X, _ Y) X { return x }
}

// Second returns the right operand.
func Second[X, Y Scalar]() BinaryOp[Y, X, Y] {
	return func(_ X, y Y) Y { return y }
}

// Min returns the smaller operand.
func Min[T Number]() BinaryOp[T, T, T] {
	return func(x, y T) T {
		if y < x {
			return y
		}
		return x
	}
}

// Max returns the larger operand.
func Max[T Number]() BinaryOp[T, T, T] {
	return func(x, y T) T {
		if y > x {
			return y
		}
		return x
	}
}

// Plus returns x + y.
func Plus[T Number]() BinaryOp[T, T, T] {
	return func(x, y T) T { return x + y }
}

// Times returns x * y.
func Times[T Number]() BinaryOp[T, T, T] {
	return func(x, y T) T { return x * y }
}

// Lor returns x || y.
func Lor() BinaryOp[bool, bool, bool] {
	return func(x, y bool) bool { return x || y }
}

// Land returns x && y.
func Land() BinaryOp[bool, bool, bool] {
	return func(x, y bool) bool { return x && y }
}

// ---------- Monoids ----------

// PlusMonoid is (+, 0).
func PlusMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Op: Plus[T](), Identity: 0}
}

// MinMonoid is (min, +Inf or MaxInt64).
func MinMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Op: Min[T](), Identity: maxOf[T]()}
}

// MaxMonoid is (max, -Inf or MinInt64).
func MaxMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Op: Max[T](), Identity: minOf[T]()}
}

// LorMonoid is (||, false).
func LorMonoid() Monoid[bool] {
	return Monoid[bool]{Op: Lor(), Identity: false}
}

// LandMonoid is (&&, true).
func LandMonoid() Monoid[bool] {
	return Monoid[bool]{Op: Land(), Identity: true}
}

// ---------- Semirings ----------

// OrAnd is the boolean reachability semiring: r[j] = OR_i (u[i] AND A[i,j]).
func OrAnd() Semiring[bool, bool, bool] {
	return Semiring[bool, bool, bool]{Add: LorMonoid(), Multiply: Land()}
}

// MinFirst keeps the left operand and reduces by minimum. With left values
// set to vertex indices it selects the smallest contributing vertex.
func MinFirst[T Number, Y Scalar]() Semiring[T, T, Y] {
	return Semiring[T, T, Y]{Add: MinMonoid[T](), Multiply: First[T, Y]()}
}

// MinPlus is the tropical shortest-path semiring: r[j] = min_i (u[i] + A[i,j]).
func MinPlus[T Number]() Semiring[T, T, T] {
	return Semiring[T, T, T]{Add: MinMonoid[T](), Multiply: Plus[T]()}
}

// PlusTimes is the ordinary arithmetic semiring.
func PlusTimes[T Number]() Semiring[T, T, T] {
	return Semiring[T, T, T]{Add: PlusMonoid[T](), Multiply: Times[T]()}
}

// PlusTimesCount is PLUS_TIMES over boolean operands cast to 0/1, producing
// int64 counts. Over a boolean adjacency it counts length-2 paths.
func PlusTimesCount() Semiring[int64, bool, bool] {
	return Semiring[int64, bool, bool]{
		Add: PlusMonoid[int64](),
		Multiply: func(x, y bool) int64 {
			if x && y {
				return 1
			}
			return 0
		},
	}
}

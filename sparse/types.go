// SPDX-License-Identifier: MIT

// Package sparse: element domains and the runtime domain tag.
package sparse

import (
	"math"
)

// Scalar is the closed set of element domains a container may hold.
type Scalar interface {
	bool | int64 | float64
}

// Number is the numeric subset of Scalar; arithmetic operators require it.
type Number interface {
	int64 | float64
}

// Domain is the runtime tag of a container's element type. Algorithms that
// receive an untyped AnyMatrix compare it against the domain they require.
type Domain int

const (
	// DomainUnknown is the zero value and never describes a real container.
	DomainUnknown Domain = iota
	// Bool marks boolean containers (unweighted adjacency, frontiers).
	Bool
	// Int64 marks signed 64-bit integer containers (distances, parents, counts).
	Int64
	// Float64 marks 64-bit floating-point containers (weighted adjacency).
	Float64
)

// String implements fmt.Stringer.
func (d Domain) String() string {
	switch d {
	case Bool:
		return "BOOL"
	case Int64:
		return "INT64"
	case Float64:
		return "FP64"
	default:
		return "UNKNOWN"
	}
}

// DomainOf returns the Domain tag for the type parameter T.
func DomainOf[T Scalar]() Domain {
	var z T
	switch any(z).(type) {
	case bool:
		return Bool
	case int64:
		return Int64
	case float64:
		return Float64
	default:
		return DomainUnknown
	}
}

// maxOf returns the largest representable value of T (+Inf for float64).
// It is the identity of the MIN monoid.
func maxOf[T Number]() T {
	var z T
	switch any(z).(type) {
	case float64:
		return any(math.Inf(1)).(T)
	default:
		return any(int64(math.MaxInt64)).(T)
	}
}

// minOf returns the smallest representable value of T (-Inf for float64).
// It is the identity of the MAX monoid.
func minOf[T Number]() T {
	var z T
	switch any(z).(type) {
	case float64:
		return any(math.Inf(-1)).(T)
	default:
		return any(int64(math.MinInt64)).(T)
	}
}

// maxSize is the largest container dimension; structure is indexed by uint32.
const maxSize int64 = math.MaxUint32

// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
)

// Sentinel errors for graph loading.
var (
	// ErrLoopNotAllowed is returned for a self-loop edge without WithLoops.
	ErrLoopNotAllowed = errors.New("loader: self-loop not allowed")

	// ErrInvalidWeight is returned when an edge weight is NaN or infinite.
	ErrInvalidWeight = errors.New("loader: invalid edge weight")

	// ErrSyntax is returned for a malformed edge-list line or YAML document.
	ErrSyntax = errors.New("loader: syntax error")
)

// Defaults mirror an undirected, unweighted, loop-free simple graph.
const (
	DefaultDirected = false
	DefaultWeighted = false
	DefaultLoops    = false

	// unitWeight is the float64 entry written for every edge of an
	// unweighted graph.
	unitWeight = 1.0
)

// Edge is one edge between vertex indices From and To. Weight is only
// meaningful for weighted graphs.
type Edge struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Graph is a vertex count plus an edge list, as read from a file. The
// Directed, Weighted and Loops fields seed the build options; options passed
// to BoolAdjacency/FloatAdjacency override them.
type Graph struct {
	Vertices int    `yaml:"vertices"`
	Directed bool   `yaml:"directed"`
	Weighted bool   `yaml:"weighted"`
	Loops    bool   `yaml:"loops"`
	Edges    []Edge `yaml:"edges"`
}

// Option configures adjacency construction.
type Option func(*Options)

// Options controls how an edge list becomes an adjacency matrix.
type Options struct {
	// Directed keeps edge orientation; otherwise every edge is mirrored.
	Directed bool
	// Weighted exports edge weights; otherwise every edge weighs 1.
	Weighted bool
	// Loops admits self-loop edges; otherwise they fail with ErrLoopNotAllowed.
	Loops bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Directed: DefaultDirected,
		Weighted: DefaultWeighted,
		Loops:    DefaultLoops,
	}
}

// WithDirected sets edge orientation handling.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithWeighted exports edge weights into float64 adjacency matrices.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithLoops admits self-loop edges.
func WithLoops() Option {
	return func(o *Options) { o.Loops = true }
}

// options returns the graph's own flags followed by opts. A nil graph
// starts from the defaults; build rejects it afterwards.
func (g *Graph) options(opts []Option) Options {
	o := DefaultOptions()
	if g != nil {
		o.Directed, o.Weighted, o.Loops = g.Directed, g.Weighted, g.Loops
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

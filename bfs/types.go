// Package bfs provides tunable options and error definitions
// for algebraic breadth-first search over a boolean adjacency matrix.
package bfs

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Sentinel errors for BFS execution. Shape, domain and start-range failures
// are reported with the sparse package sentinels (sparse.ErrNonSquare,
// sparse.ErrDomainMismatch, sparse.ErrIndexOutOfRange).
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Fill values used when materializing results.
const (
	// Unvisited is the distance reported for vertices BFS never reached.
	Unvisited int64 = -1
	// SourceParent is the parent reported for a source vertex itself.
	SourceParent int64 = -1
	// NoParent is the parent reported for vertices a source never reached.
	NoParent int64 = -2
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Logger receives per-level Debug records. Never nil after DefaultOptions.
	Logger *slog.Logger

	// Workers bounds the goroutines used by matrix products (MultiSourceBFS).
	Workers int

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnLevel is called once per level with the depth and the frontier size,
	// after the level's vertices were recorded. Returning an error aborts.
	OnLevel func(depth, frontier int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - a logger that discards everything
//   - one worker (sequential kernels)
//   - no depth limit (MaxDepth == 0)
//   - a no-op OnLevel hook.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		Workers:  1,
		MaxDepth: 0,
		OnLevel:  func(int, int) error { return nil },
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of goroutines matrix products may use.
//
//	n > 0: use n workers
//	n == 0: use runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithMaxDepth stops the search after the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnLevel registers a per-level callback; returning an error from it
// stops the search.
func WithOnLevel(fn func(depth, frontier int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// gatherOptions applies opts over the defaults and reports the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

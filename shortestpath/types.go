// SPDX-License-Identifier: MIT

package shortestpath

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
)

// Sentinel errors. Shape, domain and start-range failures are reported with
// the sparse package sentinels.
var (
	// ErrNegativeCycle is returned when a negative-weight cycle makes
	// shortest distances undefined: Bellman-Ford did not reach a fixpoint
	// within V rounds, or Floyd-Warshall left a negative diagonal entry.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle detected")

	// ErrInvalidWeight is returned when an edge weight is NaN or infinite.
	ErrInvalidWeight = errors.New("shortestpath: invalid edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shortestpath: invalid option supplied")
)

// Unreachable is the distance reported for pairs with no path.
var Unreachable = math.Inf(1)

// Option configures a shortest-path run.
type Option func(*Options)

// Options holds the knobs shared by Bellman-Ford and Floyd-Warshall.
type Options struct {
	// Logger receives per-round Debug records.
	Logger *slog.Logger

	// Workers bounds the goroutines used by matrix products.
	Workers int

	err error
}

// DefaultOptions returns a discarding logger and one worker.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.DiscardHandler),
		Workers: 1,
	}
}

// WithLogger sets the structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the product parallelism: n > 0 uses n goroutines,
// 0 uses runtime.GOMAXPROCS(0), negative values are rejected.
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

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

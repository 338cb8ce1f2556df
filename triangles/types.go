// SPDX-License-Identifier: MIT

package triangles

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

var (
	// ErrAsymmetric is returned by WithVerifySymmetric when A ≠ Aᵀ.
	ErrAsymmetric = errors.New("triangles: adjacency matrix is not symmetric")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("triangles: invalid option supplied")
)

// Option configures a triangle count.
type Option func(*Options)

// Options controls logging, parallelism and input verification.
type Options struct {
	Logger  *slog.Logger
	Workers int

	// VerifySymmetric makes every counter reject an asymmetric adjacency
	// with ErrAsymmetric. Off by default: the result on an asymmetric input
	// is then unspecified.
	VerifySymmetric bool

	err error
}

// DefaultOptions returns a discarding logger, one worker, no verification.
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

// WithWorkers sets product parallelism (0 = GOMAXPROCS, negative rejected).
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

// WithVerifySymmetric enables the A == Aᵀ check before counting.
func WithVerifySymmetric() Option {
	return func(o *Options) {
		o.VerifySymmetric = true
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

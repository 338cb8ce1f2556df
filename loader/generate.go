// SPDX-License-Identifier: MIT
// Package: loader
//
// Purpose:
//   - Deterministic topology generators (complete, cycle, path, star, wheel)
//     and a seeded Erdős–Rényi style RandomSparse, all emitting a Graph that
//     feeds the same adjacency builders as files do.
//
// Contract:
//   - Vertices are numbered 0..n-1; edges are emitted in ascending (from, to)
//     order so a fixed seed always yields the same Graph.
//   - Undirected topologies emit each pair once with from < to; the
//     adjacency builders mirror them.
//   - Stochastic generators require WithSeed or WithRand unless p is 0 or 1.

package loader

import (
	"errors"
	"fmt"
	"math/rand"
)

// Generator sentinel errors.
var (
	// ErrTooFewVertices is returned when n is below a topology's minimum.
	ErrTooFewVertices = errors.New("loader: too few vertices")

	// ErrInvalidProbability is returned when an edge probability is outside [0, 1].
	ErrInvalidProbability = errors.New("loader: probability out of range")

	// ErrNeedRandSource is returned when a random topology has no RNG.
	ErrNeedRandSource = errors.New("loader: rng is required")

	// ErrOptionViolation is returned for a meaningless generator option.
	ErrOptionViolation = errors.New("loader: invalid option value")
)

const (
	minComplete     = 1
	minCycle        = 3
	minPath         = 2
	minStar         = 2
	minWheel        = 4 // rim is a cycle of n-1 >= 3 vertices
	minRandomSparse = 1
)

// Topology appends the vertices and edges of one shape to g.
type Topology func(g *Graph, cfg genConfig) error

// GenOption configures Generate.
type GenOption func(*genConfig)

type genConfig struct {
	rng      *rand.Rand
	directed bool
	loops    bool
	// weight draws an edge weight; nil means unweighted.
	weight func(*rand.Rand) float64
	err    error
}

// WithSeed uses a fresh RNG seeded with seed.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the RNG. A nil r is an option violation.
func WithRand(r *rand.Rand) GenOption {
	return func(c *genConfig) {
		if r == nil {
			c.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithDirectedEdges emits arcs in one orientation instead of undirected pairs.
func WithDirectedEdges() GenOption {
	return func(c *genConfig) { c.directed = true }
}

// WithSelfLoops lets RandomSparse draw (i, i) pairs as well.
func WithSelfLoops() GenOption {
	return func(c *genConfig) { c.loops = true }
}

// WithIntWeights marks the graph weighted and draws integer weights uniformly
// from [lo, hi]. Weights come from the configured RNG, or are all lo without one.
func WithIntWeights(lo, hi int) GenOption {
	return func(c *genConfig) {
		if lo > hi {
			c.err = fmt.Errorf("WithIntWeights(%d, %d): %w", lo, hi, ErrOptionViolation)
			return
		}
		c.weight = func(r *rand.Rand) float64 {
			if r == nil || lo == hi {
				return float64(lo)
			}
			return float64(lo + r.Intn(hi-lo+1))
		}
	}
}

// Generate builds a Graph from t under opts.
func Generate(t Topology, opts ...GenOption) (*Graph, error) {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, fmt.Errorf("loader: %w", cfg.err)
	}
	g := &Graph{Directed: cfg.directed, Weighted: cfg.weight != nil, Loops: cfg.loops}
	if err := t(g, cfg); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	return g, nil
}

// addEdge appends (u, v) with a weight drawn from cfg.
func (c genConfig) addEdge(g *Graph, u, v int) {
	w := unitWeight
	if c.weight != nil {
		w = c.weight(c.rng)
	}
	g.Edges = append(g.Edges, Edge{From: u, To: v, Weight: w})
}

// addPair emits u-v once for undirected graphs and u->v plus v->u otherwise.
func (c genConfig) addPair(g *Graph, u, v int) {
	c.addEdge(g, u, v)
	if c.directed {
		c.addEdge(g, v, u)
	}
}

func checkSize(method string, n, lo int) error {
	if n < lo {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, lo, ErrTooFewVertices)
	}

	return nil
}

// Complete builds K_n: every unordered pair (every ordered pair when directed).
func Complete(n int) Topology {
	return func(g *Graph, cfg genConfig) error {
		if err := checkSize("Complete", n, minComplete); err != nil {
			return err
		}
		g.Vertices = n
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v || (!cfg.directed && v < u) {
					continue
				}
				cfg.addEdge(g, u, v)
			}
		}

		return nil
	}
}

// Cycle builds C_n: 0-1-...-(n-1)-0. Directed cycles run in ascending order.
func Cycle(n int) Topology {
	return func(g *Graph, cfg genConfig) error {
		if err := checkSize("Cycle", n, minCycle); err != nil {
			return err
		}
		g.Vertices = n
		for u := 0; u < n-1; u++ {
			cfg.addEdge(g, u, u+1)
		}
		if cfg.directed {
			cfg.addEdge(g, n-1, 0)
		} else {
			cfg.addEdge(g, 0, n-1)
		}

		return nil
	}
}

// Path builds P_n: 0-1-...-(n-1).
func Path(n int) Topology {
	return func(g *Graph, cfg genConfig) error {
		if err := checkSize("Path", n, minPath); err != nil {
			return err
		}
		g.Vertices = n
		for u := 0; u < n-1; u++ {
			cfg.addEdge(g, u, u+1)
		}

		return nil
	}
}

// Star builds a hub at vertex 0 with leaves 1..n-1. Directed stars point
// outwards.
func Star(n int) Topology {
	return func(g *Graph, cfg genConfig) error {
		if err := checkSize("Star", n, minStar); err != nil {
			return err
		}
		g.Vertices = n
		for v := 1; v < n; v++ {
			cfg.addEdge(g, 0, v)
		}

		return nil
	}
}

// Wheel builds W_n: a cycle on 0..n-2 plus hub n-1 joined to every rim
// vertex. Directed wheels keep the rim one-way and make spokes two-way.
func Wheel(n int) Topology {
	return func(g *Graph, cfg genConfig) error {
		if err := checkSize("Wheel", n, minWheel); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("Wheel: rim: %w", err)
		}
		g.Vertices = n
		hub := n - 1
		for v := 0; v < hub; v++ {
			cfg.addPair(g, v, hub)
		}

		return nil
	}
}

// RandomSparse includes each candidate pair independently with probability p.
// Candidates are ordered pairs when directed, unordered pairs otherwise, and
// include (i, i) only with WithSelfLoops.
func RandomSparse(n int, p float64) Topology {
	return func(g *Graph, cfg genConfig) error {
		if err := checkSize("RandomSparse", n, minRandomSparse); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		g.Vertices = n
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if (u == v && !cfg.loops) || (!cfg.directed && v < u) {
					continue
				}
				if keep(cfg.rng, p) {
					cfg.addEdge(g, u, v)
				}
			}
		}

		return nil
	}
}

// keep draws one Bernoulli(p) trial; p of 0 or 1 never touches the RNG.
func keep(r *rand.Rand, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	default:
		return r.Float64() < p
	}
}

// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a graph document:
//
//	vertices: 4
//	directed: true
//	weighted: true
//	edges:
//	  - [0, 1, 2.5]             # from, to, weight
//	  - [1, 2]                  # weight defaults to 1
//	  - {from: 2, to: 3, weight: -1}
func ParseYAML(r io.Reader) (*Graph, error) {
	var g Graph
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("loader: empty YAML document: %w", ErrSyntax)
		}
		return nil, fmt.Errorf("loader: decode YAML: %w: %w", ErrSyntax, err)
	}
	if g.Vertices < 0 {
		return nil, fmt.Errorf("loader: negative vertex count %d: %w", g.Vertices, ErrSyntax)
	}

	return &g, nil
}

// edgeFields is the mapping form of an edge; a missing weight stays nil.
type edgeFields struct {
	From   int      `yaml:"from"`
	To     int      `yaml:"to"`
	Weight *float64 `yaml:"weight"`
}

// UnmarshalYAML accepts an edge as a [from, to] or [from, to, weight]
// sequence, or as a {from, to, weight} mapping.
func (e *Edge) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xs []float64
		if err := value.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 2 && len(xs) != 3 {
			return fmt.Errorf("line %d: edge needs 2 or 3 items, got %d", value.Line, len(xs))
		}
		if xs[0] != float64(int(xs[0])) || xs[1] != float64(int(xs[1])) {
			return fmt.Errorf("line %d: edge endpoints must be integers", value.Line)
		}
		*e = Edge{From: int(xs[0]), To: int(xs[1]), Weight: unitWeight}
		if len(xs) == 3 {
			e.Weight = xs[2]
		}
		return nil
	case yaml.MappingNode:
		var f edgeFields
		if err := value.Decode(&f); err != nil {
			return err
		}
		*e = Edge{From: f.From, To: f.To, Weight: unitWeight}
		if f.Weight != nil {
			e.Weight = *f.Weight
		}
		return nil
	default:
		return fmt.Errorf("line %d: edge must be a sequence or a mapping", value.Line)
	}
}

// MarshalYAML writes an edge as a flow sequence, omitting a unit weight so
// the output reads back to the same Graph.
func (e Edge) MarshalYAML() (any, error) {
	xs := []float64{float64(e.From), float64(e.To)}
	if e.Weight != unitWeight {
		xs = append(xs, e.Weight)
	}
	n := &yaml.Node{}
	if err := n.Encode(xs); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle

	return n, nil
}

// WriteYAML writes g in the document form ParseYAML reads.
func WriteYAML(w io.Writer, g *Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("loader: encode YAML: %w", err)
	}

	return enc.Close()
}

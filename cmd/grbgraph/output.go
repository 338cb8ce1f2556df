// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grbgraph/dense"
	"github.com/katalvlaran/grbgraph/sparse"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// keyedRow is the YAML shape of one result row.
type keyedRow[T sparse.Scalar] struct {
	Key    int `yaml:"key"`
	Values []T `yaml:"values,flow"`
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func joinValues[T sparse.Scalar](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, " ")
}

// writeSlice prints one value list.
func writeSlice[T sparse.Scalar](w io.Writer, format string, xs []T) error {
	if format == outputYAML {
		return writeYAML(w, &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: scalarNodes(xs)})
	}
	_, err := fmt.Fprintln(w, joinValues(xs))

	return err
}

// writeRows prints keyed rows, one "key: values" line each in text mode.
func writeRows[T sparse.Scalar](w io.Writer, format string, rows []dense.KeyedRow[T]) error {
	if format == outputYAML {
		out := make([]keyedRow[T], len(rows))
		for i, r := range rows {
			out[i] = keyedRow[T]{Key: r.Key, Values: r.Values}
		}
		return writeYAML(w, out)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d: %s\n", r.Key, joinValues(r.Values)); err != nil {
			return err
		}
	}

	return nil
}

// writeScalar prints a single number.
func writeScalar(w io.Writer, format string, name string, x int64) error {
	if format == outputYAML {
		return writeYAML(w, map[string]int64{name: x})
	}
	_, err := fmt.Fprintln(w, x)

	return err
}

func scalarNodes[T sparse.Scalar](xs []T) []*yaml.Node {
	out := make([]*yaml.Node, len(xs))
	for i, x := range xs {
		n := &yaml.Node{}
		_ = n.Encode(x) // scalars always encode
		out[i] = n
	}

	return out
}

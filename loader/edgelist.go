// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseEdgeList reads the plain edge-list format:
//
//	# comment lines and blank lines are skipped
//	4            first data line: vertex count
//	0 1          one edge per line: from to [weight]
//	1 2 -3.5
//
// Orientation and weighting are not part of the format; choose them with
// options at build time.
func ParseEdgeList(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	g := &Graph{Vertices: -1}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if g.Vertices < 0 {
			if len(fields) != 1 {
				return nil, fmt.Errorf("loader: line %d: want vertex count, got %q: %w", line, text, ErrSyntax)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("loader: line %d: bad vertex count %q: %w", line, fields[0], ErrSyntax)
			}
			g.Vertices = n
			continue
		}
		e, err := parseEdge(fields)
		if err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", line, err)
		}
		g.Edges = append(g.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read edge list: %w", err)
	}
	if g.Vertices < 0 {
		return nil, fmt.Errorf("loader: missing vertex count: %w", ErrSyntax)
	}

	return g, nil
}

func parseEdge(fields []string) (Edge, error) {
	if len(fields) != 2 && len(fields) != 3 {
		return Edge{}, fmt.Errorf("want \"from to [weight]\", got %d fields: %w", len(fields), ErrSyntax)
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return Edge{}, fmt.Errorf("from %q: %w", fields[0], ErrSyntax)
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return Edge{}, fmt.Errorf("to %q: %w", fields[1], ErrSyntax)
	}
	e := Edge{From: from, To: to, Weight: unitWeight}
	if len(fields) == 3 {
		if e.Weight, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return Edge{}, fmt.Errorf("weight %q: %w", fields[2], ErrSyntax)
		}
	}

	return e, nil
}

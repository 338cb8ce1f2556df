// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a graph from path: ".yaml" and ".yml" files are parsed as
// YAML documents, anything else as an edge list.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseEdgeList(f)
	}
}

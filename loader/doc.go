// Package loader turns graph files into sparse adjacency matrices.
//
// Two formats are read into a Graph (vertex count + edge list):
//
//   - ParseEdgeList: a vertex count line, then "from to [weight]" lines;
//     '#' starts a comment line.
//   - ParseYAML: a document with vertices, directed, weighted, loops and
//     edges keys (see ParseYAML for the edge forms).
//
// ReadFile picks the parser from the file extension.
//
// A Graph then builds the matrix the algorithms expect:
//
//	g, _ := loader.ReadFile("roads.yaml")
//	adj, _ := g.FloatAdjacency()             // shortestpath
//	reach, _ := g.BoolAdjacency()            // bfs, triangles
//
// Defaults (undirected, unweighted, no self-loops) can be changed by the
// document's own flags or by WithDirected, WithWeighted and WithLoops,
// which take precedence. Undirected edges are written in both directions.
//
// Errors: sparse.ErrIndexOutOfRange (endpoint outside [0, vertices)),
// sparse.ErrInvalidDimensions (negative vertex count), ErrLoopNotAllowed,
// ErrInvalidWeight, ErrSyntax.
package loader

package shortestpath_test

import (
	"testing"

	"github.com/katalvlaran/grbgraph/shortestpath"
)

func BenchmarkMultiSourceBellmanFord(b *testing.B) {
	const n = 200
	adj := randomWeighted(b, n, 0.02, 1)
	starts := []int{0, 10, 20, 30, 40, 50, 60, 70}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = shortestpath.MultiSourceBellmanFord(adj, starts)
	}
}

func BenchmarkAllPairsFloydWarshall(b *testing.B) {
	const n = 120
	adj := randomWeighted(b, n, 0.03, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = shortestpath.AllPairsFloydWarshall(adj)
	}
}

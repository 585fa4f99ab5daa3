package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/riskgrid/dijkstra"
)

// BenchmarkShortestCost_500 measures a full corner-to-corner search on a
// random 500×500 grid, the size of a 100×100 map tiled 5×5.
// Complexity: O(N log N), N = 250 000.
func BenchmarkShortestCost_500(b *testing.B) {
	g := randomGrid(b, rand.New(rand.NewSource(42)), 500, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestCost(g)
	}
}

// BenchmarkDijkstra_ReturnPath adds predecessor tracking to the same search.
func BenchmarkDijkstra_ReturnPath(b *testing.B) {
	g := randomGrid(b, rand.New(rand.NewSource(42)), 500, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, dijkstra.WithReturnPath())
	}
}

// BenchmarkMonotoneCost is the linear right/down baseline for comparison.
func BenchmarkMonotoneCost(b *testing.B) {
	g := randomGrid(b, rand.New(rand.NewSource(42)), 500, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.MonotoneCost(g)
	}
}

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/metrofare/builder"
	"github.com/katalvlaran/metrofare/dijkstra"
)

// BenchmarkShortestPath_Sparse measures a query across a seeded 500-station network.
func BenchmarkShortestPath_Sparse(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 20))},
		builder.Line(500),
		builder.RandomSparse(500, 0.01),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, "S0", "S499")
	}
}

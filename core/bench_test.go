// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/metrofare/core"
)

// BenchmarkAddEdge measures edge insertion into a growing star.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i%1000), int64(i))
	}
}

// BenchmarkEachNeighbor measures the copy-free neighbor scan used by dijkstra.
func BenchmarkEachNeighbor(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("Center", fmt.Sprintf("Node%d", i), int64(i))
	}
	var sum int64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.EachNeighbor("Center", func(a core.Adjacent) { sum += a.Weight })
	}
}

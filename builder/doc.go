// Package builder assembles deterministic station networks for tests,
// examples and benchmarks.
//
// Constructors (Line, LineWeights, Cycle, RandomSparse) are closures applied
// by BuildGraph (fresh graph) or Apply (existing graph):
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.RandomSparse(12, 0.25),
//	)
//
// Same options, seed and constructor order always produce the same network,
// including the insertion order of every adjacency list.
package builder

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/metrofare/builder"
	"github.com/katalvlaran/metrofare/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Line(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"S0", "S1", "S2", "S3"}, g.Stations())
	assert.Equal(t, []core.Edge{
		{From: "S0", To: "S1", Weight: builder.DefaultEdgeWeight},
		{From: "S1", To: "S2", Weight: builder.DefaultEdgeWeight},
		{From: "S2", To: "S3", Weight: builder.DefaultEdgeWeight},
	}, g.Edges())
}

func TestLineWeights_Names(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.NamesIDFn("Ameerpet", "Punjagutta", "Irrum Manzil"))},
		builder.LineWeights(5, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "Ameerpet", To: "Punjagutta", Weight: 5},
		{From: "Punjagutta", To: "Irrum Manzil", Weight: 3},
	}, g.Edges())
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
		builder.Cycle(3),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	g1, err := builder.BuildGraph(nil, opts, builder.RandomSparse(15, 0.3))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	g2, err := builder.BuildGraph(nil, opts, builder.RandomSparse(15, 0.3))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.Equal(t, 15, g1.StationCount(), "isolated stations are registered")
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount())
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"line too short", builder.Line(1), builder.ErrTooFewStations},
		{"line weights empty", builder.LineWeights(), builder.ErrTooFewStations},
		{"cycle too short", builder.Cycle(2), builder.ErrTooFewStations},
		{"sparse no stations", builder.RandomSparse(0, 0.5), builder.ErrTooFewStations},
		{"sparse bad p", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestApply_PropagatesCoreErrors(t *testing.T) {
	g := core.NewGraph(core.WithStrictWeights())
	err := builder.Apply(g,
		[]builder.BuilderOption{builder.WithWeightFn(func(_ *rand.Rand) int64 { return -1 })},
		builder.Line(2),
	)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.NamesIDFn("A")(1) })
}

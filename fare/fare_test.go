package fare_test

import (
	"testing"

	"github.com/katalvlaran/metrofare/fare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := fare.Default()
	assert.Equal(t, int64(10), p.BaseFare)
	assert.Equal(t, int64(2), p.RatePerKm)
	assert.Equal(t, p, fare.New())
}

func TestCompute_ReferenceScenarios(t *testing.T) {
	p := fare.Default()
	cases := []struct {
		distance, want int64
	}{
		{0, 10},
		{2, 14},
		{8, 26},
		{20, 50},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, p.Compute(tc.distance), "distance=%d", tc.distance)
	}
}

func TestCompute_Monotonic(t *testing.T) {
	p := fare.New(fare.WithBaseFare(3), fare.WithRatePerKm(7))
	prev := p.Compute(0)
	assert.Equal(t, int64(3), prev)
	for d := int64(1); d <= 100; d++ {
		got := p.Compute(d)
		assert.Equal(t, 3+7*d, got)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestOptions(t *testing.T) {
	free := fare.New(fare.WithBaseFare(0), fare.WithRatePerKm(0))
	assert.Zero(t, free.Compute(42))

	assert.Panics(t, func() { fare.WithBaseFare(-1) })
	assert.Panics(t, func() { fare.WithRatePerKm(-1) })
}

func TestValidate(t *testing.T) {
	require.NoError(t, fare.Default().Validate())
	assert.ErrorIs(t, fare.Policy{BaseFare: -1}.Validate(), fare.ErrNegativeFare)
	assert.ErrorIs(t, fare.Policy{RatePerKm: -2}.Validate(), fare.ErrNegativeFare)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Rs.26", fare.Format(26))
	assert.Equal(t, "Rs.10 + 2/km", fare.Default().String())
}

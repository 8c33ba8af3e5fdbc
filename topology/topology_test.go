package topology_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/metrofare/fare"
	"github.com/katalvlaran/metrofare/metro"
	"github.com/katalvlaran/metrofare/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHyderabad(t *testing.T) {
	edges := topology.Hyderabad()
	require.Len(t, edges, 9)
	assert.Equal(t, edges[3], edges[8], "duplicate Khairatabad-Lakdikapul segment")

	n, err := topology.HyderabadSpec().Build()
	require.NoError(t, err)
	assert.Len(t, n.Stations(), 9)
	assert.Len(t, n.Segments(), 9)
	assert.Equal(t, fare.Default(), n.Fare())
}

// TestLoadFile_MatchesBuiltin checks that the shipped YAML file describes the
// built-in network exactly.
func TestLoadFile_MatchesBuiltin(t *testing.T) {
	s, err := topology.LoadFile(filepath.Join("testdata", "hyderabad.yaml"))
	require.NoError(t, err)
	assert.Equal(t, topology.Hyderabad(), s.Edges)
	require.NotNil(t, s.Fare)
	assert.Equal(t, fare.Default(), *s.Fare)
}

func TestLoad_PartialFareKeepsDefaults(t *testing.T) {
	s, err := topology.LoadFile(filepath.Join("testdata", "two_lines.yaml"))
	require.NoError(t, err)
	assert.Equal(t, fare.Policy{BaseFare: 5, RatePerKm: 2}, s.FarePolicy())

	n, err := s.Build()
	require.NoError(t, err)
	r, err := n.ShortestRoute("North", "South")
	require.NoError(t, err)
	assert.Equal(t, int64(8), r.Distance)
	assert.Equal(t, int64(21), r.Fare)

	_, err = n.ShortestRoute("North", "Airport")
	assert.ErrorIs(t, err, metro.ErrNoPath)
	assert.False(t, errors.Is(err, metro.ErrStationNotFound))
}

func TestLoad_NoFareSection(t *testing.T) {
	s, err := topology.Load(strings.NewReader("edges:\n  - {from: A, to: B, distance: 1}\n"))
	require.NoError(t, err)
	assert.Nil(t, s.Fare)
	assert.Equal(t, fare.Default(), s.FarePolicy())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", topology.ErrNoEdges},
		{"no edges", "edges: []\n", topology.ErrNoEdges},
		{"empty station", "edges:\n  - {from: A, to: '', distance: 1}\n", topology.ErrEmptyStation},
		{"missing station", "edges:\n  - {from: A, distance: 1}\n", topology.ErrEmptyStation},
		{"negative distance", "edges:\n  - {from: A, to: B, distance: -4}\n", topology.ErrNegativeDistance},
		{"negative fare", "fare: {base: -1}\nedges:\n  - {from: A, to: B, distance: 1}\n", fare.ErrNegativeFare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := topology.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := topology.Load(strings.NewReader("edges:\n  - {from: A, to: B, km: 1}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := topology.LoadFile(filepath.Join("testdata", "does-not-exist.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = topology.LoadFile(filepath.Join("testdata", "negative.yaml"))
	assert.ErrorIs(t, err, topology.ErrNegativeDistance)
	assert.Contains(t, err.Error(), "negative.yaml")
	assert.Contains(t, err.Error(), "edge 1")
}

func TestBuild_OptionsOverrideDescribedFare(t *testing.T) {
	n, err := topology.HyderabadSpec().Build(metro.WithFare(fare.New(fare.WithBaseFare(0))))
	require.NoError(t, err)

	r, err := n.ShortestRoute("Ameerpet", "Irrum Manzil")
	require.NoError(t, err)
	assert.Equal(t, int64(16), r.Fare)
}

func TestBuild_InvalidSpec(t *testing.T) {
	_, err := (&topology.Spec{}).Build()
	assert.ErrorIs(t, err, topology.ErrNoEdges)
}

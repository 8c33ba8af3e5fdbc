package metro_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/metrofare/metro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_PathString(t *testing.T) {
	assert.Equal(t, "A -> B -> C", metro.Route{Stations: []string{"A", "B", "C"}}.PathString())
	assert.Equal(t, "A", metro.Route{Stations: []string{"A"}}.PathString())
	assert.Empty(t, metro.Route{}.PathString())
}

func TestRoute_Report(t *testing.T) {
	var buf bytes.Buffer
	r := metro.Route{Stations: []string{"Begumpet"}, Distance: 0, Fare: 10}
	require.NoError(t, r.Report(&buf, "Begumpet", "Begumpet"))
	assert.Equal(t, "Shortest path from Begumpet to Begumpet:\nBegumpet\nTotal distance: 0\nMinimum fare: Rs.10\n", buf.String())
}

func TestWriteNoPath(t *testing.T) {
	n := metro.New()
	require.NoError(t, n.AddEdge("A", "B", 1))
	require.NoError(t, n.AddEdge("C", "D", 1))

	cases := []struct {
		src, dst, want string
	}{
		{"A", "D", "No path exists from A to D.\n"},
		{"X", "D", "No path exists from X to D.\nStation \"X\" is not part of the network.\n"},
		{"X", "Y", "No path exists from X to Y.\nStation \"X\" is not part of the network.\nStation \"Y\" is not part of the network.\n"},
		{"X", "X", "No path exists from X to X.\nStation \"X\" is not part of the network.\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, n.WriteNoPath(&buf, tc.src, tc.dst))
		assert.Equal(t, tc.want, buf.String())
	}
}

// Package core defines the station Graph, its Adjacent and Edge types,
// and the thread-safe primitives used to build and query a transit network.
//
// This file declares Adjacent, Edge, Graph, GraphOption, the sentinel errors
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyStationID  - station ID is the empty string.
//	ErrStationNotFound - requested station does not exist.
//	ErrNegativeWeight  - negative weight rejected by a strict graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStationID indicates that a station name is the empty string.
	ErrEmptyStationID = errors.New("core: station ID is empty")

	// ErrStationNotFound indicates an operation referenced a station that
	// never appeared as an edge endpoint.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrNegativeWeight indicates a negative weight was passed to a graph
	// constructed with WithStrictWeights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Adjacent is one entry of a station's neighbor list: the station reachable
// over a single edge and the weight (distance) of that edge.
type Adjacent struct {
	// Weight is the distance of the connecting edge.
	Weight int64

	// Neighbor is the station at the far end of the edge.
	Neighbor string
}

// Edge is an undirected weighted connection as it was inserted.
type Edge struct {
	// From and To are the endpoints in insertion order. The edge is
	// traversable in both directions.
	From, To string

	// Weight is the distance between From and To.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictWeights makes AddEdge reject negative weights with
// ErrNegativeWeight. Without it negative weights are stored as given and
// shortest-path results over them are undefined.
func WithStrictWeights() GraphOption {
	return func(g *Graph) { g.strictWeights = true }
}

// WithCapacity pre-sizes the station table.
func WithCapacity(stations int) GraphOption {
	return func(g *Graph) {
		if stations > 0 {
			g.capacity = stations
		}
	}
}

// Graph is an in-memory undirected weighted multigraph of stations.
//
// Parallel edges and self-loops are always permitted. Every inserted edge
// yields one Adjacent entry per direction (one entry for a self-loop), kept
// in insertion order. mu guards all storage.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	strictWeights bool
	capacity      int

	// Storage
	adjacency map[string][]Adjacent // station → neighbors in insertion order
	edges     []Edge                // insertion-ordered edge log
}

// NewGraph creates an empty Graph with the given options.
// By default weights are not validated.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make(map[string][]Adjacent, g.capacity)

	return g
}

// StrictWeights reports whether the graph rejects negative weights.
func (g *Graph) StrictWeights() bool { return g.strictWeights }

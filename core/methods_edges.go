// File: methods_edges.go
// Role: Station and edge lifecycle: AddStation/AddEdge/HasStation/Stations/
//       Edges/StationCount/EdgeCount.
// Determinism:
//   - Stations() returns IDs sorted lexicographically ascending.
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddStation registers id as a known station with an empty neighbor list.
// Adding an existing station is a no-op.
//
// Stations normally come into existence through AddEdge; AddStation exists
// for callers that need an isolated station.
// Complexity: O(1) amortized.
func (g *Graph) AddStation(id string) error {
	if id == "" {
		return ErrEmptyStationID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureStation(id)

	return nil
}

// AddEdge records an undirected edge u—v of the given weight.
//
// Steps:
//  1. Validate IDs (and the weight sign on strict graphs).
//  2. Lock mu.
//  3. Ensure both endpoints have an adjacency entry.
//  4. Append v to u's list and u to v's list with the same weight;
//     a self-loop is appended once.
//
// Calling AddEdge twice with the same triple creates two parallel edges.
// The weight SHOULD be non-negative: shortest-path queries over negative
// weights are undefined unless WithStrictWeights was set, in which case
// ErrNegativeWeight is returned and the graph is left unchanged.
//
// Complexity: O(1) amortized.
// Concurrency: acquires mu write lock.
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if u == "" || v == "" {
		return ErrEmptyStationID
	}
	if weight < 0 && g.strictWeights {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrNegativeWeight, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureStation(u)
	g.ensureStation(v)
	g.adjacency[u] = append(g.adjacency[u], Adjacent{Weight: weight, Neighbor: v})
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], Adjacent{Weight: weight, Neighbor: u})
	}
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})

	return nil
}

// HasStation reports whether id is a known station (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasStation(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Stations returns all known station IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Stations() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Edges returns a copy of all inserted edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// StationCount returns the number of known stations.
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of inserted edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// ensureStation creates an empty neighbor list for id if missing.
// Caller must hold mu for writing.
func (g *Graph) ensureStation(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

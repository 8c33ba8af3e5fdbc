// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, EachNeighbor).
// Determinism:
//   - Neighbors() and EachNeighbor() follow insertion order.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold the mu read lock.

package core

import "sort"

// Neighbors returns a copy of the neighbor list of id in insertion order.
// Parallel edges appear once per edge; a self-loop appears once.
//
// Errors:
//   - ErrEmptyStationID: if id == "".
//   - ErrStationNotFound: if id is not a known station.
//
// Complexity: O(d), where d is the number of adjacency entries of id.
func (g *Graph) Neighbors(id string) ([]Adjacent, error) {
	if id == "" {
		return nil, ErrEmptyStationID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrStationNotFound
	}
	out := make([]Adjacent, len(adj))
	copy(out, adj)

	return out, nil
}

// EachNeighbor calls fn for every adjacency entry of id in insertion order,
// without copying the list. fn must not mutate the graph: the read lock is
// held for the duration of the call.
//
// Returns ErrEmptyStationID or ErrStationNotFound like Neighbors.
// Complexity: O(d).
func (g *Graph) EachNeighbor(id string, fn func(Adjacent)) error {
	if id == "" {
		return ErrEmptyStationID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return ErrStationNotFound
	}
	for _, a := range adj {
		fn(a)
	}

	return nil
}

// NeighborIDs returns the unique set of stations adjacent to id,
// sorted lexicographically ascending. A self-loop lists id itself.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	adj, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(adj))
	for _, a := range adj {
		seen[a.Neighbor] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

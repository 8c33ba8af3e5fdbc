// Package dijkstra finds the lowest-distance route between two stations of a
// core.Graph using Dijkstra's uniform-cost, priority-first search.
//
// Overview:
//
//   - ShortestPath(g, source, destination) returns the ordered station list and
//     total distance, or ErrNoPath.
//   - Tree(g, source) returns the full distance/predecessor tables, for callers
//     that need distances to every station.
//   - The search keeps a min-heap frontier keyed by tentative distance, skips
//     stale entries, relaxes with a strict “<” and stops early once the
//     destination is settled.
//
// Unknown stations:
//
//	A source or destination that never appeared as an edge endpoint cannot be
//	reached. ShortestPath reports it as ErrNoPath wrapping ErrStationNotFound:
//
//	    if errors.Is(err, dijkstra.ErrNoPath) { ... }          // both cases
//	    if errors.Is(err, dijkstra.ErrStationNotFound) { ... } // unknown name only
//
// Weights:
//
//	Correctness requires non-negative weights. They are not validated here;
//	with negative weights the returned route is undefined. Build the graph
//	with core.WithStrictWeights() to reject them at insertion.
//
// Tie-breaking:
//
//	Among several routes of equal distance the one returned is whichever the
//	frontier settles first. Equal-distance heap entries pop in push order and
//	neighbors are scanned in insertion order, so the choice is deterministic
//	for a fixed construction order but is not canonical (e.g. not the
//	lexicographically smallest route).
//
// Thread safety:
//
//	Each call allocates its own tables and heap. Any number of goroutines may
//	query the same graph as long as no edge is inserted concurrently.
//
// Example usage:
//
//	p, err := dijkstra.ShortestPath(g, "Ameerpet", "Irrum Manzil")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Stations, p.Distance)
package dijkstra

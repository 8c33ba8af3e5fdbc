// Package core provides the in-memory station Graph that backs a transit
// network: an undirected, weighted multigraph keyed by station name.
//
// The Graph G = (V,E) has a deliberately small surface:
//
//   - Stations are created implicitly the first time they appear as an edge
//     endpoint (AddEdge). AddStation exists for isolated stations.
//   - Every edge is undirected: AddEdge(u, v, w) makes v reachable from u and
//     u reachable from v with the same weight w.
//   - Parallel edges are kept. Inserting the same triple twice yields two
//     adjacency entries per direction; shortest-path relaxation simply picks
//     the cheaper one.
//   - Self-loops are kept as a single adjacency entry.
//   - Adjacency is stored as map[station][]Adjacent in insertion order, so
//     iteration order (and therefore shortest-path tie-breaking) is fixed for
//     a fixed construction order.
//
// Weights:
//
//	Weights SHOULD be non-negative. The graph does not validate them by
//	default and shortest paths over negative weights are undefined.
//	WithStrictWeights() turns the precondition into ErrNegativeWeight.
//
// Core Methods:
//
//	AddEdge(u, v string, weight int64) error // O(1) amortized
//	AddStation(id string) error              // O(1) amortized
//	HasStation(id string) bool               // O(1)
//	Neighbors(id string) ([]Adjacent, error) // O(d), insertion order
//	EachNeighbor(id string, fn) error        // O(d), no copy
//	NeighborIDs(id string) ([]string, error) // O(d log d), unique, sorted
//	Stations() []string                      // O(V log V), sorted
//	Edges() []Edge                           // O(E), insertion order
//	StationCount(), EdgeCount() int          // O(1)
//
// Concurrency:
//
//	A single sync.RWMutex guards storage. Queries hold the read lock, so any
//	number of goroutines may query a graph that is no longer being mutated.
//
// Errors:
//
//	ErrEmptyStationID  – zero-length station ID
//	ErrStationNotFound – unknown station
//	ErrNegativeWeight  – negative weight on a strict graph
package core

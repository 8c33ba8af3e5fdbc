// Package metrofare finds the cheapest way across a metro network and tells
// you what the ticket costs.
//
// What is in the box?
//
//	A small, thread-safe routing stack for transit networks:
//		• Stations & segments: undirected weighted multigraph with R/W locks
//		• Shortest routes: Dijkstra with a lazy-deletion min-heap
//		• Fares: BaseFare + RatePerKm × distance, configurable per network
//		• Reachability: BFS walks and connected components
//		• Networks as data: built-in Hyderabad fragment, YAML network files
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       - Graph, Adjacent, Edge & thread-safe primitives
//	dijkstra/   - single-source shortest path, predecessor tree
//	fare/       - fare Policy and currency formatting
//	bfs/        - breadth-first walk, hop counts, components
//	builder/    - deterministic network generators for tests & benchmarks
//	metro/      - Network: routing + pricing + LRU route cache
//	topology/   - Hyderabad network, YAML loader
//	cmd/metrofare - command-line front end
//
// Quick ASCII example (distances in km):
//
//	Ameerpet ──5── Punjagutta ──3── Irrum Manzil
//
//	Ameerpet → Irrum Manzil: 8 km, Rs.26 with the default policy (10 + 2/km).
//
//	go install github.com/katalvlaran/metrofare/cmd/metrofare@latest
package metrofare

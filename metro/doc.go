// Package metro answers "how do I get from A to B, and what does it cost"
// for a transit network.
//
// A Network owns a core.Graph of stations, the fare.Policy of the operator
// and, optionally, a bounded LRU cache of answered queries. ShortestRoute
// runs Dijkstra (package dijkstra) and prices the result:
//
//	fare = BaseFare + RatePerKm × Distance
//
// Lifecycle:
//
//  1. New(opts...) creates an empty network.
//  2. AddEdge registers both endpoints and an undirected segment.
//  3. ShortestRoute, Reachable and Components query it.
//
// Adding a segment purges the route cache. Queries may run concurrently with
// each other but not with AddEdge when a cache is configured.
//
// Errors:
//
//	ErrNoPath          - no route; returned for unknown stations as well.
//	ErrStationNotFound - additionally wrapped when a station is unknown.
package metro

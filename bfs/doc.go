// Package bfs walks a core.Graph breadth-first, counting hops (segments)
// rather than distance.
//
// BFS(g, start) returns a Result with the order stations were reached, their
// hop counts and the parent links of the walk; PathTo rebuilds a fewest-stops
// route from them. WithTarget ends the walk early once a given station has
// been reached, which is all a reachability check needs.
//
// Components(g) groups every station into connected components. A network
// with more than one component has stations no route can connect.
//
// Complexity: O(V + E log E) time for the sorted neighbor lists, O(V) memory.
//
// Errors:
//
//	ErrGraphNil             - nil graph.
//	ErrStartStationNotFound - start station absent.
//	ErrNotReached           - PathTo on a station the walk did not reach.
package bfs

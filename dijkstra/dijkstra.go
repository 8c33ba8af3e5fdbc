// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// station graph with non-negative edge weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each station is settled at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Distances live in a map; a station missing from it has infinite distance,
//     so no sentinel is ever added to an edge weight.
//   - “Lazy” decrease-key: improved distances are pushed as new heap entries and
//     stale entries are skipped when popped.
//   - Equal distances pop in push order (seq), which fixes tie-breaking for a
//     fixed construction order. Which of several equal-cost paths is returned
//     is otherwise implementation-defined.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/metrofare/core"
)

// ShortestPath returns the minimum-distance route from source to destination.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and destination must be non-empty (ErrEmptyStation).
//  3. both must be known stations (ErrNoPath wrapping ErrStationNotFound).
//
// source == destination yields a single-station path of distance 0.
// If the destination is never reached ErrNoPath is returned. A route longer
// than MaxDistance (math.MaxInt64 by default) counts as unreachable.
//
// Edge weights must be non-negative; with negative weights the result is
// undefined (but the call still terminates and never panics).
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	if source == "" || destination == "" {
		return Path{}, ErrEmptyStation
	}
	for _, id := range [2]string{source, destination} {
		if !g.HasStation(id) {
			return Path{}, fmt.Errorf("%w: %w: %q", ErrNoPath, ErrStationNotFound, id)
		}
	}

	r, err := run(g, source, destination, opts)
	if err != nil {
		return Path{}, err
	}

	stations, ok := r.PathTo(destination)
	if !ok {
		return Path{}, fmt.Errorf("%w from %q to %q", ErrNoPath, source, destination)
	}

	return Path{Stations: stations, Distance: r.Dist[destination]}, nil
}

// Tree computes distances and predecessors from source to every reachable
// station. The destination early exit does not apply.
func Tree(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptyStation
	}
	if !g.HasStation(source) {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, source)
	}

	return run(g, source, "", opts)
}

// Result holds the distance and predecessor tables of one search.
// Stations absent from Dist are unreachable (infinite distance).
type Result struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
}

// DistanceTo returns the distance to id and whether it is finite.
func (r *Result) DistanceTo(id string) (int64, bool) {
	d, ok := r.Dist[id]

	return d, ok
}

// PathTo walks predecessor links back from id to the source and returns the
// route in source→id order. ok is false when id was never reached.
func (r *Result) PathTo(id string) ([]string, bool) {
	if _, ok := r.Dist[id]; !ok {
		return nil, false
	}

	// Predecessors always point at a station settled earlier, so the walk
	// reaches the source in at most len(Prev) steps.
	path := []string{id}
	for cur := id; cur != r.Source; {
		prev, ok := r.Prev[cur]
		if !ok {
			return nil, false
		}
		cur = prev
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// run applies options and executes the search.
func run(g *core.Graph, source, destination string, opts []Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if destination == "" {
		cfg.EarlyExit = false
	}

	V := g.StationCount()
	r := &runner{
		g:           g,
		options:     cfg,
		destination: destination,
		res: &Result{
			Source: source,
			Dist:   make(map[string]int64, V),
			Prev:   make(map[string]string, V),
		},
		settled: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g           *core.Graph
	options     Options
	destination string
	res         *Result
	settled     map[string]bool // stations whose distance is final
	pq          nodePQ
	seq         uint64 // push counter for FIFO tie-breaking
}

// init sets dist[source]=0 and seeds the heap with (0, source).
func (r *runner) init() {
	r.res.Dist[r.res.Source] = 0
	heap.Init(&r.pq)
	r.push(r.res.Source, 0)
}

// process repeatedly settles the closest station and relaxes its edges until
// the heap is empty, the cap is exceeded or the destination is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry: a shorter distance was already settled.
		if r.settled[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[u] = true

		if r.options.EarlyExit && u == r.destination {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unsettled neighbor of u.
func (r *runner) relax(u string) error {
	du := r.res.Dist[u]
	err := r.g.EachNeighbor(u, func(a core.Adjacent) {
		v := a.Neighbor
		if r.settled[v] {
			return
		}
		// du+w > MaxDistance, written so the sum cannot overflow.
		if a.Weight > 0 && du > r.options.MaxDistance-a.Weight {
			return
		}
		nd := du + a.Weight
		if old, seen := r.res.Dist[v]; seen && nd >= old {
			return
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		r.push(v, nd)
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	return nil
}

func (r *runner) push(id string, dist int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// nodeItem is a heap entry: a station and a tentative distance.
type nodeItem struct {
	id   string
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/metrofare/core"
)

// BFS walks g outward from start, one hop count at a time, ignoring segment
// distances. Neighbors are taken in sorted order, so Order is reproducible.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasStation(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartStationNotFound, start)
	}
	var cfg walkConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.StationCount()
	res := &Result{
		Start:  start,
		Order:  make([]string, 0, n),
		Hops:   make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	res.Order = append(res.Order, start)
	res.Hops[start] = 0
	if start == cfg.target {
		return res, nil
	}

	// Order doubles as the queue: head indexes the next station to expand.
	for head := 0; head < len(res.Order); head++ {
		cur := res.Order[head]
		next, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", cur, err)
		}
		for _, id := range next {
			if res.Reached(id) {
				continue
			}
			res.Order = append(res.Order, id)
			res.Hops[id] = res.Hops[cur] + 1
			res.Parent[id] = cur
			if id == cfg.target {
				return res, nil
			}
		}
	}

	return res, nil
}

// Components partitions the stations of g into connected components.
// Stations inside a component are sorted, and components are ordered by
// their smallest station.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.StationCount())
	var out [][]string
	// Stations() is sorted, so each component is discovered from its
	// smallest member and the outer order follows.
	for _, id := range g.Stations() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, s := range comp {
			seen[s] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for breadth-first walks.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartStationNotFound is returned when the start station is absent.
	ErrStartStationNotFound = errors.New("bfs: start station not found")

	// ErrNotReached is returned by PathTo for a station outside the walk.
	ErrNotReached = errors.New("bfs: station not reached")
)

// Option configures a walk.
type Option func(*walkConfig)

type walkConfig struct {
	target string // stop once this station is reached; "" walks everything
}

// WithTarget ends the walk as soon as id has been reached. Stations at the
// same hop count as id may be left unvisited. Panics on an empty id.
func WithTarget(id string) Option {
	if id == "" {
		panic("bfs: WithTarget(\"\")")
	}

	return func(c *walkConfig) { c.target = id }
}

// Result is the outcome of a walk from one start station.
type Result struct {
	// Start is the station the walk began at.
	Start string

	// Order lists stations in the order they were reached.
	Order []string

	// Hops maps each reached station to its segment count from Start.
	Hops map[string]int

	// Parent maps each reached station other than Start to the station it
	// was first reached from.
	Parent map[string]string
}

// Reached reports whether the walk got to id.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]

	return ok
}

// PathTo returns a fewest-stops route from Start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}

	path := make([]string, r.Hops[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

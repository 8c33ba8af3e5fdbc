package metro

import (
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/katalvlaran/metrofare/bfs"
	"github.com/katalvlaran/metrofare/core"
	"github.com/katalvlaran/metrofare/dijkstra"
	"github.com/katalvlaran/metrofare/fare"
)

// Errors returned by ShortestRoute. Both alias the dijkstra sentinels so
// errors.Is works against either package.
var (
	ErrNoPath          = dijkstra.ErrNoPath
	ErrStationNotFound = dijkstra.ErrStationNotFound
)

type routeKey struct {
	source, destination string
}

type cachedRoute struct {
	route Route
	err   error
}

// Network is a priced transit network.
type Network struct {
	graph  *core.Graph
	policy fare.Policy
	cache  *lru.Cache[routeKey, cachedRoute] // nil when disabled
	log    *slog.Logger
}

// New returns an empty Network configured by opts.
func New(opts ...Option) *Network {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := &Network{
		graph:  core.NewGraph(cfg.graphOpts...),
		policy: cfg.policy,
		log:    cfg.logger,
	}
	if cfg.cacheSize > 0 {
		// lru.New only fails for a non-positive size, which WithRouteCache rejects.
		n.cache, _ = lru.New[routeKey, cachedRoute](cfg.cacheSize)
	}

	return n
}

// AddEdge adds an undirected segment of the given distance between u and v,
// registering both stations. Parallel segments are kept.
func (n *Network) AddEdge(u, v string, distance int64) error {
	if err := n.graph.AddEdge(u, v, distance); err != nil {
		return fmt.Errorf("metro: AddEdge(%q, %q): %w", u, v, err)
	}
	if n.cache != nil {
		n.cache.Purge()
	}
	n.log.Debug("segment added", "from", u, "to", v, "distance", distance)

	return nil
}

// ShortestRoute returns the minimum-distance route from source to
// destination together with its fare.
//
// An unknown or empty station name yields ErrNoPath wrapping
// ErrStationNotFound; an unreachable destination yields ErrNoPath alone.
func (n *Network) ShortestRoute(source, destination string) (Route, error) {
	key := routeKey{source: source, destination: destination}
	if n.cache != nil {
		if c, ok := n.cache.Get(key); ok {
			n.log.Debug("route query", "source", source, "destination", destination, "cache", "hit")

			return c.route.clone(), c.err
		}
	}

	r, err := n.query(source, destination)
	n.log.Debug("route query", "source", source, "destination", destination,
		"distance", r.Distance, "error", err)
	if n.cache != nil && (err == nil || errors.Is(err, ErrNoPath)) {
		n.cache.Add(key, cachedRoute{route: r.clone(), err: err})
	}

	return r, err
}

func (n *Network) query(source, destination string) (Route, error) {
	for _, id := range [2]string{source, destination} {
		if !n.graph.HasStation(id) {
			return Route{}, fmt.Errorf("%w: %w: %q", ErrNoPath, ErrStationNotFound, id)
		}
	}

	p, err := dijkstra.ShortestPath(n.graph, source, destination)
	if err != nil {
		return Route{}, err
	}

	return Route{
		Stations: p.Stations,
		Distance: p.Distance,
		Fare:     n.policy.Compute(p.Distance),
	}, nil
}

// Reachable reports whether some route connects a and b.
func (n *Network) Reachable(a, b string) bool {
	if !n.graph.HasStation(a) || !n.graph.HasStation(b) {
		return false
	}

	res, err := bfs.BFS(n.graph, a, bfs.WithTarget(b))

	return err == nil && res.Reached(b)
}

// Components groups the stations into connected components, each sorted,
// ordered by their first station.
func (n *Network) Components() ([][]string, error) {
	return bfs.Components(n.graph)
}

// HasStation reports whether id is an endpoint of some segment.
func (n *Network) HasStation(id string) bool { return n.graph.HasStation(id) }

// Stations returns all station names, sorted.
func (n *Network) Stations() []string { return n.graph.Stations() }

// Segments returns the segments in insertion order.
func (n *Network) Segments() []core.Edge { return n.graph.Edges() }

// Fare returns the fare policy.
func (n *Network) Fare() fare.Policy { return n.policy }

// Graph exposes the underlying station graph for read-only algorithms.
func (n *Network) Graph() *core.Graph { return n.graph }

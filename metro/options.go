package metro

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/metrofare/core"
	"github.com/katalvlaran/metrofare/fare"
)

// Option configures a Network at construction.
type Option func(*config)

type config struct {
	graphOpts []core.GraphOption
	policy    fare.Policy
	cacheSize int
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		policy: fare.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithFare sets the fare policy. Panics if p fails Validate.
func WithFare(p fare.Policy) Option {
	if err := p.Validate(); err != nil {
		panic(err.Error())
	}

	return func(c *config) { c.policy = p }
}

// WithRouteCache keeps up to size answered queries in an LRU cache.
// Panics if size is not positive.
func WithRouteCache(size int) Option {
	if size <= 0 {
		panic(fmt.Sprintf("metro: route cache size must be positive, got %d", size))
	}

	return func(c *config) { c.cacheSize = size }
}

// WithLogger routes debug events (queries, cache hits) to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrictWeights rejects negative segment distances in AddEdge.
func WithStrictWeights() Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, core.WithStrictWeights()) }
}

// WithCapacity pre-sizes the station table.
func WithCapacity(stations int) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, core.WithCapacity(stations)) }
}

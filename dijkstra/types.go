// Package dijkstra defines core types and configuration options
// for the station shortest-path search.
//
// Options:
//
//	– WithMaxDistance:  optional cap on explored distances; stations beyond it count as unreachable.
//	– WithoutEarlyExit: keep searching after the destination is settled.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptyStation    if source or destination is the empty string.
//	– ErrStationNotFound if source or destination is not in the graph.
//	– ErrNoPath          if the destination cannot be reached (also wraps ErrStationNotFound).
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyStation indicates an empty source or destination name.
	ErrEmptyStation = errors.New("dijkstra: station ID is empty")

	// ErrStationNotFound indicates that the source or destination never
	// appeared as an edge endpoint. It is always returned together with
	// ErrNoPath, so errors.Is(err, ErrNoPath) holds for unknown stations too.
	ErrStationNotFound = errors.New("dijkstra: station not found in graph")

	// ErrNoPath indicates that the destination was never assigned a finite
	// distance from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Path is a shortest route between two stations.
type Path struct {
	// Stations lists the route from source to destination inclusive.
	Stations []string

	// Distance is the sum of the edge weights along Stations.
	Distance int64
}

// Options configures the behavior of the search.
//
// MaxDistance – stations whose distance would exceed this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// EarlyExit   – stop as soon as the destination is settled. Default true.
type Options struct {
	MaxDistance int64
	EarlyExit   bool
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithoutEarlyExit disables stopping at the destination. The result is the
// same; only the amount of work differs.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// DefaultOptions returns the defaults: no distance cap, early exit on.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		EarlyExit:   true,
	}
}

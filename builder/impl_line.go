// SPDX-License-Identifier: MIT
// Package: metrofare/builder
//
// impl_line.go - Line(n), LineWeights(ws...) and Cycle(n) constructors.
//
// Contract:
//   - Line: n ≥ 2, Cycle: n ≥ 3 (else ErrTooFewStations).
//   - Stations are named via cfg.idFn in ascending index order (0..n-1).
//   - Edges (i-1)—i are emitted in increasing i; Cycle adds (n-1)—0 last.
//   - Weights come from cfg.weightFn, except LineWeights which uses the
//     given slice.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metrofare/core"
)

const (
	methodLine        = "Line"
	methodLineWeights = "LineWeights"
	methodCycle       = "Cycle"
	minLineStations   = 2
	minCycleStations  = 3
)

// Line returns a Constructor that builds a simple line S0—S1—…—S(n-1).
func Line(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLineStations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineStations, ErrTooFewStations)
		}

		return addLine(g, cfg, methodLine, n, func(int) int64 { return cfg.weightFn(cfg.rng) })
	}
}

// LineWeights returns a Constructor that builds a line of len(weights)+1
// stations where the i-th segment has weights[i].
func LineWeights(weights ...int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(weights) < minLineStations-1 {
			return fmt.Errorf("%s: segments=%d < min=%d: %w",
				methodLineWeights, len(weights), minLineStations-1, ErrTooFewStations)
		}

		return addLine(g, cfg, methodLineWeights, len(weights)+1, func(i int) int64 { return weights[i-1] })
	}
}

// Cycle returns a Constructor that builds a closed loop line of n stations.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleStations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleStations, ErrTooFewStations)
		}
		if err := addLine(g, cfg, methodCycle, n, func(int) int64 { return cfg.weightFn(cfg.rng) }); err != nil {
			return err
		}
		u, v := cfg.idFn(n-1), cfg.idFn(0)
		if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodCycle, u, v, err)
		}

		return nil
	}
}

// addLine emits segments (i-1)—i for i=1..n-1 with weight(i).
func addLine(g *core.Graph, cfg builderConfig, method string, n int, weight func(i int) int64) error {
	for i := 1; i < n; i++ {
		u, v := cfg.idFn(i-1), cfg.idFn(i)
		if err := g.AddEdge(u, v, weight(i)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
		}
	}

	return nil
}

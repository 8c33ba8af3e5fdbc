// SPDX-License-Identifier: MIT
// Package: metrofare/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j: each
//     segment is included independently with probability p.
//   - Every station is registered even when it ends up isolated, so that
//     disconnected fixtures keep their unreachable stations.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewStations).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).
//   - Deterministic outcomes for a fixed seed.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metrofare/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseStations = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random network over n
// stations with independent segment probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseStations {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseStations, ErrTooFewStations)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddStation(id); err != nil {
				return fmt.Errorf("%s: AddStation(%s): %w", methodRandomSparse, id, err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !include(cfg, p) {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}

// include runs one Bernoulli trial; p ∈ {0,1} needs no RNG.
func include(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}

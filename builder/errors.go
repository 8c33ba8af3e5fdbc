// SPDX-License-Identifier: MIT
// Package: metrofare/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewStations indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewStations = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

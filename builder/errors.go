// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Option constructors panic on programmer error instead of returning these.

package builder

import "errors"

// ErrTooFewVertices indicates n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a write the matrix rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadWeight indicates a WeightFn produced a weight below 1. A zero weight
// would silently erase the edge, so it is rejected.
var ErrBadWeight = errors.New("builder: weight must be positive")

// SPDX-License-Identifier: MIT
// Package: entres/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.
// Option constructors panic on meaningless input; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooMuchNoise indicates more decoys per entity than free partners exist.
var ErrTooMuchNoise = errors.New("builder: noise exceeds available partners")

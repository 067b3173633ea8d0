// SPDX-License-Identifier: MIT
// Package: entres/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a constructor by mutating builderConfig.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithScoreRange sets the [lo, hi) range of random and decoy scores.
// Panics unless lo < hi.
func WithScoreRange(lo, hi float64) Option {
	if !(lo < hi) {
		panic("builder: WithScoreRange(lo>=hi)")
	}
	return func(c *builderConfig) {
		c.scoreLo, c.scoreHi = lo, hi
	}
}

// WithMatchScoreRange sets the [lo, hi) range of planted match scores.
// Panics unless lo < hi.
func WithMatchScoreRange(lo, hi float64) Option {
	if !(lo < hi) {
		panic("builder: WithMatchScoreRange(lo>=hi)")
	}
	return func(c *builderConfig) {
		c.matchLo, c.matchHi = lo, hi
	}
}

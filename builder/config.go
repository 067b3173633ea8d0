// SPDX-License-Identifier: MIT
// Package: entres/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil          (constructors that sample require a seed)
//   • score range = [0.0, 0.6)   decoy / random candidate scores
//   • match range = [0.7, 1.0)   planted true-match scores

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng *rand.Rand

	scoreLo, scoreHi float64
	matchLo, matchHi float64
}

const (
	defaultScoreLo = 0.0
	defaultScoreHi = 0.6
	defaultMatchLo = 0.7
	defaultMatchHi = 1.0
)

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		scoreLo: defaultScoreLo,
		scoreHi: defaultScoreHi,
		matchLo: defaultMatchLo,
		matchHi: defaultMatchHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

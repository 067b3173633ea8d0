// SPDX-License-Identifier: MIT
// Package: entres/builder
//
// impl_bipartite.go - RandomBipartite(n1, n2, p) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • rng required when 0 < p < 1 (else ErrNeedRandSource).
//   • p == 1 without rng emits every cross pair at the score range midpoint.
//
// Complexity:
//   • Time: O(n1·n2) Bernoulli trials. Space: O(expected candidates).
//
// Determinism:
//   • Trial order i asc over dataset 1, inner j asc over dataset 2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/entres/candidates"
)

const (
	methodRandomBipartite = "RandomBipartite"
	minPartitionSize      = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomBipartite samples a clean-clean candidate set over n1 x n2 entities.
func RandomBipartite(n1, n2 int, p float64, opts ...Option) (*candidates.Pairs, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early.
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			methodRandomBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomBipartite, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
	}

	// 2) Sample cross pairs in stable order.
	var (
		i, j  int
		score float64
		out   = make([]candidates.Candidate, 0, int(float64(n1*n2)*p)+1)
	)
	for i = 0; i < n1; i++ {
		for j = 0; j < n2; j++ {
			if cfg.rng == nil {
				if p == probMax {
					score = (cfg.scoreLo + cfg.scoreHi) / 2
					out = append(out, candidates.Candidate{ID1: i, ID2: j, Score: score})
				}
				continue
			}
			if cfg.rng.Float64() < p {
				score = uniform(cfg.rng, cfg.scoreLo, cfg.scoreHi)
				out = append(out, candidates.Candidate{ID1: i, ID2: j, Score: score})
			}
		}
	}

	return candidates.NewCleanClean(n1, n2, out)
}

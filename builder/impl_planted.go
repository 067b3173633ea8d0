// SPDX-License-Identifier: MIT
// Package: entres/builder
//
// impl_planted.go - PlantedMatching(n, noise) constructor.
//
// Model:
//   • A random permutation π of dataset 2 fixes the true matching i ↔ π(i).
//   • Each true pair is scored in the match range.
//   • Each dataset-1 entity additionally receives `noise` distinct decoy
//     partners j ≠ π(i), scored in the score range.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ noise < n (else ErrTooMuchNoise).
//   • rng required (else ErrNeedRandSource).
//
// Complexity:
//   • Time: O(n·noise) expected. Space: O(n·(noise+1)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/entres/candidates"
)

const methodPlantedMatching = "PlantedMatching"

// Planted bundles a generated candidate set with its hidden matching.
type Planted struct {
	Set   *candidates.Pairs
	Truth []candidates.Pair // sorted by ID1
}

// PlantedMatching builds a clean-clean n x n candidate set around a hidden
// perfect matching.
func PlantedMatching(n, noise int, opts ...Option) (Planted, error) {
	cfg := newBuilderConfig(opts...)

	if n < minPartitionSize {
		return Planted{}, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodPlantedMatching, n, minPartitionSize, ErrTooFewVertices)
	}
	if noise < 0 || noise >= n {
		return Planted{}, fmt.Errorf("%s: noise=%d with n=%d: %w",
			methodPlantedMatching, noise, n, ErrTooMuchNoise)
	}
	if cfg.rng == nil {
		return Planted{}, fmt.Errorf("%s: rng is required: %w", methodPlantedMatching, ErrNeedRandSource)
	}

	perm := cfg.rng.Perm(n)
	truth := make([]candidates.Pair, n)
	out := make([]candidates.Candidate, 0, n*(noise+1))
	used := make(map[int]struct{}, noise+1)

	for i := 0; i < n; i++ {
		truth[i] = candidates.Pair{ID1: i, ID2: perm[i]}
		out = append(out, candidates.Candidate{
			ID1: i, ID2: perm[i], Score: uniform(cfg.rng, cfg.matchLo, cfg.matchHi),
		})

		// Rejection-sample distinct decoys; noise < n guarantees progress.
		clear(used)
		used[perm[i]] = struct{}{}
		for len(used) <= noise {
			j := cfg.rng.Intn(n)
			if _, dup := used[j]; dup {
				continue
			}
			used[j] = struct{}{}
			out = append(out, candidates.Candidate{
				ID1: i, ID2: j, Score: uniform(cfg.rng, cfg.scoreLo, cfg.scoreHi),
			})
		}
	}

	set, err := candidates.NewCleanClean(n, n, out)
	if err != nil {
		return Planted{}, err
	}

	return Planted{Set: set, Truth: truth}, nil
}

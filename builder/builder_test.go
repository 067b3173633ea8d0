// SPDX-License-Identifier: MIT
// Package builder_test verifies the synthetic candidate generators.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entres/builder"
	"github.com/katalvlaran/entres/candidates"
)

func TestRandomBipartite_Validation(t *testing.T) {
	_, err := builder.RandomBipartite(0, 3, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomBipartite(3, 3, 1.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomBipartite(3, 3, 0.5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomBipartite_Extremes(t *testing.T) {
	full, err := builder.RandomBipartite(3, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, full.Len())
	for c := range full.All() {
		assert.InDelta(t, 0.3, c.Score, 1e-12)
	}

	none, err := builder.RandomBipartite(3, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())
	assert.True(t, none.CleanClean())
	assert.Equal(t, 3, none.DatasetLimit())
}

func TestRandomBipartite_Deterministic(t *testing.T) {
	a, err := builder.RandomBipartite(20, 15, 0.3, builder.WithSeed(42), builder.WithScoreRange(0.2, 0.9))
	require.NoError(t, err)
	b, err := builder.RandomBipartite(20, 15, 0.3, builder.WithSeed(42), builder.WithScoreRange(0.2, 0.9))
	require.NoError(t, err)
	assert.Equal(t, a.Candidates(), b.Candidates())

	for c := range a.All() {
		assert.GreaterOrEqual(t, c.Score, 0.2)
		assert.Less(t, c.Score, 0.9)
	}
}

func TestPlantedMatching_Shape(t *testing.T) {
	const n, noise = 30, 3
	pl, err := builder.PlantedMatching(n, noise, builder.WithSeed(7))
	require.NoError(t, err)

	require.Len(t, pl.Truth, n)
	assert.Equal(t, n*(noise+1), pl.Set.Len())

	// Truth is a permutation.
	seen := make(map[int]bool, n)
	for i, p := range pl.Truth {
		assert.Equal(t, i, p.ID1)
		assert.False(t, seen[p.ID2])
		seen[p.ID2] = true
	}

	// Every true pair outranks the default decoy range; no duplicate pairs.
	truthOf := make(map[candidates.Pair]bool, n)
	for _, p := range pl.Truth {
		truthOf[p] = true
	}
	pairs := make(map[candidates.Pair]bool)
	for c := range pl.Set.All() {
		key := candidates.Pair{ID1: c.ID1, ID2: c.ID2}
		require.False(t, pairs[key], "duplicate %v", key)
		pairs[key] = true
		if truthOf[key] {
			assert.GreaterOrEqual(t, c.Score, 0.7)
		} else {
			assert.Less(t, c.Score, 0.6)
		}
	}
}

func TestPlantedMatching_Validation(t *testing.T) {
	_, err := builder.PlantedMatching(0, 0, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.PlantedMatching(3, 3, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooMuchNoise)

	_, err = builder.PlantedMatching(3, 1)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithScoreRange(1, 1) })
	assert.Panics(t, func() { builder.WithMatchScoreRange(0.9, 0.1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

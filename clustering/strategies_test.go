// SPDX-License-Identifier: MIT

package clustering_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entres/clustering"
)

// TestScenario_SingleStrongPair: one above-threshold pair, one weak pair and
// one pair below threshold. Every strategy returns the single strong pair.
func TestScenario_SingleStrongPair(t *testing.T) {
	set := cleanSet(t, 2, 2, cand(0, 0, 0.9), cand(0, 1, 0.4), cand(1, 0, 0.3))

	for _, m := range clustering.Methods() {
		t.Run(string(m), func(t *testing.T) {
			got := run(t, m, set, clustering.WithThreshold(0.5), clustering.WithMoveBudget(1000))
			assert.Equal(t, []clustering.Cluster{pair(0, 0)}, got)
		})
	}
}

// TestScenario_AllTied: 2x2, all scores 0.6, threshold 0.5.
func TestScenario_AllTied(t *testing.T) {
	set := cleanSet(t, 2, 2,
		cand(0, 0, 0.6), cand(0, 1, 0.6), cand(1, 0, 0.6), cand(1, 1, 0.6))
	opts := []clustering.Option{clustering.WithThreshold(0.5), clustering.WithMoveBudget(1000)}

	// One 2-vs-2 component, dropped by the clean-clean filter.
	assert.Empty(t, run(t, clustering.MethodConnectedComponents, set, opts...))

	// Both dataset-1 entities rank dataset-2 entity 0 first; it ranks
	// dataset-1 entity 0 first. Exactly one mutual pair.
	assert.Equal(t, []clustering.Cluster{pair(0, 0)},
		run(t, clustering.MethodReciprocalBestMatch, set, opts...))

	// Entity 0 takes partner 0, entity 1 falls through to partner 1.
	assert.Equal(t, []clustering.Cluster{pair(0, 0), pair(1, 1)},
		run(t, clustering.MethodBestMatch, set, opts...))

	// No swap strictly improves the identity assignment.
	assert.Equal(t, []clustering.Cluster{pair(0, 0), pair(1, 1)},
		run(t, clustering.MethodBestAssignment, set, opts...))

	// Equal pass costs; the column pass wins the tie.
	assert.Equal(t, []clustering.Cluster{pair(0, 0), pair(1, 1)},
		run(t, clustering.MethodRowColumn, set, opts...))

	// Man 0 is uncertain, so woman 0 leaves him for man 1; man 0 moves on
	// to woman 1.
	assert.Equal(t, []clustering.Cluster{pair(0, 1), pair(1, 0)},
		run(t, clustering.MethodKiraly, set, opts...))
}

func TestConnectedComponents_CleanCleanKeepsOnlyOneToOne(t *testing.T) {
	set := cleanSet(t, 4, 4,
		cand(0, 0, 0.9),
		cand(1, 1, 0.8), cand(2, 1, 0.7), // 2-vs-1, dropped
		cand(3, 3, 0.4), // below threshold
	)

	got := run(t, clustering.MethodConnectedComponents, set)
	assert.Equal(t, []clustering.Cluster{pair(0, 0)}, got)
}

func TestConnectedComponents_DirtyKeepsAllComponents(t *testing.T) {
	set := dirtySet(t, 6,
		cand(0, 1, 0.9), cand(1, 2, 0.8), cand(4, 3, 0.7), cand(5, 0, 0.2))

	got := run(t, clustering.MethodConnectedComponents, set)
	assert.Equal(t, []clustering.Cluster{
		{D1: []int{0, 1, 2}, D2: []int{}},
		{D1: []int{3, 4}, D2: []int{}},
	}, got)
}

func TestConnectedComponents_ThresholdIsStrict(t *testing.T) {
	set := cleanSet(t, 1, 1, cand(0, 0, 0.5))

	assert.Empty(t, run(t, clustering.MethodConnectedComponents, set))
	assert.Len(t, run(t, clustering.MethodConnectedComponents, set, clustering.WithThreshold(0.49)), 1)
}

func TestBestMatch_PreferredSide(t *testing.T) {
	set := cleanSet(t, 2, 2, cand(0, 0, 0.8), cand(0, 1, 0.9), cand(1, 1, 0.7))

	// Dataset 1 proposes: entity 1's only partner is already taken.
	assert.Equal(t, []clustering.Cluster{pair(0, 1)},
		run(t, clustering.MethodBestMatch, set))

	// Dataset 2 proposes: partner 0 claims entity 0 first.
	assert.Equal(t, []clustering.Cluster{pair(0, 0), pair(1, 1)},
		run(t, clustering.MethodBestMatch, set, clustering.WithPreferredSide(clustering.SideDataset2)))
}

func TestBestMatch_SkipsClaimedPartner(t *testing.T) {
	set := cleanSet(t, 2, 2, cand(0, 0, 0.9), cand(1, 0, 0.8), cand(1, 1, 0.7))

	got := run(t, clustering.MethodBestMatch, set, clustering.WithThreshold(0.5))
	assert.Equal(t, []clustering.Cluster{pair(0, 0), pair(1, 1)}, got)
}

func TestReciprocalBestMatch_NoCascade(t *testing.T) {
	set := cleanSet(t, 2, 2, cand(0, 0, 0.8), cand(0, 1, 0.9), cand(1, 1, 0.7))

	// Entity 1's top is partner 1, whose top is entity 0: not mutual, and
	// entity 1 does not retry with another partner.
	got := run(t, clustering.MethodReciprocalBestMatch, set)
	assert.Equal(t, []clustering.Cluster{pair(0, 1)}, got)
}

func TestReciprocalBestMatch_DuplicateCandidates(t *testing.T) {
	set := cleanSet(t, 2, 2, cand(0, 0, 0.3), cand(0, 0, 0.95), cand(1, 0, 0.9), cand(1, 1, 0.8))

	got := run(t, clustering.MethodReciprocalBestMatch, set)
	assert.Equal(t, []clustering.Cluster{pair(0, 0)}, got)
}

func TestBestAssignment_SwapImproves(t *testing.T) {
	set := cleanSet(t, 2, 2, cand(0, 1, 0.9), cand(1, 0, 0.9))

	got := run(t, clustering.MethodBestAssignment, set, clustering.WithMoveBudget(100), clustering.WithSeed(42))
	assert.Equal(t, []clustering.Cluster{pair(0, 1), pair(1, 0)}, got)
}

// TestBestAssignment_TimeLimitStopsSearch: a budget that would run for
// seconds is cut by a 1ns wall-clock limit at the first poll, before any
// swap, so the identity assignment is what gets committed.
func TestBestAssignment_TimeLimitStopsSearch(t *testing.T) {
	set := cleanSet(t, 2, 2,
		cand(0, 0, 0.6), cand(1, 1, 0.6), // identity, above threshold
		cand(0, 1, 0.9), cand(1, 0, 0.9)) // the swap the search would find

	var logs bytes.Buffer
	s, err := clustering.New(clustering.MethodBestAssignment,
		clustering.WithThreshold(0.5),
		clustering.WithMoveBudget(2_000_000_000),
		clustering.WithTimeLimit(time.Nanosecond),
		clustering.WithLogger(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	require.NoError(t, err)

	start := time.Now()
	res, err := s.Run(context.Background(), set)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	assert.Equal(t, []clustering.Cluster{pair(0, 0), pair(1, 1)}, res.Clusters)
	assert.Contains(t, logs.String(), `"stopped":"time_limit"`)
	assert.Contains(t, logs.String(), `"moves":0`)
}

func TestBestAssignment_TransposedWhenDataset1Larger(t *testing.T) {
	set := cleanSet(t, 2, 1, cand(0, 0, 0.6), cand(1, 0, 0.9))

	got := run(t, clustering.MethodBestAssignment, set, clustering.WithMoveBudget(100))
	assert.Equal(t, []clustering.Cluster{pair(1, 0)}, got)
}

func TestBestAssignment_PaddingNeverCommitted(t *testing.T) {
	set := cleanSet(t, 1, 3, cand(0, 2, 0.7))

	got := run(t, clustering.MethodBestAssignment, set, clustering.WithMoveBudget(500))
	assert.Equal(t, []clustering.Cluster{pair(0, 2)}, got)
}

func TestBestAssignment_ThresholdEqualScoreIgnored(t *testing.T) {
	set := cleanSet(t, 2, 2, cand(0, 0, 0.5), cand(1, 1, 0.5))

	assert.Empty(t, run(t, clustering.MethodBestAssignment, set, clustering.WithMoveBudget(100)))
}

func TestRowColumn_RowPassWins(t *testing.T) {
	// Row 0 carries the most weight and takes column 0 first; the row pass
	// then costs 0.4 against 0.45 for the column pass.
	set := cleanSet(t, 2, 3,
		cand(0, 0, 0.6), cand(0, 1, 0.6), cand(0, 2, 0.6), cand(1, 0, 0.95))

	got := run(t, clustering.MethodRowColumn, set)
	assert.Equal(t, []clustering.Cluster{pair(0, 0)}, got)
}

func TestRowColumn_ColumnPassWins(t *testing.T) {
	set := cleanSet(t, 3, 2,
		cand(0, 0, 0.6), cand(1, 0, 0.6), cand(2, 0, 0.6), cand(0, 1, 0.95))

	got := run(t, clustering.MethodRowColumn, set)
	assert.Equal(t, []clustering.Cluster{pair(0, 0)}, got)
}

func TestKiraly_StrictPreferences(t *testing.T) {
	set := cleanSet(t, 2, 2,
		cand(0, 0, 0.9), cand(0, 1, 0.6), cand(1, 0, 0.8), cand(1, 1, 0.7))

	got := run(t, clustering.MethodKiraly, set)
	assert.Equal(t, []clustering.Cluster{pair(0, 0), pair(1, 1)}, got)
}

func TestKiraly_OustedLadBecomesOldBachelor(t *testing.T) {
	set := cleanSet(t, 2, 1, cand(0, 0, 0.7), cand(1, 0, 0.9))

	// Dataset 2 is smaller and proposes by default; force dataset 1 so the
	// two men compete for one woman.
	got := run(t, clustering.MethodKiraly, set, clustering.WithPreferredSide(clustering.SideDataset1))
	assert.Equal(t, []clustering.Cluster{pair(1, 0)}, got)
}

func TestKiraly_BachelorWinsTie(t *testing.T) {
	set := cleanSet(t, 2, 1, cand(0, 0, 0.8), cand(1, 0, 0.8))

	// Man 1 is rejected as a lad, returns as a bachelor and wins the tie
	// against lad 0; man 0 then loses as a bachelor to a bachelor.
	got := run(t, clustering.MethodKiraly, set, clustering.WithPreferredSide(clustering.SideDataset1))
	assert.Equal(t, []clustering.Cluster{pair(1, 0)}, got)
}

func TestKiraly_SmallerSideProposes(t *testing.T) {
	set := cleanSet(t, 3, 1, cand(0, 0, 0.6), cand(1, 0, 0.9), cand(2, 0, 0.7))

	got := run(t, clustering.MethodKiraly, set)
	assert.Equal(t, []clustering.Cluster{pair(1, 0)}, got)
}

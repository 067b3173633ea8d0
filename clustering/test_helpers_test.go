// SPDX-License-Identifier: MIT

package clustering_test

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/clustering"
)

// quiet discards run logs.
var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// cand is a short Candidate literal.
func cand(id1, id2 int, score float64) candidates.Candidate {
	return candidates.Candidate{ID1: id1, ID2: id2, Score: score}
}

func cleanSet(t testing.TB, n1, n2 int, cs ...candidates.Candidate) *candidates.Pairs {
	t.Helper()
	p, err := candidates.NewCleanClean(n1, n2, cs)
	require.NoError(t, err)

	return p
}

func dirtySet(t testing.TB, n int, cs ...candidates.Candidate) *candidates.Pairs {
	t.Helper()
	p, err := candidates.NewDirty(n, cs)
	require.NoError(t, err)

	return p
}

// run builds method m with a silent logger and clusters set.
func run(t testing.TB, m clustering.Method, set candidates.CandidateSet, opts ...clustering.Option) []clustering.Cluster {
	t.Helper()
	opts = append([]clustering.Option{clustering.WithLogger(quiet)}, opts...)
	s, err := clustering.New(m, opts...)
	require.NoError(t, err)
	out, err := s.Cluster(context.Background(), set)
	require.NoError(t, err)
	require.NotNil(t, out)

	return out
}

// pair is a 1-1 cluster in local ids.
func pair(d1, d2 int) clustering.Cluster {
	return clustering.Cluster{D1: []int{d1}, D2: []int{d2}}
}

// oneToOne lists the clean-clean strategies that commit through the
// matched set.
var oneToOne = []clustering.Method{
	clustering.MethodBestMatch,
	clustering.MethodReciprocalBestMatch,
	clustering.MethodBestAssignment,
	clustering.MethodRowColumn,
	clustering.MethodKiraly,
}

// rawSet is a CandidateSet that performs no validation.
type rawSet struct {
	cleanClean bool
	n1, n2     int
	items      []candidates.Candidate
}

func (r rawSet) Len() int          { return len(r.items) }
func (r rawSet) CleanClean() bool  { return r.cleanClean }
func (r rawSet) DatasetLimit() int { return r.n1 }
func (r rawSet) EntityCount() int  { return r.n1 + r.n2 }

func (r rawSet) All() iter.Seq[candidates.Candidate] {
	return func(yield func(candidates.Candidate) bool) {
		for _, c := range r.items {
			if !yield(c) {
				return
			}
		}
	}
}

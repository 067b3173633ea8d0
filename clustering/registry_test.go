// SPDX-License-Identifier: MIT

package clustering_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entres/clustering"
)

func TestMethods_ClosedSet(t *testing.T) {
	ms := clustering.Methods()
	require.Len(t, ms, 6)
	assert.Equal(t, clustering.MethodConnectedComponents, ms[0])
	assert.Equal(t, clustering.MethodKiraly, ms[5])

	// Callers cannot mutate the registry order.
	ms[0] = "x"
	assert.Equal(t, clustering.MethodConnectedComponents, clustering.Methods()[0])
}

func TestParseMethod(t *testing.T) {
	cases := map[string]clustering.Method{
		"connected-components": clustering.MethodConnectedComponents,
		"CC":                   clustering.MethodConnectedComponents,
		"Best_Match":           clustering.MethodBestMatch,
		" exact ":              clustering.MethodReciprocalBestMatch,
		"best assignment":      clustering.MethodBestAssignment,
		"RowColumn":            clustering.MethodRowColumn,
		"KIRALY":               clustering.MethodKiraly,
		"msm":                  clustering.MethodKiraly,
	}
	for in, want := range cases {
		got, err := clustering.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := clustering.ParseMethod("louvain")
	require.ErrorIs(t, err, clustering.ErrUnknownMethod)
}

func TestNew_UnknownMethod(t *testing.T) {
	_, err := clustering.New("nope")
	require.ErrorIs(t, err, clustering.ErrUnknownMethod)
	assert.Panics(t, func() { clustering.MustNew("nope") })
}

func TestStrategy_Descriptions(t *testing.T) {
	for _, m := range clustering.Methods() {
		s := clustering.MustNew(m)
		assert.Equal(t, m, s.Method())
		assert.NotEmpty(t, s.Name())
		assert.True(t, strings.HasPrefix(s.Info(), s.Name()+": "), "%s", m)
		assert.True(t, strings.HasPrefix(s.Config(), "threshold="), "%s", m)
	}
	assert.Equal(t, "KiralyMSMApprox Clustering", clustering.MustNew(clustering.MethodKiraly).Name())
}

func TestStrategy_Config(t *testing.T) {
	assert.Equal(t, "threshold=0.5", clustering.MustNew(clustering.MethodConnectedComponents).Config())
	assert.Equal(t, "threshold=0.1", clustering.MustNew(clustering.MethodReciprocalBestMatch).Config())
	assert.Equal(t, "threshold=0.1, preferred_side=smaller", clustering.MustNew(clustering.MethodKiraly).Config())
	assert.Equal(t, "threshold=0.1, preferred_side=dataset1", clustering.MustNew(clustering.MethodBestMatch).Config())
	assert.Equal(t, "threshold=0.5, move_budget=auto, time_limit=2m0s, seed=0",
		clustering.MustNew(clustering.MethodBestAssignment).Config())
	assert.Equal(t, "threshold=0.7, move_budget=500, time_limit=1s, seed=9",
		clustering.MustNew(clustering.MethodBestAssignment,
			clustering.WithThreshold(0.7),
			clustering.WithMoveBudget(500),
			clustering.WithTimeLimit(time.Second),
			clustering.WithSeed(9),
		).Config())
}

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, 0.5, clustering.DefaultOptions(clustering.MethodRowColumn).Threshold)
	assert.Equal(t, 0.1, clustering.DefaultOptions(clustering.MethodBestMatch).Threshold)

	k := clustering.DefaultOptions(clustering.MethodKiraly)
	assert.Equal(t, 0.1, k.Threshold)
	assert.Equal(t, clustering.SideSmaller, k.PreferredSide)

	a := clustering.DefaultOptions(clustering.MethodBestAssignment)
	assert.Equal(t, clustering.DefaultTimeLimit, a.TimeLimit)
	assert.Zero(t, a.MoveBudget)
	assert.Zero(t, a.Seed)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { clustering.WithThreshold(math.NaN()) })
	assert.Panics(t, func() { clustering.WithThreshold(math.Inf(1)) })
	assert.Panics(t, func() { clustering.WithPreferredSide(clustering.Side(0)) })
	assert.Panics(t, func() { clustering.WithMoveBudget(-1) })
	assert.Panics(t, func() { clustering.WithTimeLimit(-time.Second) })
	assert.Panics(t, func() { clustering.WithLogger(nil) })
	assert.NotPanics(t, func() { clustering.WithMoveBudget(0) })
	assert.NotPanics(t, func() { clustering.WithTimeLimit(0) })
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]clustering.Side{
		"dataset1": clustering.SideDataset1,
		"D2":       clustering.SideDataset2,
		"smaller":  clustering.SideSmaller,
		" auto ":   clustering.SideSmaller,
	} {
		got, err := clustering.ParseSide(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, got.String())
	}

	_, err := clustering.ParseSide("both")
	require.ErrorIs(t, err, clustering.ErrUnknownSide)
	assert.Equal(t, "Side(7)", clustering.Side(7).String())
}

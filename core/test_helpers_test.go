// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entres/core"
)

// mustGraph builds an empty graph of n vertices or fails the test.
func mustGraph(t testing.TB, n int) *core.SimilarityGraph {
	t.Helper()
	g, err := core.NewSimilarityGraph(n)
	require.NoError(t, err)

	return g
}

// graphFromEdges inserts edges in the given order.
func graphFromEdges(t testing.TB, n int, edges [][2]int) *core.SimilarityGraph {
	t.Helper()
	g := mustGraph(t, n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for SimilarityGraph operations.
var (
	// ErrVertexOutOfRange indicates an id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrNegativeSize indicates a negative vertex count was requested.
	ErrNegativeSize = errors.New("core: negative vertex count")
)

// edgeKey identifies an undirected edge by its ordered endpoints (lo < hi).
type edgeKey struct {
	lo, hi int
}

// SimilarityGraph is an undirected graph over the fixed id space [0, n).
//
// adjacency[v] lists the neighbours of v in insertion order; edges holds
// each undirected edge once under its normalized key, which gives O(1)
// duplicate detection.
type SimilarityGraph struct {
	mu        sync.RWMutex
	n         int
	adjacency [][]int
	edges     map[edgeKey]struct{}
}

// NewSimilarityGraph allocates an empty graph over n vertices.
//
// Errors:
//   - ErrNegativeSize if n < 0.
//
// Complexity: O(n).
func NewSimilarityGraph(n int) (*SimilarityGraph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &SimilarityGraph{
		n:         n,
		adjacency: make([][]int, n),
		edges:     make(map[edgeKey]struct{}),
	}, nil
}

// normalize orders the endpoints so (a,b) and (b,a) map to the same key.
func normalize(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

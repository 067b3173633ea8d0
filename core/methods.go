// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns N, the size of the id space.
func (g *SimilarityGraph) VertexCount() int {
	return g.n
}

// EdgeCount returns the number of distinct undirected edges.
func (g *SimilarityGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AddEdge records an undirected edge between a and b.
//
// Behavior:
//   - a == b is ignored (no self-loops, no error).
//   - An existing edge is left untouched; the call is a no-op.
//
// Errors:
//   - ErrVertexOutOfRange if either id is outside [0, N).
//
// Complexity: O(1) amortized.
func (g *SimilarityGraph) AddEdge(a, b int) error {
	if err := g.checkVertex(a); err != nil {
		return err
	}
	if err := g.checkVertex(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}

	key := normalize(a, b)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[key]; ok {
		return nil
	}
	g.edges[key] = struct{}{}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)

	return nil
}

// HasEdge reports whether an undirected edge a-b exists.
// Out-of-range ids simply report false.
func (g *SimilarityGraph) HasEdge(a, b int) bool {
	if a < 0 || b < 0 || a >= g.n || b >= g.n {
		return false
	}

	g.mu.RLock()
	_, ok := g.edges[normalize(a, b)]
	g.mu.RUnlock()

	return ok
}

// Degree returns the number of distinct neighbours of v.
func (g *SimilarityGraph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}

// Neighbors returns a sorted copy of v's neighbour ids.
//
// Complexity: O(d log d) where d = Degree(v).
func (g *SimilarityGraph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])
	g.mu.RUnlock()

	sort.Ints(out)

	return out, nil
}

func (g *SimilarityGraph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.n, ErrVertexOutOfRange)
	}

	return nil
}

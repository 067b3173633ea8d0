// SPDX-License-Identifier: MIT

package core

import "sort"

// ConnectedComponents returns every connected component that contains at
// least one edge.
//
// Isolated vertices (degree 0) are skipped: an entity no strategy linked to
// anything is not part of any reported cluster.
//
// Implementation:
//   - Stage 1: scan vertices in ascending id order; start a BFS at every
//     unseen vertex with degree > 0.
//   - Stage 2: collect the BFS queue as the component and sort it.
//
// Because seeds are visited in ascending order and each component is
// sorted, components come out ordered by their smallest member and the
// result is a pure function of the edge set.
//
// Time:   O(N + E + Σ k log k).
// Memory: O(N) for visited flags plus the output.
func (g *SimilarityGraph) ConnectedComponents() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, g.n)
	comps := make([][]int, 0)

	for v0 := 0; v0 < g.n; v0++ {
		if seen[v0] || len(g.adjacency[v0]) == 0 {
			continue
		}
		// BFS; the queue doubles as the component.
		queue := []int{v0}
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, w := range g.adjacency[u] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// SPDX-License-Identifier: MIT

// Package core provides SimilarityGraph, the undirected, write-once graph
// that every clustering strategy in entres accumulates its decisions into.
//
// Vertices are dense integer entity ids in [0, N). In a clean-clean run the
// ids [0, L) belong to dataset 1 and [L, N) to dataset 2; the graph itself
// is unaware of the split and simply stores global ids.
//
// Behavior:
//
//   - AddEdge is idempotent: a parallel edge is a silent no-op.
//   - Self-loops are ignored (they never change a partition).
//   - Edges are never removed; the graph only grows during a run.
//   - Neighbors and ConnectedComponents return sorted results, so the
//     partition derived from a graph depends only on its edge set and not
//     on the order in which edges were inserted.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency. Readers (HasEdge, Degree,
//	Neighbors, ConnectedComponents) take the read lock; AddEdge takes the
//	write lock.
//
// Complexity quicksheet:
//
//   - NewSimilarityGraph: O(N)
//   - AddEdge / HasEdge: O(1) amortized
//   - Neighbors: O(d log d)
//   - ConnectedComponents: O(N + E + Σ k log k) for components of size k
package core

// SPDX-License-Identifier: MIT

// Package clustering turns scored candidate pairs into equivalence clusters
// of entity ids.
//
// Scenarios:
//
//   - Clean-clean: two duplicate-free datasets; ids [0, L) are dataset 1,
//     dataset-2 candidate ids are local and map to L+id2 in the graph.
//   - Dirty: one dataset that may hold duplicates; every id is global.
//
// Strategies (see Methods):
//
//   - ConnectedComponents: transitive closure of above-threshold pairs;
//     clean-clean output keeps only exact 1-1 components. Both scenarios.
//   - BestMatch: each entity of the preferred side takes its best
//     still-unmatched partner, in id order.
//   - ReciprocalBestMatch: only mutual top-1 pairs.
//   - BestAssignment: randomized swap heuristic for the assignment problem,
//     bounded by a move budget and a time limit.
//   - RowColumn: greedy row scan against greedy column scan, cheaper wins.
//   - Kiraly: 3/2-approximate maximum stable marriage with ties.
//
// All strategies but ConnectedComponents are clean-clean only and fail
// with ErrScenarioMismatch on a dirty set. Every one-to-one strategy
// commits through Context, which refuses and logs an edge touching an
// already matched entity.
//
// Thresholds are strict: a candidate is used only if score > threshold.
// Score ties are resolved by ascending partner id, so a run is a pure
// function of its input and options (BestAssignment: and its seed).
//
// Usage:
//
//	s, _ := clustering.New(clustering.MethodKiraly, clustering.WithThreshold(0.3))
//	clusters, err := s.Cluster(ctx, set)
package clustering

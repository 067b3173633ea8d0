// SPDX-License-Identifier: MIT

// Package builder generates synthetic, reproducible candidate sets for
// tests, examples and benchmarks of the clustering strategies.
//
// Constructors:
//
//   - RandomBipartite(n1, n2, p): every cross pair (i, j) becomes a
//     candidate independently with probability p, scored uniformly in the
//     configured score range.
//   - PlantedMatching(n, noise): a hidden one-to-one matching between two
//     datasets of n entities, scored in the match range, plus `noise` decoy
//     candidates per dataset-1 entity scored in the (lower) score range.
//     The planted pairs are returned as ground truth.
//
// Configuration is functional (Option). Stochastic constructors require a
// random source (WithSeed or WithRand) and produce identical output for a
// fixed seed: trials run in a stable i-asc, j-asc order.
package builder

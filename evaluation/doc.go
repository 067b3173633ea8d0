// SPDX-License-Identifier: MIT

// Package evaluation scores clustering output and candidate sets against a
// ground truth of known duplicate pairs.
//
// Two levels are measured:
//
//   - Clusters (EvaluateClusters): every pair inside a cluster counts as a
//     declared match. Precision is detected/declared, recall is
//     detected/existing, FMeasure their harmonic mean.
//   - Candidates (EvaluateCandidates): every candidate counts as a
//     comparison. PC (pair completeness) is detected/existing, PQ (pair
//     quality) is detected/comparisons.
//
// A true pair is detected at most once however many times it appears.
// In dirty ground truths a pair and its reverse are the same duplicate.
// Ratios with a zero denominator are reported as 0.
package evaluation

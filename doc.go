// SPDX-License-Identifier: MIT

// Package entres turns scored candidate pairs into entity-resolution
// clusters.
//
// What is entres?
//
//	A small library and CLI that takes the output of blocking and
//	matching - candidate pairs (id1, id2, score) - and decides which
//	entities are the same real-world object:
//		• Clean-clean ER: two duplicate-free datasets, one-to-one matches
//		• Dirty ER: one dataset, transitive duplicate groups
//		• Six strategies behind one Strategy interface
//		• Precision, recall and F-measure against a ground truth
//
// Packages:
//
//	candidates/ - Candidate, Pair, CandidateSet and the JSON/YAML/msgpack/CSV codecs
//	core/       - SimilarityGraph: undirected edges and connected components
//	matrix/     - dense cost matrices for the assignment strategies
//	clustering/ - connected components, best match, reciprocal best match,
//	              best assignment, row-column and Kiraly stable marriage
//	evaluation/ - ground truth and cluster/candidate quality reports
//	builder/    - synthetic candidate sets with a planted matching
//	config/     - YAML/TOML config, .env and ENTRES_* environment
//	server/     - HTTP API (gin)
//	cmd/entres/ - the entres command
//
// Quick example: two datasets of two entities,
//
//	D1[0] ──0.9── D2[0]
//	D1[1] ──0.8── D2[1]
//
// with threshold 0.5 yields the clusters {D1[0], D2[0]} and {D1[1], D2[1]}.
//
//	go install github.com/katalvlaran/entres/cmd/entres@latest
package entres

// SPDX-License-Identifier: MIT

// Package candidates defines the scored candidate pairs that entity
// clustering consumes, the CandidateSet contract over them, and an
// in-memory implementation (Pairs) together with file codecs.
//
// Id spaces:
//
//   - Clean-clean: ID1 is a dataset-1 id in [0, n1); ID2 is *local* to
//     dataset 2, in [0, n2). DatasetLimit() is n1 and the global id of a
//     dataset-2 entity is ID2 + n1.
//   - Dirty: both ids are global in [0, n) and DatasetLimit() equals n.
//
// File formats (ReadFile/WriteFile pick the codec from the extension):
//
//	.json          {"clean_clean":true,"dataset1_size":2,"dataset2_size":2,
//	                "candidates":[{"id1":0,"id2":1,"score":0.8}]}
//	.yaml/.yml     the same document in YAML
//	.msgpack/.mp   the same document in msgpack
//	.csv           header id1,id2,score; one candidate per line
package candidates

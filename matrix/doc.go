// SPDX-License-Identifier: MIT

// Package matrix provides Dense, a row-major float64 matrix with safe
// accessors, used by the assignment-based clustering strategies as their
// cost matrix.
//
// Dense keeps one flat buffer (offset = i*cols + j). At and Set return
// errors instead of panicking; hot loops that need raw speed read the
// buffer through Data and index it directly, so no second M² copy exists.
//
// Besides element access the package offers the two aggregates the
// row/column heuristics need: RowSums and ColSums, and a mutable Fill for
// padding.
package matrix

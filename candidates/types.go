// SPDX-License-Identifier: MIT

package candidates

import (
	"errors"
	"iter"
)

// Sentinel errors for candidate construction and decoding.
var (
	// ErrNegativeSize indicates a negative dataset size.
	ErrNegativeSize = errors.New("candidates: negative dataset size")

	// ErrIDOutOfRange indicates a candidate id outside its dataset.
	ErrIDOutOfRange = errors.New("candidates: id out of range")

	// ErrInvalidScore indicates a NaN or infinite score.
	ErrInvalidScore = errors.New("candidates: score must be finite")

	// ErrUnknownFormat indicates an unsupported file extension or format name.
	ErrUnknownFormat = errors.New("candidates: unknown format")

	// ErrMalformed indicates a record that could not be decoded.
	ErrMalformed = errors.New("candidates: malformed record")
)

// Candidate is one scored pair. In clean-clean sets ID2 is local to
// dataset 2; see the package documentation.
type Candidate struct {
	ID1   int     `json:"id1" yaml:"id1" msgpack:"id1"`
	ID2   int     `json:"id2" yaml:"id2" msgpack:"id2"`
	Score float64 `json:"score" yaml:"score" msgpack:"score"`
}

// Pair is an unscored id pair, used for ground-truth duplicates. Ids follow
// the same convention as Candidate.
type Pair struct {
	ID1 int `json:"id1" yaml:"id1" msgpack:"id1"`
	ID2 int `json:"id2" yaml:"id2" msgpack:"id2"`
}

// CandidateSet is the read-only input of every clustering strategy.
//
// All must return a fresh single-pass sequence on every call; strategies
// may call it more than once.
type CandidateSet interface {
	// Len is the number of candidates.
	Len() int

	// CleanClean reports whether the set pairs two datasets.
	CleanClean() bool

	// DatasetLimit is L: the size of dataset 1 in clean-clean, N otherwise.
	DatasetLimit() int

	// EntityCount is N, the total number of entities across datasets.
	EntityCount() int

	// All yields every candidate in storage order.
	All() iter.Seq[Candidate]
}

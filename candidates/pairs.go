// SPDX-License-Identifier: MIT

package candidates

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Pairs is the in-memory CandidateSet.
//
// A Pairs value is immutable after construction; the candidate slice is
// copied in and never handed out.
type Pairs struct {
	cleanClean bool
	n1, n2     int // n2 is 0 for dirty sets
	items      []Candidate
}

var _ CandidateSet = (*Pairs)(nil)

// NewCleanClean builds a two-dataset set of sizes n1 and n2.
//
// Errors:
//   - ErrNegativeSize if n1 or n2 is negative.
//   - ErrIDOutOfRange if some ID1 ∉ [0,n1) or ID2 ∉ [0,n2).
//   - ErrInvalidScore for NaN/Inf scores.
func NewCleanClean(n1, n2 int, cands []Candidate) (*Pairs, error) {
	if n1 < 0 || n2 < 0 {
		return nil, ErrNegativeSize
	}
	for i, c := range cands {
		if c.ID1 < 0 || c.ID1 >= n1 || c.ID2 < 0 || c.ID2 >= n2 {
			return nil, fmt.Errorf("candidate %d (%d,%d) outside %dx%d: %w", i, c.ID1, c.ID2, n1, n2, ErrIDOutOfRange)
		}
		if err := checkScore(i, c.Score); err != nil {
			return nil, err
		}
	}

	return &Pairs{cleanClean: true, n1: n1, n2: n2, items: slices.Clone(cands)}, nil
}

// NewDirty builds a single-dataset set over n entities.
func NewDirty(n int, cands []Candidate) (*Pairs, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	for i, c := range cands {
		if c.ID1 < 0 || c.ID1 >= n || c.ID2 < 0 || c.ID2 >= n {
			return nil, fmt.Errorf("candidate %d (%d,%d) outside [0,%d): %w", i, c.ID1, c.ID2, n, ErrIDOutOfRange)
		}
		if err := checkScore(i, c.Score); err != nil {
			return nil, err
		}
	}

	return &Pairs{n1: n, items: slices.Clone(cands)}, nil
}

// FromSlice builds a set, inferring any zero size from the largest id
// seen plus one. For dirty sets n2 is ignored.
func FromSlice(cleanClean bool, n1, n2 int, cands []Candidate) (*Pairs, error) {
	max1, max2 := -1, -1
	for _, c := range cands {
		max1 = max(max1, c.ID1)
		max2 = max(max2, c.ID2)
	}
	if !cleanClean {
		if n1 == 0 {
			n1 = max(max1, max2) + 1
		}

		return NewDirty(n1, cands)
	}
	if n1 == 0 {
		n1 = max1 + 1
	}
	if n2 == 0 {
		n2 = max2 + 1
	}

	return NewCleanClean(n1, n2, cands)
}

func checkScore(i int, s float64) error {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("candidate %d score %v: %w", i, s, ErrInvalidScore)
	}

	return nil
}

// Len returns the number of candidates.
func (p *Pairs) Len() int { return len(p.items) }

// CleanClean reports the resolution scenario.
func (p *Pairs) CleanClean() bool { return p.cleanClean }

// DatasetLimit returns n1 for clean-clean sets, n for dirty ones.
func (p *Pairs) DatasetLimit() int { return p.n1 }

// EntityCount returns n1+n2 (dirty: n).
func (p *Pairs) EntityCount() int { return p.n1 + p.n2 }

// Dataset1Size returns n1 (dirty: n).
func (p *Pairs) Dataset1Size() int { return p.n1 }

// Dataset2Size returns n2 (dirty: 0).
func (p *Pairs) Dataset2Size() int { return p.n2 }

// All yields candidates in storage order.
func (p *Pairs) All() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, c := range p.items {
			if !yield(c) {
				return
			}
		}
	}
}

// Candidates returns a copy of the stored candidates.
func (p *Pairs) Candidates() []Candidate {
	return slices.Clone(p.items)
}

// Collect materializes any CandidateSet into a slice.
func Collect(set CandidateSet) []Candidate {
	out := make([]Candidate, 0, set.Len())
	for c := range set.All() {
		out = append(out, c)
	}

	return out
}

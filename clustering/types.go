// SPDX-License-Identifier: MIT

package clustering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/entres/candidates"
)

// Sentinel errors returned by strategies and the registry.
var (
	// ErrScenarioMismatch indicates a clean-clean-only strategy was given a
	// dirty candidate set. Nothing is clustered.
	ErrScenarioMismatch = errors.New("clustering: strategy requires a clean-clean candidate set")

	// ErrNilCandidateSet indicates a nil CandidateSet was passed.
	ErrNilCandidateSet = errors.New("clustering: candidate set is nil")

	// ErrUnknownMethod indicates a Method outside the registry.
	ErrUnknownMethod = errors.New("clustering: unknown method")

	// ErrUnknownSide indicates an unparseable preferred side.
	ErrUnknownSide = errors.New("clustering: unknown side")
)

// Cluster is one equivalence cluster.
//
// D1 holds dataset-1 ids and D2 holds dataset-2 ids local to dataset 2
// (global id minus the dataset limit). Dirty clusters put every member in
// D1 and leave D2 empty. Both slices are sorted ascending.
type Cluster struct {
	D1 []int `json:"d1" yaml:"d1"`
	D2 []int `json:"d2" yaml:"d2"`
}

// Size returns the number of entities in the cluster.
func (c Cluster) Size() int { return len(c.D1) + len(c.D2) }

// Result is the full outcome of one run.
type Result struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	Method     Method        `json:"method" yaml:"method"`
	Threshold  float64       `json:"threshold" yaml:"threshold"`
	Clusters   []Cluster     `json:"clusters" yaml:"clusters"`
	Edges      int           `json:"edges" yaml:"edges"`           // edges committed to the similarity graph
	Violations int           `json:"violations" yaml:"violations"` // edges refused because an endpoint was already matched
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Strategy turns a candidate set into equivalence clusters.
//
// A Strategy holds only immutable configuration: every call builds a
// fresh Context, so one value may serve concurrent calls.
type Strategy interface {
	// Cluster returns the clusters for set. A zero-candidate set yields an
	// empty, non-nil slice for every strategy and scenario.
	Cluster(ctx context.Context, set candidates.CandidateSet) ([]Cluster, error)

	// Run is Cluster plus run metadata.
	Run(ctx context.Context, set candidates.CandidateSet) (Result, error)

	// Method is the registry key of the strategy.
	Method() Method

	// Name is a human-readable method name.
	Name() string

	// Info is a one-line description.
	Info() string

	// Config renders the effective parameters, e.g. "threshold=0.5".
	Config() string

	// CleanCleanOnly reports whether dirty sets are rejected.
	CleanCleanOnly() bool
}

// Side selects one of the two datasets of a clean-clean set.
type Side int

const (
	// SideDataset1 is the first dataset (ids < DatasetLimit).
	SideDataset1 Side = iota + 1
	// SideDataset2 is the second dataset.
	SideDataset2
	// SideSmaller picks the dataset with fewer entities, dataset 1 on ties.
	SideSmaller
)

// String renders the side in its configuration spelling.
func (s Side) String() string {
	switch s {
	case SideDataset1:
		return "dataset1"
	case SideDataset2:
		return "dataset2"
	case SideSmaller:
		return "smaller"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts "dataset1"/"d1"/"1", "dataset2"/"d2"/"2" and "smaller".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dataset1", "d1", "1", "left":
		return SideDataset1, nil
	case "dataset2", "d2", "2", "right":
		return SideDataset2, nil
	case "smaller", "auto":
		return SideSmaller, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownSide)
	}
}

// resolve maps SideSmaller onto a concrete dataset.
func (s Side) resolve(n1, n2 int) Side {
	if s != SideSmaller {
		return s
	}
	if n2 < n1 {
		return SideDataset2
	}

	return SideDataset1
}

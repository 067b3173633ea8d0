// SPDX-License-Identifier: MIT

package clustering

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/entres/candidates"
)

// Method names a clustering strategy in the closed registry.
type Method string

const (
	MethodConnectedComponents Method = "connected-components"
	MethodBestMatch           Method = "best-match"
	MethodReciprocalBestMatch Method = "reciprocal-best-match"
	MethodBestAssignment      Method = "best-assignment"
	MethodRowColumn           Method = "row-column"
	MethodKiraly              Method = "kiraly"
)

// runner executes one strategy over a prepared Context.
type runner func(ctx context.Context, rc *Context, set candidates.CandidateSet, o Options) error

// descriptor is the registry entry of a Method.
type descriptor struct {
	name      string
	info      string
	cleanOnly bool
	strict    bool // clean-clean partitions keep only 1-1 components
	run       runner
}

// methodOrder fixes the listing order of Methods().
var methodOrder = []Method{
	MethodConnectedComponents,
	MethodBestMatch,
	MethodReciprocalBestMatch,
	MethodBestAssignment,
	MethodRowColumn,
	MethodKiraly,
}

var registry = map[Method]descriptor{
	MethodConnectedComponents: {
		name:   "Connected Components Clustering",
		info:   "it gets equivalence clusters from the transitive closure of the similarity graph",
		strict: true,
		run:    runConnectedComponents,
	},
	MethodBestMatch: {
		name:      "BestMatch Clustering",
		info:      "it creates a cluster for each entity of the preferred dataset with its best unmatched candidate from the other",
		cleanOnly: true,
		run:       runBestMatch,
	},
	MethodReciprocalBestMatch: {
		name:      "SymmetricBestMatch Clustering",
		info:      "it keeps the top-1 candidate of each dataset-1 entity only if that candidate ranks the entity first as well",
		cleanOnly: true,
		run:       runReciprocalBestMatch,
	},
	MethodBestAssignment: {
		name:      "Assignment Problem Heuristic Clustering",
		info:      "it creates clusters after heuristically solving the assignment problem with improving random swaps",
		cleanOnly: true,
		run:       runBestAssignment,
	},
	MethodRowColumn: {
		name:      "Row-Column Proxy Clustering",
		info:      "it creates clusters after approximating the assignment problem with greedy row and column scans over existing edges",
		cleanOnly: true,
		run:       runRowColumn,
	},
	MethodKiraly: {
		name:      "KiralyMSMApprox Clustering",
		info:      "a 3/2 approximation of the Maximum Stable Marriage problem (suggested by Kiraly)",
		cleanOnly: true,
		run:       runKiraly,
	},
}

// aliases are accepted by ParseMethod in addition to the canonical names.
var aliases = map[string]Method{
	"cc":                   MethodConnectedComponents,
	"bm":                   MethodBestMatch,
	"bestmatch":            MethodBestMatch,
	"rbm":                  MethodReciprocalBestMatch,
	"exact":                MethodReciprocalBestMatch,
	"symmetric-best-match": MethodReciprocalBestMatch,
	"bah":                  MethodBestAssignment,
	"assignment":           MethodBestAssignment,
	"rc":                   MethodRowColumn,
	"rowcolumn":            MethodRowColumn,
	"msm":                  MethodKiraly,
	"kiraly-msm":           MethodKiraly,
}

// Methods lists every registered method in a fixed order.
func Methods() []Method {
	out := make([]Method, len(methodOrder))
	copy(out, methodOrder)

	return out
}

// ParseMethod resolves a canonical name or alias, case-insensitively.
// Underscores and spaces are read as dashes.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	if _, ok := registry[Method(key)]; ok {
		return Method(key), nil
	}
	if m, ok := aliases[key]; ok {
		return m, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// String returns the canonical name.
func (m Method) String() string { return string(m) }

// New builds the strategy registered under m with its defaults overridden
// by opts.
func New(m Method, opts ...Option) (Strategy, error) {
	d, ok := registry[m]
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(m), ErrUnknownMethod)
	}
	o := DefaultOptions(m)
	for _, opt := range opts {
		opt(&o)
	}

	return &strategy{method: m, d: d, opts: o}, nil
}

// MustNew is New that panics on an unknown method.
func MustNew(m Method, opts ...Option) Strategy {
	s, err := New(m, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// strategy is the single Strategy implementation; behavior comes from the
// registry descriptor.
type strategy struct {
	method Method
	d      descriptor
	opts   Options
}

var _ Strategy = (*strategy)(nil)

func (s *strategy) Method() Method       { return s.method }
func (s *strategy) Name() string         { return s.d.name }
func (s *strategy) Info() string         { return s.d.name + ": " + s.d.info }
func (s *strategy) Config() string       { return s.opts.render(s.method) }
func (s *strategy) CleanCleanOnly() bool { return s.d.cleanOnly }

// Options returns a copy of the effective options.
func (s *strategy) Options() Options { return s.opts }

func (s *strategy) Cluster(ctx context.Context, set candidates.CandidateSet) ([]Cluster, error) {
	res, err := s.Run(ctx, set)
	if err != nil {
		return nil, err
	}

	return res.Clusters, nil
}

// Run executes one clustering run.
//
// Implementation:
//   - Stage 1: nil set → ErrNilCandidateSet; zero candidates → empty result.
//   - Stage 2: scenario guard, before any allocation or graph mutation.
//   - Stage 3: fresh Context; strategy-specific edge selection.
//   - Stage 4: components → clusters; one Info log line per run.
func (s *strategy) Run(ctx context.Context, set candidates.CandidateSet) (Result, error) {
	// Stage 1: trivial inputs.
	if set == nil {
		return Result{}, ErrNilCandidateSet
	}
	if set.Len() == 0 {
		return Result{Method: s.method, Threshold: s.opts.Threshold, Clusters: []Cluster{}}, nil
	}

	// Stage 2: scenario guard.
	if s.d.cleanOnly && !set.CleanClean() {
		return Result{}, fmt.Errorf("%s: %w", s.method, ErrScenarioMismatch)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Stage 3: run.
	start := time.Now()
	log := s.opts.logger()
	rc, err := NewContext(set, s.opts.Threshold, log)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.method, err)
	}
	if err = s.d.run(ctx, rc, set, s.opts); err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.method, err)
	}

	// Stage 4: partition.
	clusters := PartitionBuilder{StrictOneToOne: s.d.strict}.Build(rc)
	res := Result{
		RunID:      rc.RunID(),
		Method:     s.method,
		Threshold:  s.opts.Threshold,
		Clusters:   clusters,
		Edges:      rc.Graph().EdgeCount(),
		Violations: rc.Violations(),
		Elapsed:    time.Since(start),
	}
	log.Info("clustering: run finished",
		"method", string(s.method),
		"run_id", res.RunID,
		"candidates", set.Len(),
		"clusters", len(clusters),
		"edges", res.Edges,
		"violations", res.Violations,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

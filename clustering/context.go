// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/core"
)

// Context is the per-run state shared by every strategy: the id layout of
// the candidate set, the similarity graph being built and the set of
// entities already matched.
//
// A Context is created for exactly one run and never reused.
type Context struct {
	runID      string
	cleanClean bool
	limit      int // L: dataset-1 size (dirty: N)
	n          int // N: total entities
	offset     int // added to ID2 to obtain a global id (dirty: 0)
	threshold  float64

	graph      *core.SimilarityGraph
	matched    []bool
	violations int
	logger     *slog.Logger
}

// NewContext prepares an empty run over set.
//
// Errors:
//   - ErrNilCandidateSet if set is nil.
//   - core.ErrNegativeSize (wrapped) for inconsistent sizes.
func NewContext(set candidates.CandidateSet, threshold float64, logger *slog.Logger) (*Context, error) {
	if set == nil {
		return nil, ErrNilCandidateSet
	}
	if logger == nil {
		logger = slog.Default()
	}

	n, limit := set.EntityCount(), set.DatasetLimit()
	if limit < 0 || limit > n {
		return nil, fmt.Errorf("dataset limit %d with %d entities: %w", limit, n, core.ErrNegativeSize)
	}
	g, err := core.NewSimilarityGraph(n)
	if err != nil {
		return nil, fmt.Errorf("similarity graph: %w", err)
	}

	c := &Context{
		runID:      uuid.NewString(),
		cleanClean: set.CleanClean(),
		limit:      limit,
		n:          n,
		threshold:  threshold,
		graph:      g,
		matched:    make([]bool, n),
		logger:     logger,
	}
	if c.cleanClean {
		c.offset = limit
	}

	return c, nil
}

// RunID identifies the run in logs and reports.
func (c *Context) RunID() string { return c.runID }

// CleanClean reports the scenario of the run.
func (c *Context) CleanClean() bool { return c.cleanClean }

// DatasetLimit returns L.
func (c *Context) DatasetLimit() int { return c.limit }

// Dataset1Size returns the number of dataset-1 entities (dirty: N).
func (c *Context) Dataset1Size() int { return c.limit }

// Dataset2Size returns the number of dataset-2 entities (dirty: 0).
func (c *Context) Dataset2Size() int { return c.n - c.limit }

// EntityCount returns N.
func (c *Context) EntityCount() int { return c.n }

// Threshold returns the acceptance threshold of the run.
func (c *Context) Threshold() float64 { return c.threshold }

// Accepts reports whether score clears the threshold (strictly greater).
func (c *Context) Accepts(score float64) bool { return score > c.threshold }

// Graph exposes the similarity graph built so far.
func (c *Context) Graph() *core.SimilarityGraph { return c.graph }

// Violations returns the number of refused commits.
func (c *Context) Violations() int { return c.violations }

// Global maps a dataset-2 local id to its global id.
func (c *Context) Global(id2 int) int { return id2 + c.offset }

// Local maps a global dataset-2 id back to its local id.
func (c *Context) Local(v int) int { return v - c.offset }

// Check validates a candidate against the id layout and returns its local
// ids unchanged. A CandidateSet that yields ids outside its declared sizes
// is reported with core.ErrVertexOutOfRange.
func (c *Context) Check(cand candidates.Candidate) error {
	hi2 := c.n - c.limit
	if !c.cleanClean {
		hi2 = c.n
	}
	if cand.ID1 < 0 || cand.ID1 >= c.limit || cand.ID2 < 0 || cand.ID2 >= hi2 {
		return fmt.Errorf("candidate (%d,%d) outside %dx%d: %w",
			cand.ID1, cand.ID2, c.limit, hi2, core.ErrVertexOutOfRange)
	}

	return nil
}

// Link adds an edge without touching the matched set; used by strategies
// that allow many-to-many components.
func (c *Context) Link(a, b int) error {
	return c.graph.AddEdge(a, b)
}

// IsMatched reports whether global id v is already matched.
func (c *Context) IsMatched(v int) bool {
	return v >= 0 && v < c.n && c.matched[v]
}

// Commit adds the one-to-one edge a-b (global ids) and marks both matched.
//
// If either endpoint is already matched the edge is refused: the event is
// logged at Error level, counted in Violations, and Commit returns false.
func (c *Context) Commit(a, b int) (bool, error) {
	if c.IsMatched(a) || c.IsMatched(b) {
		c.violations++
		c.logger.Error("clustering: entity already matched, edge skipped",
			"run_id", c.runID, "id1", a, "id2", b,
			"id1_matched", c.IsMatched(a), "id2_matched", c.IsMatched(b))

		return false, nil
	}
	if err := c.graph.AddEdge(a, b); err != nil {
		return false, err
	}
	c.matched[a] = true
	c.matched[b] = true

	return true, nil
}

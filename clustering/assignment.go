// SPDX-License-Identifier: MIT

package clustering

import (
	"context"
	"time"

	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/matrix"
)

// pollMask throttles wall-clock and context checks to every 1024 moves.
const pollMask = 1<<10 - 1

// noEdgeCost is the cost of a cell without an above-threshold candidate.
const noEdgeCost = 1.0

// runBestAssignment is the randomized assignment heuristic.
//
// Implementation:
//   - Stage 1: M×M cost matrix, M = max(|D1|,|D2|); cost 1-score for
//     above-threshold candidates (best score per cell), 1 elsewhere,
//     padded rows/columns included.
//   - Stage 2: identity assignment along the smaller side (rows when
//     |D1| <= |D2|, otherwise columns; stage 1 already stores the matrix
//     in that orientation, so only one M² buffer exists).
//   - Stage 3: random pairwise swaps, accepted iff the cost delta is < 0,
//     until the move budget, the time limit or ctx ends the loop. Ending
//     early is not an error; the current assignment is used as is.
//   - Stage 4: commit only real cells backed by an above-threshold
//     candidate; padding never produces an edge.
//
// Complexity: O(M²) memory and setup, O(moves) search.
func runBestAssignment(ctx context.Context, rc *Context, set candidates.CandidateSet, o Options) error {
	n1, n2 := rc.Dataset1Size(), rc.Dataset2Size()
	m := max(n1, n2)
	// the time limit covers setup as well as the search
	deadline := time.Now().Add(o.TimeLimit)

	// Stage 1: cost matrix in assignment orientation: row k is index k of
	// the assignment side (dataset 1 when |D1| <= |D2|, else dataset 2),
	// column p its partner. best keeps the max real score per (i, j).
	byRows := n1 <= n2
	cost, err := matrix.NewFilled(m, m, noEdgeCost)
	if err != nil {
		return err
	}
	best := make(map[int]float64)
	for cand := range set.All() {
		if err = rc.Check(cand); err != nil {
			return err
		}
		if !rc.Accepts(cand.Score) {
			continue
		}
		key := cand.ID1*m + cand.ID2
		if prev, ok := best[key]; ok && prev >= cand.Score {
			continue
		}
		best[key] = cand.Score
		k, p := cand.ID1, cand.ID2
		if !byRows {
			k, p = p, k
		}
		if err = cost.Set(k, p, 1-cand.Score); err != nil {
			return err
		}
	}

	// Stage 2: identity assignment; w[k*m+p] is read in place.
	w := cost.Data()
	assign := make([]int, m)
	for k := range assign {
		assign[k] = k
	}

	// Stage 3: swap search.
	var (
		budget      = o.moveBudget(rc.EntityCount())
		rng         = rngFromSeed(o.Seed)
		useDeadline = o.TimeLimit > 0
		moves       int
		accepted    int
		stopped     string
	)
	if m >= 2 {
		for moves = 0; moves < budget; moves++ {
			if moves&pollMask == 0 {
				if useDeadline && time.Now().After(deadline) {
					stopped = "time_limit"
					break
				}
				if ctx.Err() != nil {
					stopped = "context"
					break
				}
			}
			a, b := distinctPair(rng, m)
			pa, pb := assign[a], assign[b]
			d := (w[a*m+pb] + w[b*m+pa]) - (w[a*m+pa] + w[b*m+pb])
			if d < 0 {
				assign[a], assign[b] = pb, pa
				accepted++
			}
		}
	}
	rc.logger.Debug("clustering: assignment search done",
		"run_id", rc.runID, "size", m, "budget", budget,
		"moves", moves, "accepted", accepted, "stopped", stopped)

	// Stage 4: commit real pairs.
	for k, p := range assign {
		i, j := k, p
		if !byRows {
			i, j = p, k
		}
		if i >= n1 || j >= n2 {
			continue
		}
		score, ok := best[i*m+j]
		if !ok || !rc.Accepts(score) {
			continue
		}
		if _, err = rc.Commit(i, rc.Global(j)); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package clustering

import (
	"context"
	"sort"

	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/matrix"
)

// runRowColumn is the greedy row/column assignment race.
//
// Implementation:
//   - Stage 1: |D1|×|D2| similarity matrix and its per-row / per-column
//     totals; the cost of a cell is 1-score, 1 where no positive
//     above-threshold score exists.
//   - Stage 2: row pass: rows by descending total (stable by id) each take
//     the cheapest uncovered column among cells with cost != 1.
//   - Stage 3: column pass: the same with the roles swapped.
//   - Stage 4: the cheaper pass wins (ties go to the column pass); its
//     pairs are committed.
//
// Complexity: O(|D1|·|D2|) per pass.
func runRowColumn(ctx context.Context, rc *Context, set candidates.CandidateSet, _ Options) error {
	n1, n2 := rc.Dataset1Size(), rc.Dataset2Size()

	// Stage 1: similarity matrix (max accepted score per cell, 0 where
	// none) and its row / column totals. Costs are derived on read.
	sim, err := matrix.NewDense(n1, n2)
	if err != nil {
		return err
	}
	var prev float64
	for cand := range set.All() {
		if err = rc.Check(cand); err != nil {
			return err
		}
		if !rc.Accepts(cand.Score) {
			continue
		}
		if prev, err = sim.At(cand.ID1, cand.ID2); err != nil {
			return err
		}
		if prev >= cand.Score {
			continue
		}
		if err = sim.Set(cand.ID1, cand.ID2, cand.Score); err != nil {
			return err
		}
	}
	rowW, colW := sim.RowSums(), sim.ColSums()
	if err = ctx.Err(); err != nil {
		return err
	}

	w := sim.Data()
	at := func(i, j int) float64 {
		if v := w[i*n2+j]; v > 0 {
			return 1 - v
		}

		return noEdgeCost
	}

	// Stage 2: row pass.
	rowSel, rowCost := greedyPass(n1, n2, rowW, func(r, c int) float64 { return at(r, c) })

	// Stage 3: column pass, then re-key its picks by row.
	colSel, colCost := greedyPass(n2, n1, colW, func(c, r int) float64 { return at(r, c) })
	colByRow := make([]int, n1)
	for i := range colByRow {
		colByRow[i] = -1
	}
	for c, r := range colSel {
		if r >= 0 {
			colByRow[r] = c
		}
	}

	// Stage 4: pick the cheaper pass and commit.
	solution, pass := colByRow, "column"
	if rowCost < colCost {
		solution, pass = rowSel, "row"
	}
	rc.logger.Debug("clustering: row-column passes done",
		"run_id", rc.runID, "row_cost", rowCost, "column_cost", colCost, "winner", pass)

	for e1, e2 := range solution {
		if e2 < 0 {
			continue
		}
		// passes only pick cells with cost != 1, so sim is a real score here
		if score, _ := sim.At(e1, e2); !rc.Accepts(score) {
			continue
		}
		if _, err = rc.Commit(e1, rc.Global(e2)); err != nil {
			return err
		}
	}

	return nil
}

// greedyPass assigns each of the nOwn owners, in descending weight order
// (stable by id), the cheapest uncovered target with cost != noEdgeCost.
// sel[o] is -1 for owners left unassigned; total sums the picked costs.
func greedyPass(nOwn, nTarget int, weight []float64, cost func(owner, target int) float64) (sel []int, total float64) {
	order := make([]int, nOwn)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return weight[order[a]] > weight[order[b]] })

	sel = make([]int, nOwn)
	covered := make([]bool, nTarget)
	for _, o := range order {
		sel[o] = -1
		min := noEdgeCost
		for t := 0; t < nTarget; t++ {
			if covered[t] {
				continue
			}
			c := cost(o, t)
			if c == noEdgeCost {
				continue
			}
			if sel[o] == -1 || c < min {
				sel[o], min = t, c
			}
		}
		if sel[o] >= 0 {
			covered[sel[o]] = true
			total += min
		}
	}

	return sel, total
}

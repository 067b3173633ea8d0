// SPDX-License-Identifier: MIT

package clustering

import (
	"context"

	"github.com/katalvlaran/entres/candidates"
)

// runBestMatch is the greedy one-sided best match.
//
// Implementation:
//   - Stage 1: one max-heap of above-threshold partners per entity of the
//     preferred side.
//   - Stage 2: in ascending id order, pop partners until one is unmatched;
//     commit it and move to the next entity.
//
// The result is one-to-one but depends on id order, not on global score
// order. Complexity: O(C log C).
func runBestMatch(ctx context.Context, rc *Context, set candidates.CandidateSet, o Options) error {
	side := o.PreferredSide.resolve(rc.Dataset1Size(), rc.Dataset2Size())
	owners := rc.Dataset1Size()
	if side == SideDataset2 {
		owners = rc.Dataset2Size()
	}

	// Stage 1: queues keyed by preferred-side local id, partners global.
	q := newQueueFamily(owners)
	for cand := range set.All() {
		if err := rc.Check(cand); err != nil {
			return err
		}
		if !rc.Accepts(cand.Score) {
			continue
		}
		if side == SideDataset1 {
			q.add(cand.ID1, rc.Global(cand.ID2), cand.Score)
		} else {
			q.add(cand.ID2, cand.ID1, cand.Score)
		}
	}
	q.init()
	if err := ctx.Err(); err != nil {
		return err
	}

	// Stage 2: greedy scan.
	var skipped int
	for e := 0; e < owners; e++ {
		self := e
		if side == SideDataset2 {
			self = rc.Global(e)
		}
		for {
			p, ok := q.pop(e)
			if !ok {
				break
			}
			if rc.IsMatched(p.partner) {
				skipped++
				continue
			}
			if _, err := rc.Commit(self, p.partner); err != nil {
				return err
			}
			break
		}
	}
	rc.logger.Debug("clustering: best match scan done",
		"run_id", rc.runID, "side", side.String(), "skipped_claimed", skipped)

	return nil
}

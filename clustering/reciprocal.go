// SPDX-License-Identifier: MIT

package clustering

import (
	"context"

	"github.com/katalvlaran/entres/candidates"
)

// runReciprocalBestMatch keeps mutual top-1 pairs.
//
// Both queue families are filled from the same candidate stream. Every
// dataset-1 entity looks at its top partner e2 and at e2's top partner;
// the edge is committed only when that is the entity itself. A queue top
// is read, never consumed, so each dataset-2 entity presents the same
// top-1 to every entity that inspects it. No retry, no cascading.
//
// Complexity: O(C) heap construction plus O(N1) lookups.
func runReciprocalBestMatch(ctx context.Context, rc *Context, set candidates.CandidateSet, _ Options) error {
	n1, n2 := rc.Dataset1Size(), rc.Dataset2Size()
	q1 := newQueueFamily(n1) // by dataset-1 id, partners local dataset-2 ids
	q2 := newQueueFamily(n2) // by dataset-2 id, partners dataset-1 ids

	for cand := range set.All() {
		if err := rc.Check(cand); err != nil {
			return err
		}
		if !rc.Accepts(cand.Score) {
			continue
		}
		q1.add(cand.ID1, cand.ID2, cand.Score)
		q2.add(cand.ID2, cand.ID1, cand.Score)
	}
	q1.init()
	q2.init()
	if err := ctx.Err(); err != nil {
		return err
	}

	var rejected int
	for e1 := 0; e1 < n1; e1++ {
		top, ok := q1.peek(e1)
		if !ok {
			continue
		}
		// q2 gets the mirror of every q1 entry, so top.partner's queue is
		// never empty here; treat it as non-mutual all the same.
		back, ok := q2.peek(top.partner)
		if !ok || back.partner != e1 {
			rejected++
			continue
		}
		if _, err := rc.Commit(e1, rc.Global(top.partner)); err != nil {
			return err
		}
	}
	rc.logger.Debug("clustering: reciprocal scan done", "run_id", rc.runID, "non_mutual", rejected)

	return nil
}

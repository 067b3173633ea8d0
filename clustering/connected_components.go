// SPDX-License-Identifier: MIT

package clustering

import (
	"context"

	"github.com/katalvlaran/entres/candidates"
)

// runConnectedComponents links every above-threshold candidate; the
// transitive closure is taken by PartitionBuilder, which in clean-clean
// runs discards any component that is not exactly one-to-one.
//
// Complexity: O(C + N + E) for C candidates.
func runConnectedComponents(ctx context.Context, rc *Context, set candidates.CandidateSet, _ Options) error {
	var linked int
	for cand := range set.All() {
		if err := rc.Check(cand); err != nil {
			return err
		}
		if !rc.Accepts(cand.Score) {
			continue
		}
		if err := rc.Link(cand.ID1, rc.Global(cand.ID2)); err != nil {
			return err
		}
		linked++
	}
	rc.logger.Debug("clustering: candidates linked", "run_id", rc.runID, "linked", linked)

	return ctx.Err()
}

// SPDX-License-Identifier: MIT

package clustering

import (
	"context"
	"sort"

	"github.com/katalvlaran/entres/candidates"
)

// manState is the life cycle of a proposer.
type manState uint8

const (
	lad manState = iota
	bachelor
	oldBachelor
)

// pref is one arena entry: a man's preference for a woman.
type pref struct {
	man   int
	woman int
	score float64
}

// marriage is the proposal state of one Kiraly run. Every man owns the
// arena range [start[m], end[m]); entries before cursor[m] are inactive.
// An engaged man's cursor points at his fiancée's entry.
type marriage struct {
	arena  []pref
	start  []int
	end    []int
	cursor []int
	state  []manState

	fiance []int // woman -> man, -1 when free
	engage []bool

	queue []int // FIFO of free men
}

// runKiraly is the 3/2-approximation of maximum stable marriage with ties.
//
// Implementation:
//   - Stage 1: preference arena sorted by (man, score desc, woman), one
//     entry per (man, woman) holding the best score.
//   - Stage 2: free men propose from the FIFO in turn. A lad who exhausts
//     his list becomes a bachelor and goes through it once more; a second
//     exhaustion leaves him an old bachelor, out of the game.
//   - Stage 3: engagements are committed in ascending man order.
//
// Complexity: O(C log C) for the sort, O(C) proposals.
func runKiraly(ctx context.Context, rc *Context, set candidates.CandidateSet, o Options) error {
	side := o.PreferredSide.resolve(rc.Dataset1Size(), rc.Dataset2Size())
	men, women := rc.Dataset1Size(), rc.Dataset2Size()
	if side == SideDataset2 {
		men, women = women, men
	}

	// Stage 1: arena.
	arena := make([]pref, 0, set.Len())
	for cand := range set.All() {
		if err := rc.Check(cand); err != nil {
			return err
		}
		if !rc.Accepts(cand.Score) {
			continue
		}
		p := pref{man: cand.ID1, woman: cand.ID2, score: cand.Score}
		if side == SideDataset2 {
			p.man, p.woman = cand.ID2, cand.ID1
		}
		arena = append(arena, p)
	}
	mg := newMarriage(arena, men, women)
	if err := ctx.Err(); err != nil {
		return err
	}

	// Stage 2: proposals.
	var proposals, accepted int
	for len(mg.queue) > 0 {
		if proposals&pollMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		m := mg.queue[0]
		mg.queue = mg.queue[1:]
		proposals++
		if mg.propose(m) {
			accepted++
		}
	}
	rc.logger.Debug("clustering: stable marriage done",
		"run_id", rc.runID, "side", side.String(),
		"proposals", proposals, "accepted", accepted)

	// Stage 3: commit.
	for m := 0; m < men; m++ {
		if !mg.engage[m] {
			continue
		}
		w := mg.arena[mg.cursor[m]].woman
		a, b := m, rc.Global(w)
		if side == SideDataset2 {
			a, b = w, rc.Global(m)
		}
		if _, err := rc.Commit(a, b); err != nil {
			return err
		}
	}

	return nil
}

// newMarriage sorts and deduplicates the arena and seeds the FIFO with
// every man holding a non-empty list, in ascending id order.
func newMarriage(arena []pref, men, women int) *marriage {
	sort.Slice(arena, func(i, j int) bool {
		a, b := arena[i], arena[j]
		if a.man != b.man {
			return a.man < b.man
		}
		if a.score != b.score {
			return a.score > b.score
		}

		return a.woman < b.woman
	})

	// Keep the first (best) entry per (man, woman).
	seen := make(map[[2]int]struct{}, len(arena))
	kept := arena[:0]
	for _, p := range arena {
		k := [2]int{p.man, p.woman}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, p)
	}

	mg := &marriage{
		arena:  kept,
		start:  make([]int, men),
		end:    make([]int, men),
		cursor: make([]int, men),
		state:  make([]manState, men),
		fiance: make([]int, women),
		engage: make([]bool, men),
	}
	for w := range mg.fiance {
		mg.fiance[w] = -1
	}
	for i := 0; i < len(kept); {
		m := kept[i].man
		j := i
		for j < len(kept) && kept[j].man == m {
			j++
		}
		mg.start[m], mg.end[m], mg.cursor[m] = i, j, i
		mg.queue = append(mg.queue, m)
		i = j
	}

	return mg
}

// propose lets free man m propose to the woman at his cursor and reports
// whether she accepted.
func (mg *marriage) propose(m int) bool {
	offer := mg.arena[mg.cursor[m]]
	w := offer.woman
	h := mg.fiance[w]

	if !mg.accepts(m, h, offer.score) {
		mg.deactivate(m)

		return false
	}
	if h >= 0 {
		mg.engage[h] = false
		mg.deactivate(h)
	}
	mg.fiance[w] = m
	mg.engage[m] = true

	return true
}

// accepts decides whether the fiancée of h (or a free woman, h < 0) takes
// proposer m offering score.
func (mg *marriage) accepts(m, h int, score float64) bool {
	if h < 0 || mg.uncertain(h) {
		return true
	}
	current := mg.arena[mg.cursor[h]].score
	if score > current {
		return true
	}

	return score == current && mg.state[m] == bachelor && mg.state[h] != bachelor
}

// uncertain reports whether engaged man h holds another active entry tied
// with his fiancée; his fiancée is then flighty.
func (mg *marriage) uncertain(h int) bool {
	c := mg.cursor[h]
	if c+1 >= mg.end[h] {
		return false
	}

	return mg.arena[c+1].score == mg.arena[c].score
}

// deactivate drops the entry at m's cursor and puts m back in the queue,
// handling list exhaustion.
func (mg *marriage) deactivate(m int) {
	mg.cursor[m]++
	if mg.cursor[m] == mg.end[m] {
		if mg.state[m] != lad {
			mg.state[m] = oldBachelor

			return
		}
		mg.state[m] = bachelor
		mg.cursor[m] = mg.start[m]
	}
	mg.queue = append(mg.queue, m)
}

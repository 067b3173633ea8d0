// SPDX-License-Identifier: MIT

package clustering

import "container/heap"

// scored is one preference: a partner id and the candidate score.
type scored struct {
	partner int
	score   float64
}

// before orders preferences by descending score, then ascending partner
// id, so equal scores resolve the same way for any input order.
func (a scored) before(b scored) bool {
	if a.score != b.score {
		return a.score > b.score
	}

	return a.partner < b.partner
}

// prefPQ is a max-heap of preferences ordered by before.
type prefPQ []scored

func (pq prefPQ) Len() int           { return len(pq) }
func (pq prefPQ) Less(i, j int) bool { return pq[i].before(pq[j]) }
func (pq prefPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push and Pop implement heap.Interface; use pushPref/popPref instead.
func (pq *prefPQ) Push(x any) { *pq = append(*pq, x.(scored)) }

func (pq *prefPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// queueFamily holds one preference heap per entity of a dataset.
type queueFamily []prefPQ

func newQueueFamily(n int) queueFamily { return make(queueFamily, n) }

// add appends without restoring heap order; call init once all adds are done.
func (f queueFamily) add(owner, partner int, score float64) {
	f[owner] = append(f[owner], scored{partner: partner, score: score})
}

// init heapifies every queue. Complexity: O(total entries).
func (f queueFamily) init() {
	for i := range f {
		heap.Init(&f[i])
	}
}

// peek returns the best preference of owner without removing it.
func (f queueFamily) peek(owner int) (scored, bool) {
	if len(f[owner]) == 0 {
		return scored{}, false
	}

	return f[owner][0], true
}

// pop removes and returns the best preference of owner.
func (f queueFamily) pop(owner int) (scored, bool) {
	if len(f[owner]) == 0 {
		return scored{}, false
	}

	return heap.Pop(&f[owner]).(scored), true
}

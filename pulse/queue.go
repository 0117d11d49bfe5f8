// Package pulse: continuation queue internals.
//
// Completed paths are not returned immediately; they are scored and parked
// on a min-heap, then drained in score order so the most promising complete
// path resumes exploration first. Equal scores break ties by insertion order,
// which keeps Run deterministic for a fixed graph and strategy set.
package pulse

// pulseItem is one parked continuation: a completed path with the score the
// strategy assigned at completion time.
type pulseItem struct {
	score float64
	seq   uint64
	info  *PathInfo
}

// pulseQueue is a min-heap of continuations ordered by (score, seq).
type pulseQueue []*pulseItem

// Len returns the number of parked continuations.
func (pq pulseQueue) Len() int { return len(pq) }

// Less defines the comparison: smaller score → higher priority, with the
// insertion sequence as a deterministic tie-break.
func (pq pulseQueue) Less(i, j int) bool {
	if pq[i].score == pq[j].score {
		return pq[i].seq < pq[j].seq
	}

	return pq[i].score < pq[j].score
}

// Swap swaps two elements in the heap.
func (pq pulseQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *pulseItem.
func (pq *pulseQueue) Push(x interface{}) { *pq = append(*pq, x.(*pulseItem)) }

// Pop removes and returns the lowest-score element from the heap.
// Called by heap.Pop; the result must be cast back to *pulseItem.
func (pq *pulseQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

package fmm

// cellPQ is an indexed min-heap of cell indices ordered by their stored field
// value. Priorities are read from values directly, so lowering values[idx]
// followed by heap.Fix(pq, pq.pos[idx]) is a true decrease-key: every cell
// sits in the heap at most once and is popped exactly once.
type cellPQ struct {
	heap   []int     // heap-ordered cell indices
	pos    []int     // pos[idx] is idx's slot in heap, or -1 once popped
	values []float32 // priorities; aliases the field being settled
}

// newCellPQ returns an unordered queue holding every index of values.
// Call heap.Init before use.
func newCellPQ(values []float32) *cellPQ {
	pq := &cellPQ{
		heap:   make([]int, len(values)),
		pos:    make([]int, len(values)),
		values: values,
	}
	for idx := range values {
		pq.heap[idx] = idx
		pq.pos[idx] = idx
	}

	return pq
}

// Len returns the number of queued cells.
func (pq *cellPQ) Len() int { return len(pq.heap) }

// Less defines the comparison: smaller value → higher priority.
func (pq *cellPQ) Less(i, j int) bool {
	return pq.values[pq.heap[i]] < pq.values[pq.heap[j]]
}

// Swap swaps two slots and keeps pos in step.
func (pq *cellPQ) Swap(i, j int) {
	pq.heap[i], pq.heap[j] = pq.heap[j], pq.heap[i]
	pq.pos[pq.heap[i]] = i
	pq.pos[pq.heap[j]] = j
}

// Push appends x, which must be a cell index. Called by heap.Push.
func (pq *cellPQ) Push(x any) {
	idx := x.(int)
	pq.pos[idx] = len(pq.heap)
	pq.heap = append(pq.heap, idx)
}

// Pop removes and returns the last cell index. Called by heap.Pop.
func (pq *cellPQ) Pop() any {
	n := len(pq.heap)
	idx := pq.heap[n-1]
	pq.heap = pq.heap[:n-1]
	pq.pos[idx] = -1

	return idx
}

// queued reports whether idx is still waiting in the heap.
func (pq *cellPQ) queued(idx int) bool { return pq.pos[idx] >= 0 }

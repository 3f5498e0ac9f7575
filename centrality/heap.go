package centrality

// vertexItem pairs a vertex with the priority it carried at push time.
type vertexItem struct {
	vertex int
	weight float64
}

// vertexPQ is a max-heap of vertexItem ordered by weight descending.
//
// The selectors use it with the "lazy re-evaluation" discipline: entries
// are never updated in place. When a vertex's degree changes, a fresh
// entry is pushed; outdated entries remain in the heap and are rejected
// on pop by comparing their weight against the vertex's current degree
// (within Epsilon). Ties surface in heap order, which is arbitrary.
type vertexPQ []vertexItem

// Len returns the number of items in the heap.
func (pq vertexPQ) Len() int { return len(pq) }

// Less defines the comparison: larger weight → higher priority.
func (pq vertexPQ) Less(i, j int) bool { return pq[i].weight > pq[j].weight }

// Swap swaps two elements in the heap.
func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type vertexItem.
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(vertexItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it has swapped the maximum to the end.
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

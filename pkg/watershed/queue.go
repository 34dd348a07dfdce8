package watershed

import "morphkit/pkg/satmath"

// item is one pending pop: a cell's altitude, the order it was pushed in,
// its flat position, and a cached (possibly conservative) lower bound on
// its Chebyshev distance to the nearest edge.
type item[T satmath.Integer] struct {
	cost   T
	idx    int
	flat   int
	margin int
}

// priorityQueue orders items by (cost, idx) ascending — lower altitude
// first, ties broken by earlier insertion — matching the FIFO-within-
// equal-cost rule the watershed's determinism depends on. container/heap
// gives no guarantee among equal keys on its own, which is why idx is
// mandatory rather than a tie-break of convenience.
type priorityQueue[T satmath.Integer] []item[T]

func (pq priorityQueue[T]) Len() int { return len(pq) }

func (pq priorityQueue[T]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].idx < pq[j].idx
}

func (pq priorityQueue[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue[T]) Push(x any) {
	*pq = append(*pq, x.(item[T]))
}

func (pq *priorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

package voxel

import "container/heap"

// vnode is one entry in the search heap: a grid cell with its current best
// g-score and f-score (f=g+h). index tracks its position in the backing
// array so the search loop can re-sift it with heap.Fix in O(log N) when
// its g-score improves.
type vnode struct {
	x, y, z int
	g, f    float64
	index   int
}

// priorityQueue is a binary min-heap over vnode.f, implementing
// container/heap.Interface exactly as lvlath's dijkstra package does for
// its own weighted-graph search.
type priorityQueue []*vnode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	n := x.(*vnode)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

var _ heap.Interface = (*priorityQueue)(nil)

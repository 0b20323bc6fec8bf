package kdtools

import (
	"container/heap"
	"math"
)

// nBestItem is one entry of the bounded max-heap of §4.8: a candidate index
// keyed by its distance to the query point.
type nBestItem struct {
	dist float64
	idx  int
}

// nBestHeap is a max-heap (root = worst/largest distance kept) so the
// worst candidate is always the one evicted when the heap overflows n
// entries. Grounded on the container/heap idiom the pack itself uses for
// bounded priority queues (fbenz-osmrouting/pq/pq.go).
type nBestHeap []nBestItem

func (h nBestHeap) Len() int            { return len(h) }
func (h nBestHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h nBestHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nBestHeap) Push(x interface{}) { *h = append(*h, x.(nBestItem)) }
func (h *nBestHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// nBest is the n_best bounded max-heap of §4.8.
type nBest struct {
	n int
	h nBestHeap
}

func newNBest(n int) *nBest {
	return &nBest{n: n, h: make(nBestHeap, 0, n)}
}

// maxKey is the current pruning threshold: +Inf while the heap is empty,
// otherwise the worst kept distance.
func (q *nBest) maxKey() float64 {
	if len(q.h) == 0 {
		return math.Inf(1)
	}
	return q.h[0].dist
}

func (q *nBest) add(dist float64, idx int) {
	heap.Push(&q.h, nBestItem{dist: dist, idx: idx})
	if len(q.h) > q.n {
		heap.Pop(&q.h)
	}
}

// drain empties the heap worst-to-best, matching the reference's "emit via
// output sink by popping the heap" contract (§4.8).
func (q *nBest) drain() []int {
	out := make([]int, len(q.h))
	for i := range out {
		out[i] = heap.Pop(&q.h).(nBestItem).idx
	}
	return out
}

// KNN returns up to n indices of the n nearest neighbors of v, worst-to-best
// by distance (§4.8). If n >= len(points) every index is returned. Indices
// refer to positions in the already-built points sequence.
func KNN(points []Point, v Point, n int) ([]int, error) {
	if n <= 0 || len(points) == 0 {
		return nil, nil
	}
	numDims := len(points[0])
	if err := validateDims(numDims); err != nil {
		return nil, err
	}
	if err := validatePoint(v, numDims); err != nil {
		return nil, err
	}
	q := newNBest(n)
	kdKNN(points, 0, len(points), 0, numDims, v, q)
	return q.drain(), nil
}

func kdKNN(points []Point, first, last, axis, numDims int, v Point, q *nBest) {
	if last-first <= 1 {
		if first < last {
			q.add(L2Dist(points[first], v), first)
		}
		return
	}
	pivot := findPivot(points, first, last, axis)
	q.add(L2Dist(points[pivot], v), pivot)

	next := nextAxis(axis, numDims)
	searchLeft := LessNth(axis, v, points[pivot])
	if searchLeft {
		kdKNN(points, first, pivot, next, numDims, v, q)
	} else {
		kdKNN(points, pivot+1, last, next, numDims, v, q)
	}

	// Pruning threshold is inclusive (<=), unlike Nearest's strict (<);
	// the asymmetry is preserved per §9.4.
	if math.Abs(v[axis]-points[pivot][axis]) <= q.maxKey() {
		if searchLeft {
			kdKNN(points, pivot+1, last, next, numDims, v, q)
		} else {
			kdKNN(points, first, pivot, next, numDims, v, q)
		}
	}
}

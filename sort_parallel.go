package kdtools

import (
	"runtime"
	"sync"

	"github.com/keegancsmith/nth"
)

// BuildParallel is Build (§4.2) with the fork-join driver of §4.3: below a
// depth bound derived from maxWorkers, the right half is built on a freshly
// spawned goroutine while the current goroutine builds the left half, and
// both are joined before returning. maxWorkers <= 0 defaults to
// runtime.GOMAXPROCS(0).
func BuildParallel(points []Point, maxWorkers int) error {
	if len(points) == 0 {
		return nil
	}
	numDims := len(points[0])
	if err := validatePoints(points, numDims); err != nil {
		return err
	}
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	checkDegenerateAxes(points, numDims)
	logger.Tracef("BuildParallel: n=%d numDims=%d maxWorkers=%d", len(points), numDims, maxWorkers)
	kdSortParallel(points, 0, len(points), 0, numDims, maxWorkers, 0)
	return nil
}

// kdSortParallel mirrors kdSort exactly (same pivot finding, same
// partition) and only differs in how the two halves are recursed into: it
// forks a worker for the right half while the current depth is below the
// thread cap, and joins before returning. The two halves are disjoint
// subranges of the same backing array, so no further synchronization is
// required (§4.3 invariant); the result is the same permutation kdSort
// alone would have produced.
func kdSortParallel(points []Point, first, last, axis, numDims, maxWorkers, depth int) {
	if last-first <= 1 {
		return
	}
	pivotPos := midpos(first, last)
	nth.Element(axisSorter{points: points[first:last], axis: axis}, pivotPos-first)
	pivotVal := points[pivotPos][axis]
	partitionLess(points, first, pivotPos, axis, pivotVal)
	next := nextAxis(axis, numDims)

	if (1 << uint(depth)) < maxWorkers {
		var wg sync.WaitGroup
		wg.Add(1)
		logger.Tracef("fork at depth=%d range=[%d,%d)", depth, pivotPos+1, last)
		go func() {
			defer wg.Done()
			kdSortParallel(points, pivotPos+1, last, next, numDims, maxWorkers, depth+1)
		}()
		kdSortParallel(points, first, pivotPos, next, numDims, maxWorkers, depth+1)
		wg.Wait()
		logger.Tracef("joined at depth=%d", depth)
		return
	}
	kdSort(points, pivotPos+1, last, next, numDims)
	kdSort(points, first, pivotPos, next, numDims)
}

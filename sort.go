package kdtools

import (
	"sort"

	"github.com/juju/loggo"
	"github.com/keegancsmith/nth"
)

var logger = loggo.GetLogger("kdtools")

// axisSorter adapts a Point slice to sort.Interface, ordered by a single
// axis. It is the sort.Interface nth.Element needs to find the
// nth_element-style median (§4.2 step 2); the teacher's SplitPoints used
// the same shape via PointArray/PointArrayMem.
type axisSorter struct {
	points []Point
	axis   int
}

func (s axisSorter) Len() int      { return len(s.points) }
func (s axisSorter) Swap(i, j int) { s.points[i], s.points[j] = s.points[j], s.points[i] }
func (s axisSorter) Less(i, j int) bool {
	return s.points[i][s.axis] < s.points[j][s.axis]
}

// Build reorders points in place into k-d tree layout (§3, §4.2). K is
// taken from the length of the first point; an empty sequence is a no-op.
func Build(points []Point) error {
	if len(points) == 0 {
		return nil
	}
	numDims := len(points[0])
	if err := validatePoints(points, numDims); err != nil {
		return err
	}
	checkDegenerateAxes(points, numDims)
	kdSort(points, 0, len(points), 0, numDims)
	return nil
}

// kdSort is the recursive layout builder of §4.2.
func kdSort(points []Point, first, last, axis, numDims int) {
	if last-first <= 1 {
		return
	}
	pivotPos := midpos(first, last)
	nth.Element(axisSorter{points: points[first:last], axis: axis}, pivotPos-first)
	pivotVal := points[pivotPos][axis]
	partitionLess(points, first, pivotPos, axis, pivotVal)
	next := nextAxis(axis, numDims)
	kdSort(points, pivotPos+1, last, next, numDims)
	kdSort(points, first, pivotPos, next, numDims)
}

// partitionLess moves every element of [first, last) whose axis coordinate
// is strictly less than pivotVal before every element that isn't, and
// returns the boundary. This is the "compact duplicates before pivot" step
// of §4.2 step 3 (std::partition in the source).
func partitionLess(points []Point, first, last, axis int, pivotVal float64) int {
	i := first
	for j := first; j < last; j++ {
		if points[j][axis] < pivotVal {
			points[i], points[j] = points[j], points[i]
			i++
		}
	}
	return i
}

// LexSort reorders points by the axis-cycling lexicographic order KDLess,
// with no k-d layout invariant beyond an ordinary total order (§4.2).
func LexSort(points []Point) error {
	if len(points) == 0 {
		return nil
	}
	numDims := len(points[0])
	if err := validatePoints(points, numDims); err != nil {
		return err
	}
	sort.Slice(points, func(i, j int) bool {
		return KDLess(0, numDims, points[i], points[j])
	})
	return nil
}

// LexSortFunc is LexSort parameterised by a caller axis predicate (KDCompare).
func LexSortFunc(points []Point, less func(a, b float64) bool) error {
	if len(points) == 0 {
		return nil
	}
	numDims := len(points[0])
	if err := validatePoints(points, numDims); err != nil {
		return err
	}
	sort.Slice(points, func(i, j int) bool {
		return KDCompare(0, numDims, less, points[i], points[j])
	})
	return nil
}

// checkDegenerateAxes warns (at Debug level) when an axis is constant
// across the whole sequence; kdSort still terminates and stays balanced,
// since it splits by position rather than by value, but splits on that axis
// separate nothing, so queries cannot prune on it.
func checkDegenerateAxes(points []Point, numDims int) {
	if !logger.IsDebugEnabled() {
		return
	}
	for axis := 0; axis < numDims; axis++ {
		v := points[0][axis]
		degenerate := true
		for _, p := range points[1:] {
			if p[axis] != v {
				degenerate = false
				break
			}
		}
		if degenerate {
			logger.Debugf("axis %d is constant across %d points; layout will degrade on this axis", axis, len(points))
		}
	}
}

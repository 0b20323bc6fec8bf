package kdtools

// RangeQuery emits every point contained in [lo, hi) componentwise (§4.9),
// in pre-order traversal order, duplicates included. points must already
// satisfy the k-d layout invariant.
func RangeQuery(points []Point, lo, hi Point, sink func(Point)) error {
	if len(points) == 0 {
		return nil
	}
	numDims := len(points[0])
	if err := validateDims(numDims); err != nil {
		return err
	}
	if err := validatePoint(lo, numDims); err != nil {
		return err
	}
	if err := validatePoint(hi, numDims); err != nil {
		return err
	}
	kdRangeQuery(points, 0, len(points), 0, numDims, lo, hi, sink)
	return nil
}

// kdRangeQuery is written with explicit length-0/length-1/general branches
// rather than the source's fallthrough switch (§9.1): Go's switch doesn't
// fall through by default, so there is no equivalent bug to reproduce, and
// explicit branches read more clearly than an empty case label would.
func kdRangeQuery(points []Point, first, last, axis, numDims int, lo, hi Point, sink func(Point)) {
	switch last - first {
	case 0:
		return
	case 1:
		if Contains(points[first], lo, hi) {
			sink(points[first])
		}
		return
	}

	pivot := findPivot(points, first, last, axis)
	next := nextAxis(axis, numDims)
	if Contains(points[pivot], lo, hi) {
		sink(points[pivot])
	}
	if !LessNth(axis, points[pivot], lo) {
		kdRangeQuery(points, first, pivot, next, numDims, lo, hi, sink)
	}
	if LessNth(axis, points[pivot], hi) {
		kdRangeQuery(points, pivot+1, last, next, numDims, lo, hi, sink)
	}
}

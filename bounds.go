package kdtools

// LowerBound returns the first index whose point is componentwise >= v
// (§4.6), or len(points) if none qualifies. points must already satisfy the
// k-d layout invariant (have been passed to Build).
func LowerBound(points []Point, v Point) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	numDims := len(points[0])
	if err := validateDims(numDims); err != nil {
		return len(points), err
	}
	if err := validatePoint(v, numDims); err != nil {
		return len(points), err
	}
	return kdLowerBound(points, 0, len(points), 0, numDims, v), nil
}

func kdLowerBound(points []Point, first, last, axis, numDims int, v Point) int {
	if last-first > 1 {
		next := nextAxis(axis, numDims)
		pivot := findPivot(points, first, last, axis)
		if NoneLess(points[pivot], v) {
			return kdLowerBound(points, first, pivot, next, numDims, v)
		}
		if AllLess(points[pivot], v) {
			return kdLowerBound(points, pivot+1, last, next, numDims, v)
		}
		it := kdLowerBound(points, first, pivot, next, numDims, v)
		if NoneLess(points[it], v) {
			return it
		}
		it = kdLowerBound(points, pivot+1, last, next, numDims, v)
		if it != last && NoneLess(points[it], v) {
			return it
		}
		return last
	}
	if first == last {
		return last
	}
	if NoneLess(points[first], v) {
		return first
	}
	return last
}

// UpperBound returns the first index whose point is componentwise strictly
// greater than v on every axis (§4.6), or len(points) if none qualifies.
func UpperBound(points []Point, v Point) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	numDims := len(points[0])
	if err := validateDims(numDims); err != nil {
		return len(points), err
	}
	if err := validatePoint(v, numDims); err != nil {
		return len(points), err
	}
	return kdUpperBound(points, 0, len(points), 0, numDims, v), nil
}

func kdUpperBound(points []Point, first, last, axis, numDims int, v Point) int {
	if last-first > 1 {
		next := nextAxis(axis, numDims)
		pivot := findPivot(points, first, last, axis)
		if AllLess(v, points[pivot]) {
			return kdUpperBound(points, first, pivot, next, numDims, v)
		}
		if NoneLess(v, points[pivot]) {
			return kdUpperBound(points, pivot+1, last, next, numDims, v)
		}
		it := kdUpperBound(points, first, pivot, next, numDims, v)
		if AllLess(v, points[it]) {
			return it
		}
		it = kdUpperBound(points, pivot+1, last, next, numDims, v)
		if it != last && AllLess(v, points[it]) {
			return it
		}
		return last
	}
	if first == last {
		return last
	}
	if AllLess(v, points[first]) {
		return first
	}
	return last
}

// BinarySearch reports whether v is present in points (componentwise
// equality), via LowerBound (§4.6).
func BinarySearch(points []Point, v Point) (bool, error) {
	it, err := LowerBound(points, v)
	if err != nil {
		return false, err
	}
	if it == len(points) {
		return false, nil
	}
	return NoneLess(v, points[it]), nil
}

// EqualRange returns the pair of LowerBound/UpperBound thresholds for v.
//
// Because k-d layout does not keep equal points contiguous, this is NOT a
// contiguous subrange of matches — it is the pair of componentwise
// thresholds described in §4.6/§9.2. To enumerate every point equal to v,
// use RangeQuery with v as both corners and a hi that is exclusive-safe for
// v (e.g. nextafter each coordinate of v), or filter a RangeQuery over a
// small window containing v.
func EqualRange(points []Point, v Point) (lower, upper int, err error) {
	lower, err = LowerBound(points, v)
	if err != nil {
		return lower, lower, err
	}
	upper, err = UpperBound(points, v)
	if err != nil {
		return lower, lower, err
	}
	return lower, upper, nil
}

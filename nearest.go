package kdtools

import "math"

// Nearest returns the index of the point of minimum L2 distance to v (§4.7).
// points must be empty or already satisfy the k-d layout invariant.
func Nearest(points []Point, v Point) (int, error) {
	if len(points) == 0 {
		return len(points), nil
	}
	numDims := len(points[0])
	if err := validateDims(numDims); err != nil {
		return len(points), err
	}
	if err := validatePoint(v, numDims); err != nil {
		return len(points), err
	}
	return kdNearest(points, 0, len(points), 0, numDims, v), nil
}

func kdNearest(points []Point, first, last, axis, numDims int, v Point) int {
	if last-first <= 1 {
		return first
	}
	next := nextAxis(axis, numDims)
	pivot := findPivot(points, first, last, axis)
	searchLeft := LessNth(axis, v, points[pivot])

	var near int
	if searchLeft {
		near = kdNearest(points, first, pivot, next, numDims, v)
	} else {
		near = kdNearest(points, pivot+1, last, next, numDims, v)
	}

	minDist := L2Dist(points[pivot], v)
	best := pivot
	if near != endOf(searchLeft, first, pivot, last) {
		if d := L2Dist(points[near], v); d < minDist {
			minDist = d
			best = near
		}
	}

	// Pruning test (§4.7 step 5): only the far half can hold anything
	// closer than the current best if the plane itself is within minDist.
	if math.Abs(v[axis]-points[pivot][axis]) < minDist {
		var far int
		if searchLeft {
			far = kdNearest(points, pivot+1, last, next, numDims, v)
		} else {
			far = kdNearest(points, first, pivot, next, numDims, v)
		}
		farEnd := endOf(!searchLeft, first, pivot, last)
		if far != farEnd && L2Dist(points[far], v) < minDist {
			best = far
		}
	}
	return best
}

// endOf is the sentinel a sub-call returns when it finds nothing: the
// sub-range's own "last" boundary, which is `pivot` for the left half and
// `last` for the right half (mirroring the kd_nearest_neighbor <I> ==
// `last` comparison of §4.7; there is no single fixed sentinel here because
// "last" is a different index for each half).
func endOf(isLeftHalf bool, first, pivot, last int) int {
	if isLeftHalf {
		return pivot
	}
	return last
}

// NearestEps is the ε-approximate 1-NN of §4.7: it returns early as soon as
// it encounters any point within eps of v, and otherwise behaves like
// Nearest. When eps > the true minimum distance, the pruning test
// `|diff| < min - eps` can go negative and silently skip the far side —
// preserved as-is per §9.3; no clamping is applied.
func NearestEps(points []Point, v Point, eps float64) (int, error) {
	if len(points) == 0 {
		return len(points), nil
	}
	numDims := len(points[0])
	if err := validateDims(numDims); err != nil {
		return len(points), err
	}
	if err := validatePoint(v, numDims); err != nil {
		return len(points), err
	}
	return kdNearestEps(points, 0, len(points), 0, numDims, v, eps), nil
}

func kdNearestEps(points []Point, first, last, axis, numDims int, v Point, eps float64) int {
	if last-first <= 1 {
		return first
	}
	next := nextAxis(axis, numDims)
	pivot := findPivot(points, first, last, axis)
	minDist := L2Dist(points[pivot], v)
	if minDist < eps {
		return pivot
	}

	searchLeft := LessNth(axis, v, points[pivot])
	var near int
	if searchLeft {
		near = kdNearestEps(points, first, pivot, next, numDims, v, eps)
	} else {
		near = kdNearestEps(points, pivot+1, last, next, numDims, v, eps)
	}

	best := pivot
	if near != endOf(searchLeft, first, pivot, last) {
		d := L2Dist(points[near], v)
		if d < eps {
			return near
		}
		if d < minDist {
			minDist = d
			best = near
		}
	}

	if math.Abs(v[axis]-points[pivot][axis]) < minDist-eps {
		var far int
		if searchLeft {
			far = kdNearestEps(points, pivot+1, last, next, numDims, v, eps)
		} else {
			far = kdNearestEps(points, first, pivot, next, numDims, v, eps)
		}
		farEnd := endOf(!searchLeft, first, pivot, last)
		if far != farEnd && L2Dist(points[far], v) < minDist {
			best = far
		}
	}
	return best
}

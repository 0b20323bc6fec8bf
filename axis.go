package kdtools

// LessNth compares two points on a single axis: a[axis] < b[axis].
func LessNth(axis int, a, b Point) bool {
	return a[axis] < b[axis]
}

// KDLess is the axis-cycling strict weak order of §4.1: compare a[axis] vs
// b[axis]; on a tie, move to the next axis (axis+1 mod numDims) and repeat,
// for at most numDims comparisons total.
func KDLess(axis, numDims int, a, b Point) bool {
	for step := 0; step < numDims; step++ {
		i := (axis + step) % numDims
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// KDCompare is KDLess parameterised by a caller predicate: equality on an
// axis is "!less(a,b) && !less(b,a)" rather than "a[i] == b[i]".
func KDCompare(axis, numDims int, less func(a, b float64) bool, a, b Point) bool {
	for step := 0; step < numDims; step++ {
		i := (axis + step) % numDims
		if less(a[i], b[i]) || less(b[i], a[i]) {
			return less(a[i], b[i])
		}
	}
	return false
}

// nextAxis returns the axis one level deeper in the recursion.
func nextAxis(axis, numDims int) int {
	return (axis + 1) % numDims
}

package kdtools

// midpos is the position-based midpoint of [first, last), matching the
// source's midpos(first, last) = first + distance(first, last) / 2.
func midpos(first, last int) int {
	return first + (last-first)/2
}

// findPivot returns the split point the queries descend on: the midpoint
// pivotPos at which kdSort placed the pivot of [first, last). Every index
// before it holds an axis value <= the pivot's and every index after it a
// value >= (§3). Duplicates of the pivot value may sit on either side: the
// duplicate compaction kdSort does before recursing does not survive the
// build of the left subtree, so the split is not searched for by value.
func findPivot(points []Point, first, last, axis int) int {
	return midpos(first, last)
}

package kdtools

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randPoints(r *rand.Rand, n, numDims int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = randPoint(r, numDims)
	}
	return points
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = clone(p)
	}
	return out
}

// checkLayoutInvariant walks every subrange the build recursion would have
// visited and checks §3's invariant directly.
func checkLayoutInvariant(t *testing.T, points []Point, first, last, axis, numDims int) {
	t.Helper()
	if last-first <= 1 {
		return
	}
	pivotPos := midpos(first, last)
	pivotVal := points[pivotPos][axis]
	for i := first; i < pivotPos; i++ {
		if points[i][axis] > pivotVal {
			t.Fatalf("invariant violated: points[%d][%d]=%v > pivot %v", i, axis, points[i][axis], pivotVal)
		}
	}
	for i := pivotPos + 1; i < last; i++ {
		if points[i][axis] < pivotVal {
			t.Fatalf("invariant violated: points[%d][%d]=%v < pivot %v", i, axis, points[i][axis], pivotVal)
		}
	}
	next := nextAxis(axis, numDims)
	checkLayoutInvariant(t, points, first, pivotPos, next, numDims)
	checkLayoutInvariant(t, points, pivotPos+1, last, next, numDims)
}

func multisetKey(points []Point) []string {
	keys := make([]string, len(points))
	for i, p := range points {
		keys[i] = pointKey(p)
	}
	sort.Strings(keys)
	return keys
}

func pointKey(p Point) string {
	s := ""
	for _, v := range p {
		s += strconv.FormatFloat(v, 'g', -1, 64) + "|"
	}
	return s
}

func TestBuildEstablishesLayoutInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 3, 10, 137, 1000} {
		for _, numDims := range []int{1, 2, 3, 5} {
			points := randPoints(r, n, numDims)
			before := multisetKey(points)
			require.NoError(t, Build(points))
			if n > 0 {
				checkLayoutInvariant(t, points, 0, len(points), 0, numDims)
			}
			assert.Equal(t, before, multisetKey(points), "build must be a permutation")
		}
	}
}

func TestBuildEmptyIsNoop(t *testing.T) {
	var points []Point
	require.NoError(t, Build(points))
	assert.Empty(t, points)
}

func TestBuildRejectsMismatchedArity(t *testing.T) {
	points := []Point{{1, 2}, {1, 2, 3}}
	err := Build(points)
	require.Error(t, err)
	var kerr *KDError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, InvalidInput, kerr.Kind)
}

func TestBuildRejectsNaN(t *testing.T) {
	points := []Point{{1, 2}, {1, nan()}}
	err := Build(points)
	require.Error(t, err)
}

func TestBuildDegenerateAxis(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	n := 1000
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{0, float64(r.Intn(1000))}
	}
	before := multisetKey(points)
	require.NoError(t, Build(points))
	checkLayoutInvariant(t, points, 0, n, 0, 2)
	assert.Equal(t, before, multisetKey(points))
}

func TestLexSortIsTotalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	points := randPoints(r, 200, 3)
	before := multisetKey(points)
	require.NoError(t, LexSort(points))
	for i := 1; i < len(points); i++ {
		assert.False(t, KDLess(0, 3, points[i], points[i-1]), "must be non-decreasing")
	}
	assert.Equal(t, before, multisetKey(points))
}

func TestLexSortFunc(t *testing.T) {
	points := []Point{{3, 1}, {1, 2}, {2, 0}}
	require.NoError(t, LexSortFunc(points, func(a, b float64) bool { return a < b }))
	assert.Equal(t, Point{1, 2}, points[0])
	assert.Equal(t, Point{2, 0}, points[1])
	assert.Equal(t, Point{3, 1}, points[2])
}

func nan() float64 {
	var zero float64
	return zero / zero
}

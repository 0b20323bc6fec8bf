package kdtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidDimensionRejectedAtBoundary(t *testing.T) {
	points := make([]Point, 3)
	for i := range points {
		points[i] = make(Point, MaxDims+1)
	}
	err := Build(points)
	require.Error(t, err)
	var kerr *KDError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, InvalidDimension, kerr.Kind)
}

func TestKDErrorUnwraps(t *testing.T) {
	err := newError(InvalidInput, "bad thing %d", 7)
	require.Error(t, err.Unwrap())
	assert.Contains(t, err.Error(), "bad thing 7")
}

func TestQueryPointArityMismatch(t *testing.T) {
	points := []Point{{1, 2}, {3, 4}}
	require.NoError(t, Build(points))

	_, err := Nearest(points, Point{1, 2, 3})
	require.Error(t, err)
	var kerr *KDError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, InvalidInput, kerr.Kind)
}

// TestZeroDimensionRejectedByQueries covers the boundary case where K is
// derived from len(points[0]): a sequence of zero-length points must be
// rejected with InvalidDimension rather than reaching nextAxis with a
// modulus of zero.
func TestZeroDimensionRejectedByQueries(t *testing.T) {
	points := []Point{{}, {}}

	assertInvalidDimension := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		var kerr *KDError
		require.ErrorAs(t, err, &kerr)
		assert.Equal(t, InvalidDimension, kerr.Kind)
	}

	_, err := LowerBound(points, Point{})
	assertInvalidDimension(t, err)

	_, err = UpperBound(points, Point{})
	assertInvalidDimension(t, err)

	_, err = BinarySearch(points, Point{})
	assertInvalidDimension(t, err)

	_, _, err = EqualRange(points, Point{})
	assertInvalidDimension(t, err)

	_, err = Nearest(points, Point{})
	assertInvalidDimension(t, err)

	_, err = NearestEps(points, Point{}, 0.1)
	assertInvalidDimension(t, err)

	_, err = KNN(points, Point{}, 1)
	assertInvalidDimension(t, err)

	err = RangeQuery(points, Point{}, Point{}, func(Point) {})
	assertInvalidDimension(t, err)
}

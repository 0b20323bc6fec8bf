package kdtools

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrorKind classifies the boundary errors this package can return.
type ErrorKind int

const (
	// InvalidDimension means K is outside [1, MaxDims].
	InvalidDimension ErrorKind = iota
	// InvalidInput means a point carries a NaN coordinate or an arity
	// that doesn't match the rest of the sequence.
	InvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidDimension:
		return "InvalidDimension"
	case InvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// KDError is the error type returned at the boundary of every exported
// operation. Wrap/unwrap with the standard errors package; the underlying
// cause is preserved via github.com/pkg/errors.
type KDError struct {
	Kind  ErrorKind
	msg   string
	cause error
}

func (e *KDError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("kdtools: %s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("kdtools: %s: %s", e.Kind, e.msg)
}

func (e *KDError) Unwrap() error { return e.cause }

func newError(kind ErrorKind, format string, args ...interface{}) *KDError {
	return &KDError{Kind: kind, msg: fmt.Sprintf(format, args...), cause: errors.Errorf(format, args...)}
}

// validateDims checks that K is a supported dimensionality.
func validateDims(k int) error {
	if k <= 0 || k > MaxDims {
		return newError(InvalidDimension, "dimension %d outside supported range [1, %d]", k, MaxDims)
	}
	return nil
}

// validatePoints checks arity consistency and NaN-freedom of a sequence
// against a claimed dimensionality K. An empty sequence is not an error;
// callers that require non-empty input check separately.
func validatePoints(points []Point, k int) error {
	if err := validateDims(k); err != nil {
		return err
	}
	for i, p := range points {
		if len(p) != k {
			return newError(InvalidInput, "point %d has arity %d, want %d", i, len(p), k)
		}
		for d, v := range p {
			if math.IsNaN(v) {
				return newError(InvalidInput, "point %d has NaN coordinate at axis %d", i, d)
			}
		}
	}
	return nil
}

// validatePoint checks a single query point against K.
func validatePoint(v Point, k int) error {
	if len(v) != k {
		return newError(InvalidInput, "query point has arity %d, want %d", len(v), k)
	}
	for d, c := range v {
		if math.IsNaN(c) {
			return newError(InvalidInput, "query point has NaN coordinate at axis %d", d)
		}
	}
	return nil
}

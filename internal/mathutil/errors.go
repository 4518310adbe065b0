package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateInput is matched by every *DegenerateInputError.
var ErrDegenerateInput = errors.New("degenerate input")

// DegenerateInputError reports a normalization or conversion whose divisor
// is zero (or not finite), e.g. a zero-length axis or the zero quaternion.
type DegenerateInputError struct {
	Op     string  // operation that failed, e.g. "axis-angle"
	Length float64 // offending length or squared norm
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("mathutil: %s: degenerate input (length %g)", e.Op, e.Length)
}

func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}

// degenerate reports whether l cannot be used as a divisor.
func degenerate(l float64) bool {
	return l == 0 || math.IsNaN(l) || math.IsInf(l, 0)
}

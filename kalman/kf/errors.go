package kf

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MinInvertible is the smallest absolute value of a scalar which can be inverted
	MinInvertible = 1e-8
	// InnovationScalar names the innovation variance inverted in the measurement update
	InnovationScalar = "Innovation (measurement pre-fit residual `S`)"
)

// ErrFailedScalarInverse is matched by every FailedScalarInverseError
var ErrFailedScalarInverse = errors.New("failed to invert scalar")

// FailedScalarInverseError is returned when a scalar is too close to zero to be inverted.
type FailedScalarInverseError struct {
	// Scalar names the scalar which could not be inverted
	Scalar string
}

// Error implements error interface.
func (e *FailedScalarInverseError) Error() string {
	return fmt.Sprintf("failed to invert scalar %s in operation", e.Scalar)
}

// Is reports whether target is ErrFailedScalarInverse.
func (e *FailedScalarInverseError) Is(target error) bool {
	return target == ErrFailedScalarInverse
}

// Invert returns 1/v.
// It returns FailedScalarInverseError naming the scalar if |v| < MinInvertible.
func Invert(v float64, name string) (float64, error) {
	if math.Abs(v) < MinInvertible {
		return 0, &FailedScalarInverseError{Scalar: name}
	}

	return 1.0 / v, nil
}

package sim

import (
	"fmt"
	"math"
)

// Discrete is a basic model of a scalar, linear, discrete-time, dynamical system
type Discrete struct {
	System
}

// NewDiscrete creates a scalar linear discrete-time model based on the control theory equations.
//
//	x[n+1] = A*x[n] + w[n]
//	y[n] = H*x[n] + v[n]
//
// It returns error if either coefficient is not finite.
func NewDiscrete(A, H float64) (*Discrete, error) {
	if !finite(A) || !finite(H) {
		return nil, fmt.Errorf("invalid model coefficients: A=%v H=%v", A, H)
	}
	return &Discrete{System: System{A: A, H: H}}, nil
}

// Propagate returns the next internal state of the system given
// the current state x and process noise sample wd.
func (d *Discrete) Propagate(x, wd float64) float64 {
	return d.A*x + wd
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

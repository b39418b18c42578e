package sim

import (
	"fmt"
	"math"
)

// Continuous is a basic model of a scalar, linear, continuous-time, dynamical system
type Continuous struct {
	System
}

// NewContinuous creates a scalar linear continuous-time model
//
//	dx/dt = A*x + w
//	y = H*x + v
//
// It returns error if either coefficient is not finite.
func NewContinuous(A, H float64) (*Continuous, error) {
	if !finite(A) || !finite(H) {
		return nil, fmt.Errorf("invalid model coefficients: A=%v H=%v", A, H)
	}
	return &Continuous{System: System{A: A, H: H}}, nil
}

// ToDiscrete creates a discrete-time model from a continuous time model
// using Ts as the sampling time. The discrete transition coefficient is exp(A*Ts).
// It returns error if Ts is not positive.
func (ct *Continuous) ToDiscrete(Ts float64) (*Discrete, error) {
	if !(Ts > 0) || math.IsInf(Ts, 0) {
		return nil, fmt.Errorf("invalid sampling time: %v", Ts)
	}
	return NewDiscrete(math.Exp(ct.A*Ts), ct.H)
}

// DiscreteNoise returns the variance of the process noise accumulated over
// the sampling time Ts by white noise with spectral density qc.
func (ct *Continuous) DiscreteNoise(qc, Ts float64) (float64, error) {
	if !(Ts > 0) || math.IsInf(Ts, 0) {
		return 0, fmt.Errorf("invalid sampling time: %v", Ts)
	}

	if ct.A == 0 {
		return qc * Ts, nil
	}

	return qc * math.Expm1(2*ct.A*Ts) / (2 * ct.A), nil
}

// Propagate propagates internal state x by a timestep dt given process noise
// sample wd using Euler integration of dx/dt = A*x + wd.
func (ct *Continuous) Propagate(x, wd, dt float64) float64 {
	return x + dt*(ct.A*x+wd)
}

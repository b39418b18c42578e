package kf

import (
	"fmt"
	"math"
)

// SteadyStateCov returns the state estimate variance which KF configured with c
// converges to after enough updates. It solves the discrete algebraic Riccati
// equation for the predicted variance M
//
//	M = A*A*M*R/(H*H*M + R) + Q
//
// and returns the corrected variance M*R/(H*H*M + R).
// It returns error if either of the noise variances is negative, if the model
// is unobservable (H = 0) and unstable (|A| >= 1), or if the steady state
// innovation variance can not be inverted.
func SteadyStateCov(c Config) (float64, error) {
	if c.Q < 0 || c.R < 0 {
		return 0, fmt.Errorf("invalid noise variances: Q=%v R=%v", c.Q, c.R)
	}

	a2, h2 := c.A*c.A, c.H*c.H

	var m float64
	if c.H == 0 {
		if math.Abs(c.A) >= 1 {
			return 0, fmt.Errorf("unobservable model has no steady state: A=%v", c.A)
		}
		m = c.Q / (1 - a2)
	} else {
		// positive root of H^2*M^2 + b*M - Q*R = 0
		b := c.R - a2*c.R - c.Q*h2
		d := math.Sqrt(b*b + 4*h2*c.Q*c.R)
		if b > 0 {
			m = 2 * c.Q * c.R / (b + d)
		} else {
			m = (d - b) / (2 * h2)
		}
	}

	sInv, err := Invert(h2*m+c.R, InnovationScalar)
	if err != nil {
		return 0, err
	}

	return m * c.R * sInv, nil
}

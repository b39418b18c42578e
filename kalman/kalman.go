package kalman

import filter "github.com/milosgajdos/go-scalar-estimate"

// Kalman is Kalman Filter
type Kalman interface {
	// filter.Filter is dynamical system filter
	filter.Filter
	// Cov returns Kalman filter state variance
	Cov() float64
	// Gain returns Kalman gain for the current state variance
	Gain() (float64, error)
}

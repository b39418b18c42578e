package filter

// Filter is a scalar dynamical system filter.
type Filter interface {
	// Predict propagates the filter state to the next step
	Predict()
	// Update corrects the filter state using measurement z
	Update(z float64) error
	// Advance runs Predict followed by Update and returns the corrected state
	Advance(z float64) (float64, error)
	// Estimate returns current filter estimate
	Estimate() Estimate
}

// Propagator propagates internal state of the system to the next step
type Propagator interface {
	// Propagate propagates state x to the next step given process noise sample wd
	Propagate(x, wd float64) float64
}

// Observer observes external state (output) of the system
type Observer interface {
	// Observe observes state x given measurement noise sample wn
	Observe(x, wn float64) float64
}

// Model is a model of a scalar linear dynamical system
type Model interface {
	// Propagator is system propagator
	Propagator
	// Observer is system observer
	Observer
	// StateCoef returns state transition coefficient
	StateCoef() float64
	// OutputCoef returns observation coefficient
	OutputCoef() float64
}

// InitCond is initial state condition of the filter
type InitCond interface {
	// State returns initial filter state
	State() float64
	// Cov returns initial state variance
	Cov() float64
}

// Estimate is dynamical system filter estimate
type Estimate interface {
	// Val returns estimate value
	Val() float64
	// Cov returns estimate variance
	Cov() float64
}

// Noise is dynamical system noise
type Noise interface {
	// Mean returns noise mean
	Mean() float64
	// Cov returns noise variance
	Cov() float64
	// Sample returns a sample of the noise
	Sample() float64
	// Reset resets the noise
	Reset()
}

// Smoother is a fixed interval filter smoother
type Smoother interface {
	// Smooth returns smoothed estimates of filtered estimates est
	Smooth(est []Estimate) ([]Estimate, error)
}

package sim

// System defines a linear model of a scalar plant without control input.
//
// It contains the state transition (A) and observation (H) coefficients.
type System struct {
	// A is state transition coefficient
	A float64
	// H is observation coefficient
	H float64
}

// Observe observes external state of the system given internal state x.
// wn is added to the output as measurement noise.
func (s System) Observe(x, wn float64) float64 {
	return s.H*x + wn
}

// StateCoef returns state transition coefficient
func (s System) StateCoef() float64 {
	return s.A
}

// OutputCoef returns observation coefficient
func (s System) OutputCoef() float64 {
	return s.H
}

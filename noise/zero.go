package noise

import "fmt"

// Zero is zero noise i.e. no noise
type Zero struct{}

// NewZero creates new zero noise i.e. zero mean and zero variance.
func NewZero() *Zero {
	return &Zero{}
}

// Sample returns zero.
func (e *Zero) Sample() float64 {
	return 0
}

// Cov returns zero variance.
func (e *Zero) Cov() float64 {
	return 0
}

// Mean returns zero mean.
func (e *Zero) Mean() float64 {
	return 0
}

// Reset does nothing: it's here to implement filter.Noise interface
func (e *Zero) Reset() {}

// String implements the Stringer interface.
func (e *Zero) String() string {
	return fmt.Sprintf("Zero{\nMean=%v\nCov=%v\n}", e.Mean(), e.Cov())
}

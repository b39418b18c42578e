package sim

import (
	"fmt"

	filter "github.com/milosgajdos/go-scalar-estimate"
	"gonum.org/v1/gonum/floats"
)

// Times returns n sampling times spaced by dt starting at zero.
func Times(n int, dt float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = dt * float64(i)
	}

	return t
}

// Sample samples signal s at times t.
func Sample(s Signal, t []float64) []float64 {
	x := make([]float64, len(t))
	for i := range t {
		x[i] = s.At(t[i])
	}

	return x
}

// Measure returns measurements of truth perturbed by samples of noise wn.
// nil wn returns a copy of truth.
func Measure(truth []float64, wn filter.Noise) []float64 {
	z := make([]float64, len(truth))
	copy(z, truth)

	if wn == nil {
		return z
	}

	for i := range z {
		z[i] += wn.Sample()
	}

	return z
}

// Simulate propagates model m from initial state x0 for n steps.
// It returns the true internal states and their observations.
// Process noise wd perturbs the propagation and measurement noise wn the observations;
// either of them can be nil.
func Simulate(m filter.Model, x0 float64, n int, wd, wn filter.Noise) (x, z []float64) {
	x = make([]float64, n)
	z = make([]float64, n)

	state := x0
	for i := 0; i < n; i++ {
		state = m.Propagate(state, sample(wd))
		x[i] = state
		z[i] = m.Observe(state, sample(wn))
	}

	return x, z
}

func sample(n filter.Noise) float64 {
	if n == nil {
		return 0
	}
	return n.Sample()
}

// Run runs filter f for every measurement in z and returns the filter estimates.
// It stops at the first failed step and returns the estimates computed until
// then along with the error.
func Run(f filter.Filter, z []float64) ([]filter.Estimate, error) {
	est := make([]filter.Estimate, 0, len(z))

	for i := range z {
		if _, err := f.Advance(z[i]); err != nil {
			return est, fmt.Errorf("filter step %d failed: %w", i, err)
		}
		est = append(est, f.Estimate())
	}

	return est, nil
}

// Vals returns values of estimates est.
func Vals(est []filter.Estimate) []float64 {
	v := make([]float64, len(est))
	for i := range est {
		v[i] = est[i].Val()
	}

	return v
}

// MeanAbsErr returns mean absolute error between a and b.
// It returns error if a and b are empty or of different length.
func MeanAbsErr(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("invalid data lengths: %d != %d", len(a), len(b))
	}

	return floats.Distance(a, b, 1) / float64(len(a)), nil
}

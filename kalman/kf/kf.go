package kf

import (
	filter "github.com/milosgajdos/go-scalar-estimate"
	"github.com/milosgajdos/go-scalar-estimate/estimate"
	"github.com/milosgajdos/go-scalar-estimate/kalman"
)

var _ kalman.Kalman = (*KF)(nil)

// Config is KF configuration
type Config struct {
	// A is state transition coefficient
	A float64
	// H is observation coefficient
	H float64
	// Q is process noise variance
	Q float64
	// R is measurement noise variance
	R float64
	// Init is initial condition; zero state and zero variance if nil
	Init filter.InitCond
}

// KF is scalar Kalman Filter without control input.
// KF is not safe for concurrent use. Copying a KF value clones the filter.
type KF struct {
	// x is state estimate
	x float64
	// p is state estimate variance
	p float64
	// a is state transition coefficient
	a float64
	// h is observation coefficient
	h float64
	// q is process noise variance
	q float64
	// r is measurement noise variance
	r float64
}

// New creates new KF and returns it.
// Neither the coefficients nor the noise variances are validated:
// negative variances are a caller error and non-finite values propagate
// through the filter arithmetic.
func New(c Config) *KF {
	k := &KF{
		a: c.A,
		h: c.H,
		q: c.Q,
		r: c.R,
	}

	if c.Init != nil {
		k.x = c.Init.State()
		k.p = c.Init.Cov()
	}

	return k
}

// NewFromModel creates new KF for model m with initial condition init,
// process noise q and measurement noise r. Only the noise variances are used.
// nil init starts the filter from zero state and variance; nil noise has zero variance.
func NewFromModel(m filter.Model, init filter.InitCond, q, r filter.Noise) *KF {
	c := Config{
		A:    m.StateCoef(),
		H:    m.OutputCoef(),
		Init: init,
	}

	if q != nil {
		c.Q = q.Cov()
	}

	if r != nil {
		c.R = r.Cov()
	}

	return New(c)
}

// Predict propagates the state estimate and its variance to the next step.
func (k *KF) Predict() {
	k.x = k.a * k.x
	k.p = k.a*k.p*k.a + k.q
}

// Update corrects the state estimate using measurement z.
// It returns FailedScalarInverseError if the innovation variance can not be inverted,
// in which case the filter state is left unchanged.
func (k *KF) Update(z float64) error {
	y, s := k.Innovation(z)

	sInv, err := Invert(s, InnovationScalar)
	if err != nil {
		return err
	}

	gain := k.p * k.h * sInv
	k.x += gain * y
	k.p *= 1.0 - gain*k.h

	return nil
}

// Advance runs one step of KF for measurement z and returns the corrected state.
// If the update fails the state is left at its predicted value and the error is returned.
func (k *KF) Advance(z float64) (float64, error) {
	k.Predict()

	if err := k.Update(z); err != nil {
		return k.x, err
	}

	return k.x, nil
}

// Innovation returns pre-fit residual y of measurement z and its variance s
// for the current state. It does not modify the filter.
func (k *KF) Innovation(z float64) (y, s float64) {
	y = z - k.h*k.x
	s = k.h*k.p*k.h + k.r

	return y, s
}

// Gain returns Kalman gain which the next update applies given the current state variance.
// It returns FailedScalarInverseError if the innovation variance can not be inverted.
func (k *KF) Gain() (float64, error) {
	_, s := k.Innovation(0)

	sInv, err := Invert(s, InnovationScalar)
	if err != nil {
		return 0, err
	}

	return k.p * k.h * sInv, nil
}

// State returns KF state estimate
func (k *KF) State() float64 {
	return k.x
}

// Cov returns KF state estimate variance
func (k *KF) Cov() float64 {
	return k.p
}

// Estimate returns current KF estimate
func (k *KF) Estimate() filter.Estimate {
	return estimate.NewBaseWithCov(k.x, k.p)
}

// Config returns KF configuration with the current state as initial condition.
func (k *KF) Config() Config {
	return Config{
		A:    k.a,
		H:    k.h,
		Q:    k.q,
		R:    k.r,
		Init: estimate.NewBaseWithCov(k.x, k.p),
	}
}

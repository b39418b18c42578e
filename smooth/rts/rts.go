package rts

import (
	"fmt"

	filter "github.com/milosgajdos/go-scalar-estimate"
	"github.com/milosgajdos/go-scalar-estimate/estimate"
	"github.com/milosgajdos/go-scalar-estimate/kalman/kf"
	"github.com/milosgajdos/go-scalar-estimate/smooth"
)

var _ smooth.RTS = (*RTS)(nil)

// PredictedCovScalar names the predicted variance inverted by the smoother
const PredictedCovScalar = "predicted state variance `P`"

// RTS is Rauch-Tung-Striebel smoother
type RTS struct {
	// a is state transition coefficient
	a float64
	// q is process noise variance
	q float64
}

// New creates new RTS for model m and process noise q and returns it.
// nil q means no process noise.
// It returns error if m is nil.
func New(m filter.Model, q filter.Noise) (*RTS, error) {
	if m == nil {
		return nil, fmt.Errorf("invalid model: %v", m)
	}

	s := &RTS{a: m.StateCoef()}
	if q != nil {
		s.q = q.Cov()
	}

	return s, nil
}

// Smooth implements Rauch-Tung-Striebel smoothing algorithm.
// It uses filtered estimates est ordered by time to compute smoothed estimates and returns them.
// The last smoothed estimate equals the last filtered one.
// It returns error if est is empty or if a predicted variance can not be inverted.
func (s *RTS) Smooth(est []filter.Estimate) ([]filter.Estimate, error) {
	if len(est) == 0 {
		return nil, fmt.Errorf("invalid estimates size: %d", len(est))
	}

	n := len(est)
	sx := make([]filter.Estimate, n)

	// smoothed state and variance
	x, p := est[n-1].Val(), est[n-1].Cov()
	sx[n-1] = estimate.NewBaseWithCov(x, p)

	for i := n - 2; i >= 0; i-- {
		xk, pk := est[i].Val(), est[i].Cov()

		// propagate filtered estimate to the next step
		xk1 := s.a * xk
		pk1 := s.a*pk*s.a + s.q

		pInv, err := kf.Invert(pk1, PredictedCovScalar)
		if err != nil {
			return nil, fmt.Errorf("smoothing step %d failed: %w", i, err)
		}

		// smoother gain
		c := pk * s.a * pInv

		x = xk + c*(x-xk1)
		p = pk + c*c*(p-pk1)

		sx[i] = estimate.NewBaseWithCov(x, p)
	}

	return sx, nil
}

package estimate

import (
	"fmt"
	"math"
)

// Base is base estimate
type Base struct {
	// val is estimated value
	val float64
	// cov is estimated variance
	cov float64
}

// NewBase returns base estimate given val with zero variance
func NewBase(val float64) *Base {
	return &Base{
		val: val,
	}
}

// NewBaseWithCov returns base estimate given val and its variance cov
func NewBaseWithCov(val, cov float64) *Base {
	return &Base{
		val: val,
		cov: cov,
	}
}

// Val returns estimated value
func (b *Base) Val() float64 {
	return b.val
}

// State returns estimated value.
// It lets an estimate serve as filter.InitCond of a new filter.
func (b *Base) State() float64 {
	return b.val
}

// Cov returns variance of the estimate
func (b *Base) Cov() float64 {
	return b.cov
}

// Interval returns the k-sigma interval around the estimated value.
// Both bounds are NaN if the variance is negative.
func (b *Base) Interval(k float64) (lo, hi float64) {
	d := k * math.Sqrt(b.cov)
	return b.val - d, b.val + d
}

// String implements the Stringer interface.
func (b *Base) String() string {
	return fmt.Sprintf("Base{Val=%v Cov=%v}", b.val, b.cov)
}

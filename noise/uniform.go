package noise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is zero mean noise distributed uniformly on [-bound, bound]
type Uniform struct {
	dist  distuv.Uniform
	bound float64
	s     seeder
}

// NewUniform creates new Uniform noise on [-bound, bound] seeded with the current time.
// It returns error if bound is negative, infinite or NaN.
func NewUniform(bound float64) (*Uniform, error) {
	return newUniform(bound, seeder{})
}

// NewUniformWithSeed creates new Uniform noise on [-bound, bound] whose samples
// are drawn from a source seeded with seed.
func NewUniformWithSeed(bound float64, seed uint64) (*Uniform, error) {
	return newUniform(bound, seeder{seed: seed, fixed: true})
}

func newUniform(bound float64, s seeder) (*Uniform, error) {
	if !(bound >= 0) || math.IsInf(bound, 0) {
		return nil, fmt.Errorf("invalid Uniform bound: %v", bound)
	}

	u := &Uniform{
		bound: bound,
		s:     s,
	}
	u.Reset()

	return u, nil
}

// Sample generates a sample from Uniform noise and returns it.
func (u *Uniform) Sample() float64 {
	return u.dist.Rand()
}

// Cov returns variance of Uniform noise: bound^2/3.
func (u *Uniform) Cov() float64 {
	return u.bound * u.bound / 3
}

// Mean returns Uniform mean which is always zero.
func (u *Uniform) Mean() float64 {
	return 0
}

// Reset resets Uniform noise random source.
func (u *Uniform) Reset() {
	u.dist = distuv.Uniform{
		Min: -u.bound,
		Max: u.bound,
		Src: u.s.source(),
	}
}

// String implements the Stringer interface.
func (u *Uniform) String() string {
	return fmt.Sprintf("Uniform{\nMax=%v\nCov=%v\n}", u.bound, u.Cov())
}

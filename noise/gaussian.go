package noise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is gaussian noise
type Gaussian struct {
	// dist is a univariate normal distribution
	dist distuv.Normal
	// mean is Gaussian mean
	mean float64
	// cov is Gaussian variance
	cov float64
	// s seeds dist random source
	s seeder
}

// NewGaussian creates new Gaussian noise with given mean and variance cov.
// The noise is seeded with the current time.
// It returns error if cov is negative or NaN.
func NewGaussian(mean, cov float64) (*Gaussian, error) {
	return newGaussian(mean, cov, seeder{})
}

// NewGaussianWithSeed creates new Gaussian noise with given mean and variance cov
// whose samples are drawn from a source seeded with seed.
// Two Gaussians created with the same parameters produce identical samples.
// It returns error if cov is negative or NaN.
func NewGaussianWithSeed(mean, cov float64, seed uint64) (*Gaussian, error) {
	return newGaussian(mean, cov, seeder{seed: seed, fixed: true})
}

func newGaussian(mean, cov float64, s seeder) (*Gaussian, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("invalid Gaussian mean: %v", mean)
	}

	if !(cov >= 0) || math.IsInf(cov, 0) {
		return nil, fmt.Errorf("invalid Gaussian variance: %v", cov)
	}

	g := &Gaussian{
		mean: mean,
		cov:  cov,
		s:    s,
	}
	g.Reset()

	return g, nil
}

// Sample generates a sample from Gaussian noise and returns it.
func (g *Gaussian) Sample() float64 {
	return g.dist.Rand()
}

// Cov returns variance of Gaussian noise.
func (g *Gaussian) Cov() float64 {
	return g.cov
}

// Mean returns Gaussian mean.
func (g *Gaussian) Mean() float64 {
	return g.mean
}

// Reset resets Gaussian noise random source.
// Noise created with a fixed seed replays its samples from the start.
func (g *Gaussian) Reset() {
	g.dist = distuv.Normal{
		Mu:    g.mean,
		Sigma: math.Sqrt(g.cov),
		Src:   g.s.source(),
	}
}

// String implements the Stringer interface.
func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian{\nMean=%v\nCov=%v\n}", g.mean, g.cov)
}

package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestNewGaussian(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		mean float64
		cov  float64
		ok   bool
	}{
		{mean: 2, cov: 1, ok: true},
		{mean: 0, cov: 0, ok: true},
		{mean: 0, cov: -1, ok: false},
		{mean: 0, cov: math.NaN(), ok: false},
		{mean: 0, cov: math.Inf(1), ok: false},
		{mean: math.NaN(), cov: 1, ok: false},
	} {
		g, err := NewGaussian(test.mean, test.cov)
		if test.ok {
			assert.NotNil(g)
			assert.NoError(err)
			continue
		}
		assert.Nil(g)
		assert.Error(err)
	}
}

func TestMeanCov(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGaussian(2, 0.5)
	assert.NotNil(g)
	assert.NoError(err)

	assert.Equal(2.0, g.Mean())
	assert.Equal(0.5, g.Cov())
}

func TestSample(t *testing.T) {
	assert := assert.New(t)

	mean, cov := 0.2294, 0.075*0.075
	g, err := NewGaussianWithSeed(mean, cov, 42)
	assert.NotNil(g)
	assert.NoError(err)

	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = g.Sample()
	}

	m, v := stat.MeanVariance(samples, nil)
	assert.InDelta(mean, m, 0.005)
	assert.InDelta(cov, v, 0.0005)

	// zero variance collapses onto the mean
	g, err = NewGaussianWithSeed(1.5, 0, 42)
	assert.NoError(err)
	assert.Equal(1.5, g.Sample())
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGaussianWithSeed(0, 1, 7)
	assert.NotNil(g)
	assert.NoError(err)

	first := []float64{g.Sample(), g.Sample(), g.Sample()}
	g.Reset()
	second := []float64{g.Sample(), g.Sample(), g.Sample()}
	assert.Equal(first, second)

	h, err := NewGaussianWithSeed(0, 1, 7)
	assert.NoError(err)
	assert.Equal(first[0], h.Sample())

	g, err = NewGaussian(0, 1)
	assert.NoError(err)

	sample1 := g.Sample()
	g.Reset()
	sample2 := g.Sample()
	assert.NotEqual(sample1, sample2)
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	str := `Gaussian{
Mean=2
Cov=0.25
}`
	g, err := NewGaussian(2, 0.25)
	assert.NotNil(g)
	assert.NoError(err)
	assert.Equal(str, g.String())
}

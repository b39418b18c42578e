package sim

import (
	"math"
	"testing"

	filter "github.com/milosgajdos/go-scalar-estimate"
	"github.com/stretchr/testify/assert"
)

func TestInitCond(t *testing.T) {
	assert := assert.New(t)

	var ic filter.InitCond = NewInitCond(1.0, 0.25)
	assert.Equal(1.0, ic.State())
	assert.Equal(0.25, ic.Cov())
	assert.Equal("InitCond{State=1 Cov=0.25}", NewInitCond(1.0, 0.25).String())
}

func TestDiscrete(t *testing.T) {
	assert := assert.New(t)

	d, err := NewDiscrete(0.9, 2.0)
	assert.NotNil(d)
	assert.NoError(err)

	var m filter.Model = d

	assert.Equal(0.9, m.StateCoef())
	assert.Equal(2.0, m.OutputCoef())
	assert.InDelta(1.9, m.Propagate(1.0, 1.0), 1e-12)
	assert.InDelta(2.5, m.Observe(1.0, 0.5), 1e-12)

	for _, c := range [][2]float64{
		{math.NaN(), 1},
		{1, math.Inf(-1)},
	} {
		d, err := NewDiscrete(c[0], c[1])
		assert.Nil(d)
		assert.Error(err)
	}
}

func TestContinuous(t *testing.T) {
	assert := assert.New(t)

	c, err := NewContinuous(-0.5, 1.0)
	assert.NotNil(c)
	assert.NoError(err)

	d, err := c.ToDiscrete(0.1)
	assert.NoError(err)
	assert.InDelta(math.Exp(-0.05), d.StateCoef(), 1e-12)
	assert.Equal(1.0, d.OutputCoef())

	_, err = c.ToDiscrete(0)
	assert.Error(err)

	q, err := c.DiscreteNoise(2.0, 0.1)
	assert.NoError(err)
	assert.InDelta(2.0*(1-math.Exp(-0.1)), q, 1e-12)

	_, err = c.DiscreteNoise(2.0, -1)
	assert.Error(err)

	// Euler step
	assert.InDelta(0.95+0.1*0.2, c.Propagate(1.0, 0.2, 0.1), 1e-12)

	// pure integrator
	c, err = NewContinuous(0, 1)
	assert.NoError(err)
	d, err = c.ToDiscrete(0.5)
	assert.NoError(err)
	assert.Equal(1.0, d.StateCoef())
	q, err = c.DiscreteNoise(3, 0.5)
	assert.NoError(err)
	assert.InDelta(1.5, q, 1e-12)

	c, err = NewContinuous(math.NaN(), 1)
	assert.Nil(c)
	assert.Error(err)
}

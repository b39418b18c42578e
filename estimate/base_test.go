package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBase(t *testing.T) {
	assert := assert.New(t)

	b := NewBase(1.5)
	assert.NotNil(b)
	assert.Equal(1.5, b.Val())
	assert.Equal(0.0, b.Cov())

	b = NewBaseWithCov(1.5, 0.25)
	assert.NotNil(b)
	assert.Equal(1.5, b.Val())
	assert.Equal(0.25, b.Cov())
	assert.Equal(b.Val(), b.State())
}

func TestInterval(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		val float64
		cov float64
		k   float64
		lo  float64
		hi  float64
	}{
		{val: 1.0, cov: 0.25, k: 2, lo: 0.0, hi: 2.0},
		{val: -3.0, cov: 4.0, k: 1, lo: -5.0, hi: -1.0},
		{val: 2.0, cov: 0.0, k: 3, lo: 2.0, hi: 2.0},
	} {
		lo, hi := NewBaseWithCov(test.val, test.cov).Interval(test.k)
		assert.InDelta(test.lo, lo, 1e-12)
		assert.InDelta(test.hi, hi, 1e-12)
	}

	lo, hi := NewBaseWithCov(1.0, -1.0).Interval(2)
	assert.True(math.IsNaN(lo))
	assert.True(math.IsNaN(hi))
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Base{Val=2 Cov=0.5}", NewBaseWithCov(2, 0.5).String())
}

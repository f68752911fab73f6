package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTemperatureKelvin(t *testing.T) {
	// runtime float64 arithmetic
	offset, celsius := 273.15, 25.0
	assert.Equal(t, offset+celsius, TemperatureKelvin)
	assert.True(t, scalar.EqualWithinAbs(TemperatureKelvin, 298.15, 1e-12))
}

func TestRT(t *testing.T) {
	r, tk := 1.987204118e-3, 298.15
	assert.Equal(t, r*tk, RT)
	assert.True(t, scalar.EqualWithinAbs(RT, 0.5924849077817, 1e-12), "RT = %v", RT)
}

func TestRTDerivation(t *testing.T) {
	r, tk := IdealGasConstantKcal, TemperatureKelvin
	assert.Equal(t, r*tk, RT)
	assert.True(t, scalar.EqualWithinULP(r*(ZeroCelsiusInKelvin+TemperatureCelsius), RT, 0))
}

func TestFittingPenalty(t *testing.T) {
	assert.Equal(t, 1e10, FittingPenalty)
	assert.Greater(t, FittingPenalty, RT)
}

func TestBaseValues(t *testing.T) {
	assert.Equal(t, 1.987204118e-3, IdealGasConstantKcal)
	assert.Equal(t, 25.0, TemperatureCelsius)
	assert.Equal(t, 273.15, ZeroCelsiusInKelvin)
}

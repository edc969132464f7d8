package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	assert.Equal(t, 2.5, Average([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Average(nil))
}

func TestMultiply(t *testing.T) {
	a := []float64{1, 2, 3}
	assert.Equal(t, []float64{2, 0, 9}, Multiply(a, []float64{2, 0, 3}))
	assert.Equal(t, []float64{1, 2, 3}, a)
}

func TestDivide(t *testing.T) {
	out := Divide([]float64{1, 2, 3}, []float64{2, 0, 3}, -1)
	assert.Equal(t, []float64{0.5, -1, 1}, out)
}

func TestMinMax(t *testing.T) {
	outMin, outMax := MinMax([]float64{5, 3, 4, 1, 2, 6}, 3)
	assert.Equal(t, []float64{0, 0, 3, 1, 1, 1}, outMin)
	assert.Equal(t, []float64{0, 0, 5, 4, 4, 6}, outMax)
}

func TestRound(t *testing.T) {
	tests := []struct {
		value  float64
		places int
		want   float64
	}{
		{3.125, 2, 3.12},
		{3.135, 2, 3.13},
		{6.015, 2, 6.01},
		{2.675, 2, 2.67},
		{0.125, 2, 0.12},
		{1.005, 2, 1.0},
		{14333.333333, 2, 14333.33},
		{0.28571428, 4, 0.2857},
		{-0.001, 2, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.value, tt.places), "Round(%v, %d)", tt.value, tt.places)
	}
}

func TestSliceRound(t *testing.T) {
	assert.Equal(t, Slice{1.12, 2.0}, New(1.1249, 1.999).Round(2))
}

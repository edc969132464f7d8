package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bbta/pkg/datatype/floats"
)

var (
	swingPrices = floats.New(5, 4, 3, 2, 1, 3, 4, 5, 6, 7)
	swingHigh   = floats.New(5, 7, 4, 2, 2, 3, 5, 7, 7, 7)
	swingLow    = floats.New(4, 3, 3, 2, 1, 1, 3, 5, 5, 6)
)

func TestADX(t *testing.T) {
	tests := []struct {
		name              string
		prices, high, low floats.Slice
		want              floats.Slice
	}{
		{
			name:   "rising",
			prices: oneToTen,
			high:   floats.New(2, 3, 4, 5, 6, 7, 8, 9, 10, 11),
			low:    floats.New(0, 1, 2, 3, 4, 5, 6, 7, 8, 9),
			want:   floats.New(0, 0, 0, 100, 100, 100, 100, 100, 100, 100),
		},
		{
			name:   "falling",
			prices: floats.New(10, 9, 8, 7, 6, 5, 4, 3, 2, 1),
			high:   floats.New(11, 10, 9, 8, 7, 6, 5, 4, 3, 2),
			low:    floats.New(9, 8, 7, 6, 5, 4, 3, 2, 1, 0),
			want:   floats.New(0, 0, 0, 100, 100, 100, 100, 100, 100, 100),
		},
		{
			name:   "swing",
			prices: swingPrices,
			high:   swingHigh,
			low:    swingLow,
			want:   floats.New(0, 0, 0, 33.36, 4.0, 16.35, 44.57, 64.49, 70.78, 73.75),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewADX(tt.prices, tt.high, tt.low, 3).Calculate()
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-9)
		})
	}
}

func TestADX_Flat(t *testing.T) {
	flat := floats.New(1, 1, 1, 1, 1, 1)
	got, err := NewADX(flat, flat, flat, 2).Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.Zeros(6), got)
}

func TestADX_Validate(t *testing.T) {
	_, err := NewADX([]float64{1, 2, 3}, []float64{1, 2}, []float64{1, 2, 3}, 2).Calculate()
	assert.EqualError(t, err, "`prices`, `high`, `low` must have the same length")
}

func TestCCI(t *testing.T) {
	Delta := 0.011
	high := floats.New(24.20, 24.07, 24.04, 23.87, 23.67, 23.59, 23.80, 23.80, 24.30, 24.15, 24.05, 24.06, 23.88, 25.14, 25.20, 25.07, 25.22, 25.37, 25.36, 25.26, 24.82, 24.44, 24.65, 24.84, 24.75, 24.51, 24.68, 24.67, 23.84, 24.30)
	low := floats.New(23.85, 23.72, 23.64, 23.37, 23.46, 23.18, 23.40, 23.57, 24.05, 23.77, 23.60, 23.84, 23.64, 23.94, 24.74, 24.77, 24.90, 24.93, 24.96, 24.93, 24.21, 24.21, 24.43, 24.44, 24.20, 24.25, 24.21, 24.15, 23.63, 23.76)
	prices := floats.New(23.89, 23.95, 23.67, 23.78, 23.50, 23.32, 23.75, 23.79, 24.14, 23.81, 23.78, 23.86, 23.70, 24.96, 24.88, 24.96, 25.18, 25.07, 25.27, 25.00, 24.46, 24.28, 24.62, 24.58, 24.53, 24.35, 24.34, 24.23, 23.76, 24.20)

	got, err := NewCCI(prices, high, low, 20, DefaultCCIConstant).Calculate()
	require.NoError(t, err)

	want := append(floats.Zeros(19), 101.19, 30.41, 6.06, 33.94, 35.22, 13.61, -10.61, -11.67, -29.63, -131.58, -73.87)
	assert.InDeltaSlice(t, want, got, Delta)
}

func TestCCI_Flat(t *testing.T) {
	flat := floats.New(5, 5, 5, 5)
	got, err := NewCCIDefault(flat, flat, flat).Calculate()
	assert.Error(t, err, "default period is longer than the series")
	assert.Nil(t, got)

	got, err = NewCCI(flat, flat, flat, 2, DefaultCCIConstant).Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.Zeros(4), got)

	_, err = NewCCI(flat, flat, flat, 2, 0).Calculate()
	assert.EqualError(t, err, "`constant` must be greater than 0")
}

func TestDPO(t *testing.T) {
	got, err := NewDPO(oneToTen, 4).Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.New(0, 0, 0, 0, 0, 0, 4.5, 4.5, 4.5, 4.5), got)
}

func TestMassIndex(t *testing.T) {
	got, err := NewMassIndex(swingPrices, swingHigh, swingLow, 3, 3).Calculate()
	require.NoError(t, err)
	assert.InDeltaSlice(t, floats.New(0, 0, 3.43, 3.1, 2.51, 2.65, 3.13, 3.39, 3.32, 3.06), got, 1e-9)
}

func TestMassIndex_Validate(t *testing.T) {
	_, err := NewMassIndex(swingPrices, swingHigh, swingLow, 0, 11).Calculate()
	assert.EqualError(t, err, "`miPeriod` must be greater than 0, "+
		"`emaPeriod` cannot be greater than the length of the series, period=11 length=10")
}

func TestVortex(t *testing.T) {
	plusVI, minusVI, err := NewVortex(swingPrices, swingHigh, swingLow, 3).Calculate()
	require.NoError(t, err)
	assert.InDeltaSlice(t, floats.New(0, 0, 0.8, 0.83, 0.67, 0.75, 1.2, 1.43, 1.43, 1.33), plusVI, 1e-9)
	assert.InDeltaSlice(t, floats.New(0, 0, 1.2, 1.33, 2.33, 1.0, 0.4, 0.14, 0.29, 0.5), minusVI, 1e-9)
}

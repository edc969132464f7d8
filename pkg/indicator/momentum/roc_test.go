package momentum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bbta/pkg/datatype/floats"
)

func TestROC(t *testing.T) {
	got, err := NewROC(floats.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), 3).Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.New(0, 0, 0, 3, 1.5, 1, 0.75, 0.6, 0.5, 0.43), got)
}

func TestROC_ZeroBase(t *testing.T) {
	got, err := NewROC(floats.New(0, 2, 0, 4), 1).Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.New(0, 0, -1, 0), got)
}

func TestROC_Validate(t *testing.T) {
	_, err := NewROC(floats.New(1, 2), -1).Calculate()
	assert.EqualError(t, err, "`period` must be greater than 0")
}

func TestRSI(t *testing.T) {
	prices := loadSeries(`[44.34,44.09,44.15,43.61,44.33,44.83,45.10,45.42,45.84,46.08,45.89,46.03,45.61,46.28,46.28,46.00,46.03,46.41,46.22,45.64,46.21,46.25,45.71,46.45,45.78,45.35,44.03,44.18,44.22,44.57,43.42,42.66,43.13]`)
	rsi := NewRSI(prices, 14)

	got, err := rsi.Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.Zeros(14), got[:14])
	assert.Equal(t, 70.59, got[14])
	assertSeries(t, `[0,0,0,0,0,0,0,0,0,0,0,0,0,0,70.59,70.59,70.59,81.24,72.38,60.00,62.55,60.00,48.45,52.83,48.72,43.50,37.11,32.43,32.43,37.11,31.51,25.93,30.56]`, got)

	again, err := rsi.Calculate()
	require.NoError(t, err)
	assert.Equal(t, got, again)

	gain, err := rsi.Gain()
	require.NoError(t, err)
	assert.Equal(t, 0.0, gain[0])
	assert.Equal(t, 0.06, gain[2])

	loss, err := rsi.Loss()
	require.NoError(t, err)
	assert.Equal(t, 0.25, loss[1])
}

func TestRSI_NoLoss(t *testing.T) {
	got, err := NewRSI(floats.New(1, 2, 3, 4, 4, 4, 4), 2).Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.New(0, 0, 100, 100, 100, 50, 50), got)
}

func TestRSI_Reset(t *testing.T) {
	rsi := NewRSI(floats.New(1, 2, 3, 4), 2)
	first, err := rsi.Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.New(0, 0, 100, 100), first)

	rsi.Reset(floats.New(4, 3, 2, 1), 2)
	second, err := rsi.Calculate()
	require.NoError(t, err)
	assert.Equal(t, floats.New(0, 0, 0, 0), second)
}

package visgraph

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bbta/pkg/indicator"
)

var (
	closes = []float64{23.89, 23.95, 23.67, 23.78, 23.50, 23.32, 23.75, 23.79, 24.14, 23.81, 23.78, 23.86, 23.70, 24.96, 24.88, 24.96, 25.18, 25.07, 25.27, 25.00, 24.46, 24.28, 24.62, 24.58, 24.53, 24.35, 24.34, 24.23, 23.76, 24.20}
	highs  = []float64{24.20, 24.07, 24.04, 23.87, 23.67, 23.59, 23.80, 23.80, 24.30, 24.15, 24.05, 24.06, 23.88, 25.14, 25.20, 25.07, 25.22, 25.37, 25.36, 25.26, 24.82, 24.44, 24.65, 24.84, 24.75, 24.51, 24.68, 24.67, 23.84, 24.30}
)

func TestCoarseGrain(t *testing.T) {
	assert.Equal(t, []float64{2, 5, 7}, []float64(CoarseGrain([]float64{1, 2, 3, 4, 5, 6, 7}, 3)))
	assert.Equal(t, []float64{1.5, 3.5}, []float64(CoarseGrain([]float64{1, 2, 3, 4}, 2)))

	series := []float64{1, 2, 3}
	same := CoarseGrain(series, 1)
	assert.Equal(t, series, []float64(same))
	same[0] = 100
	assert.Equal(t, 1.0, series[0])
}

func TestGoodmanKruskalGamma(t *testing.T) {
	tests := []struct {
		name  string
		x, y  []int
		gamma float64
	}{
		{"one discordant pair", []int{1, 2, 3, 4}, []int{1, 3, 2, 4}, 2.0 / 3.0},
		{"reversed", []int{1, 2, 3}, []int{3, 2, 1}, -1},
		{"all tied", []int{1, 1, 1}, []int{1, 2, 3}, 0},
		{"ties excluded", []int{1, 1, 2}, []int{1, 2, 3}, 1},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gamma, err := GoodmanKruskalGamma(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.gamma, gamma, 1e-12)
		})
	}

	_, err := GoodmanKruskalGamma([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestSignificance(t *testing.T) {
	tests := []struct {
		r float64
		n int
		p float64
	}{
		{0.5, 3, 2.0 / 3.0},
		{0.5, 4, 0.5},
		{-0.5, 4, 0.5},
		{0.5, 10, 0.14111328125},
		{0, 10, 1},
	}

	for _, tt := range tests {
		p, err := Significance(tt.r, tt.n)
		require.NoError(t, err)
		assert.InDelta(t, tt.p, p, 1e-9, "r=%f n=%d", tt.r, tt.n)
	}

	_, err := Significance(0.5, 2)
	assert.Error(t, err)

	_, err = Significance(1, 10)
	assert.Error(t, err)

	_, err = Significance(-1, 10)
	assert.Error(t, err)
}

func TestMultiscale(t *testing.T) {
	result, err := Multiscale(closes, highs, 5)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, result.Scales)
	assert.InDeltaSlice(t, []float64{0.7253218884120172, 0.9032258064516129, 0.7647058823529411, 1, 1}, []float64(result.Gamma), 1e-9)
	// a perfect correlation has no finite t statistic and reports a p-value of 1
	assert.InDeltaSlice(t, []float64{5.773475584133068e-06, 3.968405706071377e-06, 0.009982232408301431, 1, 1}, []float64(result.PValue), 1e-8)

	var buf bytes.Buffer
	result.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "SCALE")
	assert.Contains(t, out, "0.7253")
	assert.Contains(t, out, "***")
	assert.Contains(t, out, "1.0000")
}

func TestMultiscale_Validate(t *testing.T) {
	_, err := Multiscale(closes, highs[:10], 31)
	require.Error(t, err)

	var verr *indicator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Multiscale", verr.Indicator)
	assert.Equal(t, []string{
		"`x`, `y` must have the same length",
		"`timescale` cannot be greater than the length of the series, period=31 length=30",
	}, verr.Messages)

	_, err = Multiscale(closes, highs, 0)
	assert.Error(t, err)
}

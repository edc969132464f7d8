package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/c9s/bbta/pkg/indicator"
)

var closes = []float64{23.89, 23.95, 23.67, 23.78, 23.50, 23.32, 23.75, 23.79, 24.14, 23.81, 23.78, 23.86, 23.70, 24.96, 24.88, 24.96, 25.18, 25.07, 25.27, 25.00, 24.46, 24.28, 24.62, 24.58, 24.53, 24.35, 24.34, 24.23, 23.76, 24.20}

func TestDefault_Validate(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestConfig_Validate(t *testing.T) {
	config := Default()
	config.MACD.FastPeriod = 30
	config.RSI.Period = 0
	config.Bollinger.NumStd = -1
	config.KST.ROCPeriods = [4]int{10, 10, 20, 30}
	config.MovingAverage.Type = indicator.MAType(9)

	err := config.Validate()
	require.Error(t, err)

	var messages []string
	for _, e := range multierr.Errors(err) {
		messages = append(messages, e.Error())
	}

	assert.Equal(t, []string{
		"`movingAverage.type` is not a supported moving average type: MAType(9)",
		"`macd.fastPeriod` must be less than `macd.slowPeriod`",
		"`rsi.period` must be greater than 0",
		"`bollinger.numStd` must be greater than 0",
		"`kst.rocPeriods[0]`, `kst.rocPeriods[1]`, `kst.rocPeriods[2]`, `kst.rocPeriods[3]` must be strictly increasing",
	}, messages)
}

func TestSettings_New(t *testing.T) {
	config := Default()

	config.MovingAverage = MovingAverageSettings{Type: indicator.MATypeSimple, Period: 3}
	ma, err := config.MovingAverage.New([]float64{1, 2, 3, 4, 5}).Calculate()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 2, 3, 4}, []float64(ma))

	config.MovingAverage.Type = indicator.MATypeExponential
	ma, err = config.MovingAverage.New([]float64{1, 2, 3, 4, 5}).Calculate()
	require.NoError(t, err)
	assert.Equal(t, 1.0, ma[0])

	rsi, err := config.RSI.New(closes).Calculate()
	require.NoError(t, err)
	assert.Len(t, rsi, len(closes))

	macd, signal, err := config.MACD.New(closes).Calculate()
	require.NoError(t, err)
	assert.Len(t, macd, len(closes))
	assert.Len(t, signal, len(closes))

	config.MACD.SlowPeriod = 40
	_, _, err = config.MACD.New(closes).Calculate()
	assert.Error(t, err)

	upper, middle, lower, err := config.Bollinger.New(closes).Calculate()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, upper[len(upper)-1], middle[len(middle)-1])
	assert.LessOrEqual(t, lower[len(lower)-1], middle[len(middle)-1])

	result, err := MultiscaleSettings{Timescale: 3}.Run(closes, closes)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result.Scales)
}

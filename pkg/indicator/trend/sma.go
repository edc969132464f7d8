package trend

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultSMAPeriod = 20

/*
SMA implements the simple moving average.

	sma[i] = mean(prices[i-period+1 .. i])

The first period-1 values are 0.
*/
type SMA struct {
	prices floats.Slice
	period int

	sma indicator.Cache[floats.Slice]
}

func NewSMA(prices []float64, period int) *SMA {
	inc := &SMA{}
	inc.Reset(prices, period)
	return inc
}

func (inc *SMA) Reset(prices []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.sma.Reset()
}

func (inc *SMA) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("SMA")
}

func (inc *SMA) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.sma, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return calculateSMA(inc.prices, inc.period), nil
	})
}

func calculateSMA(prices floats.Slice, period int) floats.Slice {
	sma := floats.Zeros(len(prices))
	for i := period - 1; i < len(prices); i++ {
		sma[i] = floats.Round2(prices.Window(i, period).Sum() / float64(period))
	}
	return sma
}

// CalculateSMA is the one-shot form of NewSMA(series, period).Calculate().
func CalculateSMA(series floats.Slice, period int) (floats.Slice, error) {
	return NewSMA(series, period).Calculate()
}

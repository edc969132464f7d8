package trend

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultEMAPeriod = 20

/*
EMA implements the exponential moving average.

The first value is the first input sample itself; there is no warm-up. Every following
value is rounded to 2 decimals before it feeds the next step:

	ema[i] = round2((x[i] - ema[i-1]) * 2/(period+1) + ema[i-1])
*/
type EMA struct {
	prices floats.Slice
	period int

	ema indicator.Cache[floats.Slice]
}

func NewEMA(prices []float64, period int) *EMA {
	inc := &EMA{}
	inc.Reset(prices, period)
	return inc
}

func (inc *EMA) Reset(prices []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.ema.Reset()
}

func (inc *EMA) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("EMA")
}

func (inc *EMA) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.ema, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return calculateEMA(inc.prices, inc.period), nil
	})
}

func calculateEMA(prices floats.Slice, period int) floats.Slice {
	ema := make(floats.Slice, len(prices))
	multiplier := 2.0 / float64(period+1)
	for i, price := range prices {
		if i == 0 {
			ema[i] = price
			continue
		}

		ema[i] = floats.Round2((price-ema[i-1])*multiplier + ema[i-1])
	}
	return ema
}

func CalculateEMA(series floats.Slice, period int) (floats.Slice, error) {
	return NewEMA(series, period).Calculate()
}

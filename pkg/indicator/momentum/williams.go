package momentum

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultWilliamsRPeriod = 14

// WilliamsR implements Williams %R, -100 * (highest high - close) / (highest high - lowest low).
// The first period-1 values are 0; a flat window yields -50.
//
// https://www.investopedia.com/terms/w/williamsr.asp
type WilliamsR struct {
	prices, high, low floats.Slice
	period            int

	williams indicator.Cache[floats.Slice]
}

func NewWilliamsR(prices, high, low []float64, period int) *WilliamsR {
	inc := &WilliamsR{}
	inc.Reset(prices, high, low, period)
	return inc
}

func (inc *WilliamsR) Reset(prices, high, low []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.period = period
	inc.williams.Reset()
}

func (inc *WilliamsR) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("WilliamsR")
}

func (inc *WilliamsR) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.williams, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		lowest, _ := floats.MinMax(inc.low, inc.period)
		_, highest := floats.MinMax(inc.high, inc.period)

		williams := floats.Zeros(len(inc.prices))
		for i := inc.period - 1; i < len(williams); i++ {
			if highest[i] == lowest[i] {
				williams[i] = -50.0
				continue
			}

			williams[i] = floats.Round2(-100 * (highest[i] - inc.prices[i]) / (highest[i] - lowest[i]))
		}
		return williams, nil
	})
}

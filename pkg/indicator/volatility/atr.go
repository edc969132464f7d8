package volatility

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

const DefaultATRPeriod = 14

// ATR implements the average true range: the selected moving average of the true range.
//
// https://www.investopedia.com/terms/a/atr.asp
type ATR struct {
	prices, high, low floats.Slice
	period            int
	maType            indicator.MAType

	atr indicator.Cache[floats.Slice]
}

func NewATR(prices, high, low []float64, period int, maType indicator.MAType) *ATR {
	inc := &ATR{}
	inc.Reset(prices, high, low, period, maType)
	return inc
}

func NewATRDefault(prices, high, low []float64) *ATR {
	return NewATR(prices, high, low, DefaultATRPeriod, indicator.MATypeSimple)
}

func (inc *ATR) Reset(prices, high, low []float64, period int, maType indicator.MAType) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.period = period
	inc.maType = maType
	inc.atr.Reset()
}

func (inc *ATR) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	checks.Add(indicator.ValidMAType("maType", inc.maType))
	return checks.Validate("ATR")
}

func (inc *ATR) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.atr, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return trend.MovingAverage(inc.maType, calculateTrueRange(inc.prices, inc.high, inc.low), inc.period)
	})
}

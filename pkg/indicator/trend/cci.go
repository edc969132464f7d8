package trend

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const (
	DefaultCCIPeriod   = 14
	DefaultCCIConstant = 0.015
)

/*
CCI implements the commodity channel index.

	tp  = round2((high + low + close) / 3)
	cci = (tp - SMA(tp, period)) / (constant * meanDeviation(tp, period))

The first period-1 values are 0. A zero mean deviation yields 0.

https://www.investopedia.com/terms/c/commoditychannelindex.asp
*/
type CCI struct {
	prices, high, low floats.Slice
	period            int
	constant          float64

	typicalPrice  indicator.Cache[floats.Slice]
	meanDeviation indicator.Cache[floats.Slice]
	cci           indicator.Cache[floats.Slice]
}

func NewCCI(prices, high, low []float64, period int, constant float64) *CCI {
	inc := &CCI{}
	inc.Reset(prices, high, low, period, constant)
	return inc
}

func NewCCIDefault(prices, high, low []float64) *CCI {
	return NewCCI(prices, high, low, DefaultCCIPeriod, DefaultCCIConstant)
}

func (inc *CCI) Reset(prices, high, low []float64, period int, constant float64) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.period = period
	inc.constant = constant
	inc.typicalPrice.Reset()
	inc.meanDeviation.Reset()
	inc.cci.Reset()
}

func (inc *CCI) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	checks.Add(indicator.Positive("constant", inc.constant))
	return checks.Validate("CCI")
}

func (inc *CCI) TypicalPrice() (floats.Slice, error) {
	return indicator.Memo(&inc.typicalPrice, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		tp := make(floats.Slice, len(inc.prices))
		for i := range tp {
			tp[i] = floats.Round2((inc.high[i] + inc.low[i] + inc.prices[i]) / 3)
		}
		return tp, nil
	})
}

// MeanDeviation returns the mean absolute deviation of the typical price over the period.
func (inc *CCI) MeanDeviation() (floats.Slice, error) {
	return indicator.Memo(&inc.meanDeviation, func() (floats.Slice, error) {
		tp, err := inc.TypicalPrice()
		if err != nil {
			return nil, err
		}

		md := floats.Zeros(len(tp))
		for i := inc.period - 1; i < len(tp); i++ {
			window := tp.Window(i, inc.period)
			mean := window.Mean()

			var sum float64
			for _, v := range window {
				sum += math.Abs(v - mean)
			}
			md[i] = floats.Round2(sum / float64(inc.period))
		}
		return md, nil
	})
}

func (inc *CCI) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.cci, func() (floats.Slice, error) {
		tp, err := inc.TypicalPrice()
		if err != nil {
			return nil, err
		}

		md, err := inc.MeanDeviation()
		if err != nil {
			return nil, err
		}

		sma := calculateSMA(tp, inc.period)
		cci := floats.Zeros(len(tp))
		for i := inc.period - 1; i < len(tp); i++ {
			cci[i] = floats.Round2(floats.Div(tp[i]-sma[i], inc.constant*md[i], 0))
		}
		return cci, nil
	})
}

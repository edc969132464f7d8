package volume

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

const DefaultForceIndexPeriod = 13

/*
ForceIndex implements the force index, the price change weighted by volume and smoothed by a
moving average.

	fi    = (close - prevClose) * volume
	force = MA(fi, period)

https://www.investopedia.com/terms/f/force-index.asp
*/
type ForceIndex struct {
	prices, volume floats.Slice
	period         int
	maType         indicator.MAType

	raw   indicator.Cache[floats.Slice]
	force indicator.Cache[floats.Slice]
}

func NewForceIndex(prices, volume []float64, period int, maType indicator.MAType) *ForceIndex {
	inc := &ForceIndex{}
	inc.Reset(prices, volume, period, maType)
	return inc
}

func NewForceIndexDefault(prices, volume []float64) *ForceIndex {
	return NewForceIndex(prices, volume, DefaultForceIndexPeriod, indicator.MATypeExponential)
}

func (inc *ForceIndex) Reset(prices, volume []float64, period int, maType indicator.MAType) {
	inc.prices = floats.Slice(prices).Clone()
	inc.volume = floats.Slice(volume).Clone()
	inc.period = period
	inc.maType = maType
	inc.raw.Reset()
	inc.force.Reset()
}

func (inc *ForceIndex) Validate() error {
	var checks indicator.Checks
	checks.Add(priceVolumeChecks(inc.prices, inc.volume)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	checks.Add(indicator.ValidMAType("maType", inc.maType))
	return checks.Validate("ForceIndex")
}

// RawForceIndex returns the one bar force index; the first value is 0.
func (inc *ForceIndex) RawForceIndex() (floats.Slice, error) {
	return indicator.Memo(&inc.raw, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return floats.Slice(floats.Multiply(inc.prices.Diff(), inc.volume)).Round(2), nil
	})
}

func (inc *ForceIndex) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.force, func() (floats.Slice, error) {
		raw, err := inc.RawForceIndex()
		if err != nil {
			return nil, err
		}

		return trend.MovingAverage(inc.maType, raw, inc.period)
	})
}

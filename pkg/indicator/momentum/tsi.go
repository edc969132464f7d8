package momentum

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

const (
	DefaultTSIRPeriod = 25
	DefaultTSISPeriod = 13
)

/*
TSI implements the true strength index.

	tsi = 100 * EMA(EMA(momentum, r), s) / EMA(EMA(|momentum|, r), s)

where momentum is the one-step price change. tsi[0] is 0 and so is every value with a zero
denominator.

https://www.investopedia.com/terms/t/tsi.asp
*/
type TSI struct {
	prices           floats.Slice
	rPeriod, sPeriod int

	tsi indicator.Cache[floats.Slice]
}

func NewTSI(prices []float64, rPeriod, sPeriod int) *TSI {
	inc := &TSI{}
	inc.Reset(prices, rPeriod, sPeriod)
	return inc
}

func NewTSIDefault(prices []float64) *TSI {
	return NewTSI(prices, DefaultTSIRPeriod, DefaultTSISPeriod)
}

func (inc *TSI) Reset(prices []float64, rPeriod, sPeriod int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.rPeriod = rPeriod
	inc.sPeriod = sPeriod
	inc.tsi.Reset()
}

func (inc *TSI) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("rPeriod", inc.rPeriod, len(inc.prices))...)
	checks.Add(indicator.Period("sPeriod", inc.sPeriod, len(inc.prices))...)
	return checks.Validate("TSI")
}

func (inc *TSI) doubleSmooth(series floats.Slice) (floats.Slice, error) {
	first, err := trend.CalculateEMA(series, inc.rPeriod)
	if err != nil {
		return nil, err
	}
	return trend.CalculateEMA(first, inc.sPeriod)
}

func (inc *TSI) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.tsi, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		momentum := inc.prices.Diff()
		smoothed, err := inc.doubleSmooth(momentum)
		if err != nil {
			return nil, err
		}

		smoothedAbs, err := inc.doubleSmooth(momentum.Abs())
		if err != nil {
			return nil, err
		}

		tsi := floats.Zeros(len(momentum))
		for i := 1; i < len(tsi); i++ {
			tsi[i] = floats.Round2(100 * floats.Div(smoothed[i], smoothedAbs[i], 0))
		}
		return tsi, nil
	})
}

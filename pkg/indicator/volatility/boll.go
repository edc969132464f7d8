package volatility

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

const (
	DefaultBOLLPeriod = 20
	DefaultBOLLNumStd = 2.0
)

/*
BOLL implements the Bollinger bands.

	middle = MA(prices, period)
	upper  = middle + numStd * std(prices, period)
	lower  = middle - numStd * std(prices, period)

std is the population standard deviation. Calculate returns (upper, middle, lower).

https://www.investopedia.com/terms/b/bollingerbands.asp
*/
type BOLL struct {
	prices floats.Slice
	period int
	maType indicator.MAType
	numStd float64

	upper  indicator.Cache[floats.Slice]
	middle indicator.Cache[floats.Slice]
	lower  indicator.Cache[floats.Slice]
}

func NewBOLL(prices []float64, period int, maType indicator.MAType, numStd float64) *BOLL {
	inc := &BOLL{}
	inc.Reset(prices, period, maType, numStd)
	return inc
}

func NewBOLLDefault(prices []float64) *BOLL {
	return NewBOLL(prices, DefaultBOLLPeriod, indicator.MATypeSimple, DefaultBOLLNumStd)
}

func (inc *BOLL) Reset(prices []float64, period int, maType indicator.MAType, numStd float64) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.maType = maType
	inc.numStd = numStd
	inc.upper.Reset()
	inc.middle.Reset()
	inc.lower.Reset()
}

func (inc *BOLL) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	checks.Add(
		indicator.ValidMAType("maType", inc.maType),
		indicator.Positive("numStd", inc.numStd),
	)
	return checks.Validate("BOLL")
}

func (inc *BOLL) Middle() (floats.Slice, error) {
	return indicator.Memo(&inc.middle, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return trend.MovingAverage(inc.maType, inc.prices, inc.period)
	})
}

func (inc *BOLL) band(sign float64) (floats.Slice, error) {
	middle, err := inc.Middle()
	if err != nil {
		return nil, err
	}

	std := calculateStdDev(inc.prices, inc.period)
	band := make(floats.Slice, len(middle))
	for i := range band {
		band[i] = floats.Round2(middle[i] + sign*inc.numStd*std[i])
	}
	return band, nil
}

func (inc *BOLL) Upper() (floats.Slice, error) {
	return indicator.Memo(&inc.upper, func() (floats.Slice, error) {
		return inc.band(1)
	})
}

func (inc *BOLL) Lower() (floats.Slice, error) {
	return indicator.Memo(&inc.lower, func() (floats.Slice, error) {
		return inc.band(-1)
	})
}

func (inc *BOLL) Calculate() (upper, middle, lower floats.Slice, err error) {
	if upper, err = inc.Upper(); err != nil {
		return nil, nil, nil, err
	}

	if middle, err = inc.Middle(); err != nil {
		return nil, nil, nil, err
	}

	if lower, err = inc.Lower(); err != nil {
		return nil, nil, nil, err
	}

	return upper, middle, lower, nil
}

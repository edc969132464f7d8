package volatility

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

const (
	DefaultKeltnerMAPeriod  = 20
	DefaultKeltnerATRPeriod = 10
	DefaultKeltnerNumATR    = 2.0
)

/*
Keltner implements the Keltner channel.

	middle = MA(prices, maPeriod)
	upper  = middle + numATR * ATR(atrPeriod, atrMAType)
	lower  = middle - numATR * ATR(atrPeriod, atrMAType)

Calculate returns (upper, middle, lower).

https://www.investopedia.com/terms/k/keltnerchannel.asp
*/
type Keltner struct {
	prices, high, low floats.Slice
	maType            indicator.MAType
	maPeriod          int
	atrPeriod         int
	numATR            float64
	atrMAType         indicator.MAType

	upper  indicator.Cache[floats.Slice]
	middle indicator.Cache[floats.Slice]
	lower  indicator.Cache[floats.Slice]
	atr    indicator.Cache[floats.Slice]
}

func NewKeltner(prices, high, low []float64, maType indicator.MAType, maPeriod, atrPeriod int, numATR float64, atrMAType indicator.MAType) *Keltner {
	inc := &Keltner{}
	inc.Reset(prices, high, low, maType, maPeriod, atrPeriod, numATR, atrMAType)
	return inc
}

func NewKeltnerDefault(prices, high, low []float64) *Keltner {
	return NewKeltner(prices, high, low,
		indicator.MATypeExponential, DefaultKeltnerMAPeriod, DefaultKeltnerATRPeriod, DefaultKeltnerNumATR, indicator.MATypeSimple)
}

func (inc *Keltner) Reset(prices, high, low []float64, maType indicator.MAType, maPeriod, atrPeriod int, numATR float64, atrMAType indicator.MAType) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.maType = maType
	inc.maPeriod = maPeriod
	inc.atrPeriod = atrPeriod
	inc.numATR = numATR
	inc.atrMAType = atrMAType
	inc.upper.Reset()
	inc.middle.Reset()
	inc.lower.Reset()
	inc.atr.Reset()
}

func (inc *Keltner) Validate() error {
	n := len(inc.prices)

	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("maPeriod", inc.maPeriod, n)...)
	checks.Add(indicator.Period("atrPeriod", inc.atrPeriod, n)...)
	checks.Add(
		indicator.ValidMAType("maType", inc.maType),
		indicator.ValidMAType("atrMAType", inc.atrMAType),
		indicator.Positive("numATR", inc.numATR),
	)
	return checks.Validate("Keltner")
}

func (inc *Keltner) Middle() (floats.Slice, error) {
	return indicator.Memo(&inc.middle, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return trend.MovingAverage(inc.maType, inc.prices, inc.maPeriod)
	})
}

// ATR returns the average true range the bands are offset by.
func (inc *Keltner) ATR() (floats.Slice, error) {
	return indicator.Memo(&inc.atr, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return NewATR(inc.prices, inc.high, inc.low, inc.atrPeriod, inc.atrMAType).Calculate()
	})
}

func (inc *Keltner) band(sign float64) (floats.Slice, error) {
	middle, err := inc.Middle()
	if err != nil {
		return nil, err
	}

	atr, err := inc.ATR()
	if err != nil {
		return nil, err
	}

	band := make(floats.Slice, len(middle))
	for i := range band {
		band[i] = floats.Round2(middle[i] + sign*inc.numATR*atr[i])
	}
	return band, nil
}

func (inc *Keltner) Upper() (floats.Slice, error) {
	return indicator.Memo(&inc.upper, func() (floats.Slice, error) {
		return inc.band(1)
	})
}

func (inc *Keltner) Lower() (floats.Slice, error) {
	return indicator.Memo(&inc.lower, func() (floats.Slice, error) {
		return inc.band(-1)
	})
}

func (inc *Keltner) Calculate() (upper, middle, lower floats.Slice, err error) {
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

package trend

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

/*
MACD implements the moving average convergence divergence.

	macd   = round2(EMA(prices, fast) - EMA(prices, slow))
	signal = EMA(macd, signal)

https://www.investopedia.com/terms/m/macd.asp
*/
type MACD struct {
	prices                               floats.Slice
	fastPeriod, slowPeriod, signalPeriod int

	macd   indicator.Cache[floats.Slice]
	signal indicator.Cache[floats.Slice]
}

func NewMACD(prices []float64, fastPeriod, slowPeriod, signalPeriod int) *MACD {
	inc := &MACD{}
	inc.Reset(prices, fastPeriod, slowPeriod, signalPeriod)
	return inc
}

func NewMACDDefault(prices []float64) *MACD {
	return NewMACD(prices, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
}

func (inc *MACD) Reset(prices []float64, fastPeriod, slowPeriod, signalPeriod int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.fastPeriod = fastPeriod
	inc.slowPeriod = slowPeriod
	inc.signalPeriod = signalPeriod
	inc.macd.Reset()
	inc.signal.Reset()
}

func (inc *MACD) Validate() error {
	n := len(inc.prices)

	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("fastPeriod", inc.fastPeriod, n)...)
	checks.Add(indicator.Period("slowPeriod", inc.slowPeriod, n)...)
	checks.Add(indicator.Period("signalPeriod", inc.signalPeriod, n)...)
	checks.Add(indicator.Less("fastPeriod", inc.fastPeriod, "slowPeriod", inc.slowPeriod))
	return checks.Validate("MACD")
}

// MACDLine returns the difference of the fast and slow EMAs.
func (inc *MACD) MACDLine() (floats.Slice, error) {
	return indicator.Memo(&inc.macd, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		fast := calculateEMA(inc.prices, inc.fastPeriod)
		slow := calculateEMA(inc.prices, inc.slowPeriod)
		return fast.Sub(slow).Round(2), nil
	})
}

// SignalLine returns the EMA of the MACD line.
func (inc *MACD) SignalLine() (floats.Slice, error) {
	return indicator.Memo(&inc.signal, func() (floats.Slice, error) {
		macd, err := inc.MACDLine()
		if err != nil {
			return nil, err
		}

		return calculateEMA(macd, inc.signalPeriod), nil
	})
}

func (inc *MACD) Calculate() (macd, signal floats.Slice, err error) {
	if macd, err = inc.MACDLine(); err != nil {
		return nil, nil, err
	}

	if signal, err = inc.SignalLine(); err != nil {
		return nil, nil, err
	}

	return macd, signal, nil
}

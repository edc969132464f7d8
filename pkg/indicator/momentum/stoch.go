package momentum

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

const (
	DefaultStochKPeriod = 14
	DefaultStochDPeriod = 3
)

/*
Stoch implements the stochastic oscillator.

	%K = 100 * (close - lowest low) / (highest high - lowest low)
	%D = SMA(%K, dPeriod)

%K is 0 for the first kPeriod values and 50 when the window is flat.

https://www.investopedia.com/terms/s/stochasticoscillator.asp
*/
type Stoch struct {
	prices, high, low floats.Slice
	kPeriod, dPeriod  int

	k indicator.Cache[floats.Slice]
	d indicator.Cache[floats.Slice]
}

func NewStoch(prices, high, low []float64, kPeriod, dPeriod int) *Stoch {
	inc := &Stoch{}
	inc.Reset(prices, high, low, kPeriod, dPeriod)
	return inc
}

func NewStochDefault(prices, high, low []float64) *Stoch {
	return NewStoch(prices, high, low, DefaultStochKPeriod, DefaultStochDPeriod)
}

func (inc *Stoch) Reset(prices, high, low []float64, kPeriod, dPeriod int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.kPeriod = kPeriod
	inc.dPeriod = dPeriod
	inc.k.Reset()
	inc.d.Reset()
}

func (inc *Stoch) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("kPeriod", inc.kPeriod, len(inc.prices))...)
	checks.Add(indicator.Period("dPeriod", inc.dPeriod, len(inc.prices))...)
	return checks.Validate("STOCH")
}

func (inc *Stoch) K() (floats.Slice, error) {
	return indicator.Memo(&inc.k, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		lowest, _ := floats.MinMax(inc.low, inc.kPeriod)
		_, highest := floats.MinMax(inc.high, inc.kPeriod)

		k := floats.Zeros(len(inc.prices))
		for i := inc.kPeriod; i < len(k); i++ {
			if highest[i] == lowest[i] {
				k[i] = 50.0
				continue
			}

			k[i] = floats.Round2(100 * (inc.prices[i] - lowest[i]) / (highest[i] - lowest[i]))
		}
		return k, nil
	})
}

func (inc *Stoch) D() (floats.Slice, error) {
	return indicator.Memo(&inc.d, func() (floats.Slice, error) {
		k, err := inc.K()
		if err != nil {
			return nil, err
		}

		return trend.CalculateSMA(k, inc.dPeriod)
	})
}

func (inc *Stoch) Calculate() (k, d floats.Slice, err error) {
	if k, err = inc.K(); err != nil {
		return nil, nil, err
	}

	if d, err = inc.D(); err != nil {
		return nil, nil, err
	}

	return k, d, nil
}

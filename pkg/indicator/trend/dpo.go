package trend

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultDPOPeriod = 20

// DPO implements the detrended price oscillator: the price minus the SMA displaced
// back by period/2+1 bars.
//
// https://www.investopedia.com/terms/d/detrended-price-oscillator-dpo.asp
type DPO struct {
	prices floats.Slice
	period int

	dpo indicator.Cache[floats.Slice]
}

func NewDPO(prices []float64, period int) *DPO {
	inc := &DPO{}
	inc.Reset(prices, period)
	return inc
}

func (inc *DPO) Reset(prices []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.dpo.Reset()
}

func (inc *DPO) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("DPO")
}

func (inc *DPO) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.dpo, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		sma := calculateSMA(inc.prices, inc.period)
		shift := inc.period/2 + 1

		dpo := floats.Zeros(len(inc.prices))
		for i := inc.period + shift - 1; i < len(dpo); i++ {
			dpo[i] = floats.Round2(inc.prices[i] - sma[i-shift])
		}
		return dpo, nil
	})
}

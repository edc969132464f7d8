package trend

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultTrixPeriod = 15

// Trix is the 1-period rate of change of a triple smoothed EMA, rounded to 4 decimals.
//
// https://www.investopedia.com/terms/t/trix.asp
type Trix struct {
	prices floats.Slice
	period int

	trix indicator.Cache[floats.Slice]
}

func NewTrix(prices []float64, period int) *Trix {
	inc := &Trix{}
	inc.Reset(prices, period)
	return inc
}

func (inc *Trix) Reset(prices []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.trix.Reset()
}

func (inc *Trix) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("TRIX")
}

func (inc *Trix) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.trix, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		smoothed := inc.prices
		for i := 0; i < 3; i++ {
			smoothed = calculateEMA(smoothed, inc.period)
		}

		trix := floats.Zeros(len(smoothed))
		for i := 1; i < len(smoothed); i++ {
			if smoothed[i-1] == 0 {
				log.Debugf("trix: zero denominator at %d", i)
				continue
			}

			trix[i] = floats.Round((smoothed[i]-smoothed[i-1])/smoothed[i-1], 4)
		}
		return trix, nil
	})
}

package momentum

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultROCPeriod = 9

// ROC implements the rate of change, (x[i] - x[i-period]) / x[i-period].
// The first period values are 0, and so is every value whose base price is 0.
type ROC struct {
	prices floats.Slice
	period int

	roc indicator.Cache[floats.Slice]
}

func NewROC(prices []float64, period int) *ROC {
	inc := &ROC{}
	inc.Reset(prices, period)
	return inc
}

func (inc *ROC) Reset(prices []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.roc.Reset()
}

func (inc *ROC) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("ROC")
}

func (inc *ROC) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.roc, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return calculateROC(inc.prices, inc.period), nil
	})
}

func calculateROC(prices floats.Slice, period int) floats.Slice {
	roc := floats.Zeros(len(prices))
	for i := period; i < len(prices); i++ {
		base := prices[i-period]
		if base == 0 {
			log.Debugf("roc: zero base price at %d", i-period)
			continue
		}

		roc[i] = floats.Round2((prices[i] - base) / base)
	}
	return roc
}

package trend

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultWMAPeriod = 20

// WMA implements the linearly weighted moving average, weights 1 (oldest) to period (newest).
type WMA struct {
	prices floats.Slice
	period int

	wma indicator.Cache[floats.Slice]
}

func NewWMA(prices []float64, period int) *WMA {
	inc := &WMA{}
	inc.Reset(prices, period)
	return inc
}

func (inc *WMA) Reset(prices []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.wma.Reset()
}

func (inc *WMA) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("WMA")
}

func (inc *WMA) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.wma, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return calculateWMA(inc.prices, inc.period), nil
	})
}

// calculateWMA slides the window in O(1) per step: when the window moves by one sample,
// every weight drops by one, which removes the window total from the numerator, and the
// new sample enters with the full weight.
func calculateWMA(prices floats.Slice, period int) floats.Slice {
	wma := floats.Zeros(len(prices))
	denominator := float64(period*(period+1)) / 2.0

	var total, numerator float64
	for i := period - 1; i < len(prices); i++ {
		if i == period-1 {
			total = prices.Window(i, period).Sum()
			numerator = 0
			for j := 0; j < period; j++ {
				numerator += float64(j+1) * prices[j]
			}
		} else {
			numerator = numerator + float64(period)*prices[i] - total
			total = total + prices[i] - prices[i-period]
		}

		wma[i] = floats.Round2(numerator / denominator)
	}

	return wma
}

func CalculateWMA(series floats.Slice, period int) (floats.Slice, error) {
	return NewWMA(series, period).Calculate()
}

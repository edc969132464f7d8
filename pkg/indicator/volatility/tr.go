package volatility

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

// TrueRange is the greatest of the bar range and the gaps from the previous close:
//
//	tr[i] = max(high[i], close[i-1]) - min(low[i], close[i-1])
//
// tr[0] is 0.
type TrueRange struct {
	prices, high, low floats.Slice

	tr indicator.Cache[floats.Slice]
}

func NewTrueRange(prices, high, low []float64) *TrueRange {
	inc := &TrueRange{}
	inc.Reset(prices, high, low)
	return inc
}

func (inc *TrueRange) Reset(prices, high, low []float64) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.tr.Reset()
}

func (inc *TrueRange) Validate() error {
	return indicator.Validate("TR", indicator.HighLow(inc.prices, inc.high, inc.low)...)
}

func (inc *TrueRange) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.tr, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return calculateTrueRange(inc.prices, inc.high, inc.low), nil
	})
}

func calculateTrueRange(prices, high, low floats.Slice) floats.Slice {
	tr := floats.Zeros(len(prices))
	for i := 1; i < len(tr); i++ {
		prevClose := prices[i-1]
		tr[i] = floats.Round2(math.Max(high[i], prevClose) - math.Min(low[i], prevClose))
	}
	return tr
}

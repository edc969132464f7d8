package volatility

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultStdDevPeriod = 20

// StdDev is the rolling population standard deviation over the trailing period.
// The first period-1 values are 0.
type StdDev struct {
	prices floats.Slice
	period int

	std indicator.Cache[floats.Slice]
}

func NewStdDev(prices []float64, period int) *StdDev {
	inc := &StdDev{}
	inc.Reset(prices, period)
	return inc
}

func (inc *StdDev) Reset(prices []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.std.Reset()
}

func (inc *StdDev) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("STDDEV")
}

func (inc *StdDev) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.std, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return calculateStdDev(inc.prices, inc.period), nil
	})
}

func calculateStdDev(prices floats.Slice, period int) floats.Slice {
	std := floats.Zeros(len(prices))
	for i := period - 1; i < len(prices); i++ {
		variance := stat.PopVariance(prices.Window(i, period), nil)
		std[i] = floats.Round2(math.Sqrt(variance))
	}
	return std
}

package trend

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const (
	DefaultMassIndexPeriod    = 25
	DefaultMassIndexEMAPeriod = 9
)

/*
MassIndex sums, over miPeriod bars, the ratio of the single to the double EMA of the
high-low range.

	ratio = round2(EMA(H-L) / EMA(EMA(H-L)))
	mi    = round2(sum(ratio, miPeriod))

https://www.investopedia.com/terms/m/mass-index.asp
*/
type MassIndex struct {
	prices, high, low   floats.Slice
	miPeriod, emaPeriod int

	ratio indicator.Cache[floats.Slice]
	mi    indicator.Cache[floats.Slice]
}

func NewMassIndex(prices, high, low []float64, miPeriod, emaPeriod int) *MassIndex {
	inc := &MassIndex{}
	inc.Reset(prices, high, low, miPeriod, emaPeriod)
	return inc
}

func NewMassIndexDefault(prices, high, low []float64) *MassIndex {
	return NewMassIndex(prices, high, low, DefaultMassIndexPeriod, DefaultMassIndexEMAPeriod)
}

func (inc *MassIndex) Reset(prices, high, low []float64, miPeriod, emaPeriod int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.miPeriod = miPeriod
	inc.emaPeriod = emaPeriod
	inc.ratio.Reset()
	inc.mi.Reset()
}

func (inc *MassIndex) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("miPeriod", inc.miPeriod, len(inc.prices))...)
	checks.Add(indicator.Period("emaPeriod", inc.emaPeriod, len(inc.prices))...)
	return checks.Validate("MassIndex")
}

// EMARatio returns the single over double EMA ratio of the high-low range.
func (inc *MassIndex) EMARatio() (floats.Slice, error) {
	return indicator.Memo(&inc.ratio, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		single := calculateEMA(inc.high.Sub(inc.low), inc.emaPeriod)
		double := calculateEMA(single, inc.emaPeriod)

		ratio := make(floats.Slice, len(single))
		for i := range single {
			ratio[i] = floats.Round2(floats.Div(single[i], double[i], 0))
		}
		return ratio, nil
	})
}

func (inc *MassIndex) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.mi, func() (floats.Slice, error) {
		ratio, err := inc.EMARatio()
		if err != nil {
			return nil, err
		}

		return rollingSum(ratio, inc.miPeriod), nil
	})
}

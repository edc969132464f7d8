package trend

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultVortexPeriod = 21

/*
Vortex implements the vortex indicator.

	+VM = |H[i] - L[i-1]|
	-VM = |L[i] - H[i-1]|
	+VI = sum(+VM, period) / sum(range, period)
	-VI = sum(-VM, period) / sum(range, period)

The first period-1 values are 0. A zero range sum yields 0.

https://www.investopedia.com/terms/v/vortex-indicator-vi.asp
*/
type Vortex struct {
	prices, high, low floats.Slice
	period            int

	periodTR indicator.Cache[floats.Slice]
	plusVI   indicator.Cache[floats.Slice]
	minusVI  indicator.Cache[floats.Slice]
}

func NewVortex(prices, high, low []float64, period int) *Vortex {
	inc := &Vortex{}
	inc.Reset(prices, high, low, period)
	return inc
}

func (inc *Vortex) Reset(prices, high, low []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.period = period
	inc.periodTR.Reset()
	inc.plusVI.Reset()
	inc.minusVI.Reset()
}

func (inc *Vortex) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("Vortex")
}

func (inc *Vortex) periodTrueRange() (floats.Slice, error) {
	return indicator.Memo(&inc.periodTR, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return rollingSum(directionalRange(inc.prices, inc.high, inc.low), inc.period), nil
	})
}

func (inc *Vortex) vortexIndicator(movement func(i int) float64) (floats.Slice, error) {
	periodTR, err := inc.periodTrueRange()
	if err != nil {
		return nil, err
	}

	vm := floats.Zeros(len(inc.prices))
	for i := 1; i < len(vm); i++ {
		vm[i] = floats.Round2(movement(i))
	}

	periodVM := rollingSum(vm, inc.period)
	vi := floats.Zeros(len(vm))
	for i := inc.period - 1; i < len(vi); i++ {
		vi[i] = floats.Round2(floats.Div(periodVM[i], periodTR[i], 0))
	}
	return vi, nil
}

func (inc *Vortex) PlusVI() (floats.Slice, error) {
	return indicator.Memo(&inc.plusVI, func() (floats.Slice, error) {
		return inc.vortexIndicator(func(i int) float64 {
			return math.Abs(inc.high[i] - inc.low[i-1])
		})
	})
}

func (inc *Vortex) MinusVI() (floats.Slice, error) {
	return indicator.Memo(&inc.minusVI, func() (floats.Slice, error) {
		return inc.vortexIndicator(func(i int) float64 {
			return math.Abs(inc.low[i] - inc.high[i-1])
		})
	})
}

func (inc *Vortex) Calculate() (plusVI, minusVI floats.Slice, err error) {
	if plusVI, err = inc.PlusVI(); err != nil {
		return nil, nil, err
	}

	if minusVI, err = inc.MinusVI(); err != nil {
		return nil, nil, err
	}

	return plusVI, minusVI, nil
}

package trend

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultADXPeriod = 14

/*
ADX implements the average directional index.

The directional movements +DM and -DM and the bar range are Wilder smoothed over the period,
the smoothed movements are averaged with an EMA and divided by the smoothed range to get
+DI and -DI, and

	adx = |+DI - -DI| / (+DI + -DI) * 100

The first period values are 0. A zero denominator yields 0.

https://www.investopedia.com/terms/a/adx.asp
*/
type ADX struct {
	prices, high, low floats.Slice
	period            int

	periodTR indicator.Cache[floats.Slice]
	plusDI   indicator.Cache[floats.Slice]
	minusDI  indicator.Cache[floats.Slice]
	adx      indicator.Cache[floats.Slice]
}

func NewADX(prices, high, low []float64, period int) *ADX {
	inc := &ADX{}
	inc.Reset(prices, high, low, period)
	return inc
}

func (inc *ADX) Reset(prices, high, low []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.period = period
	inc.periodTR.Reset()
	inc.plusDI.Reset()
	inc.minusDI.Reset()
	inc.adx.Reset()
}

func (inc *ADX) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("ADX")
}

// PeriodTrueRange returns the Wilder smoothed bar range.
func (inc *ADX) PeriodTrueRange() (floats.Slice, error) {
	return indicator.Memo(&inc.periodTR, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return wilderSum(directionalRange(inc.prices, inc.high, inc.low), inc.period), nil
	})
}

// PlusDI returns the positive directional indicator.
func (inc *ADX) PlusDI() (floats.Slice, error) {
	return indicator.Memo(&inc.plusDI, func() (floats.Slice, error) {
		return inc.directionalIndicator(func(i int) float64 {
			up, down := inc.high[i]-inc.high[i-1], inc.low[i-1]-inc.low[i]
			if up > down && up > 0 {
				return up
			}
			return 0
		})
	})
}

// MinusDI returns the negative directional indicator.
func (inc *ADX) MinusDI() (floats.Slice, error) {
	return indicator.Memo(&inc.minusDI, func() (floats.Slice, error) {
		return inc.directionalIndicator(func(i int) float64 {
			up, down := inc.high[i]-inc.high[i-1], inc.low[i-1]-inc.low[i]
			if down > up && down > 0 {
				return down
			}
			return 0
		})
	})
}

func (inc *ADX) directionalIndicator(movement func(i int) float64) (floats.Slice, error) {
	periodTR, err := inc.PeriodTrueRange()
	if err != nil {
		return nil, err
	}

	dm := floats.Zeros(len(inc.prices))
	for i := 1; i < len(dm); i++ {
		dm[i] = floats.Round2(movement(i))
	}

	smoothed := calculateEMA(wilderSum(dm, inc.period), inc.period)

	di := floats.Zeros(len(smoothed))
	for i := inc.period; i < len(smoothed); i++ {
		di[i] = floats.Round2(floats.Div(smoothed[i], periodTR[i], 0) * 100)
	}
	return di, nil
}

func (inc *ADX) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.adx, func() (floats.Slice, error) {
		plusDI, err := inc.PlusDI()
		if err != nil {
			return nil, err
		}

		minusDI, err := inc.MinusDI()
		if err != nil {
			return nil, err
		}

		adx := floats.Zeros(len(plusDI))
		for i := inc.period; i < len(adx); i++ {
			sum := plusDI[i] + minusDI[i]
			if sum == 0 {
				log.Debugf("adx: zero directional indicators at %d", i)
				continue
			}

			adx[i] = floats.Round2(math.Abs(plusDI[i]-minusDI[i]) / sum * 100)
		}
		return adx, nil
	})
}

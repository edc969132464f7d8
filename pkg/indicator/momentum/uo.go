package momentum

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const (
	DefaultUOShortPeriod  = 7
	DefaultUOMediumPeriod = 14
	DefaultUOLongPeriod   = 28
	DefaultUOShortWeight  = 4.0
	DefaultUOMediumWeight = 2.0
	DefaultUOLongWeight   = 1.0
)

/*
UltimateOscillator combines the buying pressure over three windows.

	bp  = close - min(low, prevClose)
	tr  = max(high, prevClose) - min(low, prevClose)
	avg = sum(bp, period) / sum(tr, period)
	uo  = 100 * (ws*avgS + wm*avgM + wl*avgL) / (ws + wm + wl)

The first long-period values are 0. A window without range averages to 0.

https://www.investopedia.com/terms/u/ultimateoscillator.asp
*/
type UltimateOscillator struct {
	prices, high, low                     floats.Slice
	shortPeriod, mediumPeriod, longPeriod int
	shortWeight, mediumWeight, longWeight float64

	buyingPressure indicator.Cache[floats.Slice]
	trueRange      indicator.Cache[floats.Slice]
	uo             indicator.Cache[floats.Slice]
}

func NewUltimateOscillator(prices, high, low []float64, shortPeriod, mediumPeriod, longPeriod int, shortWeight, mediumWeight, longWeight float64) *UltimateOscillator {
	inc := &UltimateOscillator{}
	inc.Reset(prices, high, low, shortPeriod, mediumPeriod, longPeriod, shortWeight, mediumWeight, longWeight)
	return inc
}

func NewUltimateOscillatorDefault(prices, high, low []float64) *UltimateOscillator {
	return NewUltimateOscillator(prices, high, low,
		DefaultUOShortPeriod, DefaultUOMediumPeriod, DefaultUOLongPeriod,
		DefaultUOShortWeight, DefaultUOMediumWeight, DefaultUOLongWeight)
}

func (inc *UltimateOscillator) Reset(prices, high, low []float64, shortPeriod, mediumPeriod, longPeriod int, shortWeight, mediumWeight, longWeight float64) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.shortPeriod, inc.mediumPeriod, inc.longPeriod = shortPeriod, mediumPeriod, longPeriod
	inc.shortWeight, inc.mediumWeight, inc.longWeight = shortWeight, mediumWeight, longWeight
	inc.buyingPressure.Reset()
	inc.trueRange.Reset()
	inc.uo.Reset()
}

func (inc *UltimateOscillator) Validate() error {
	n := len(inc.prices)

	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("shortPeriod", inc.shortPeriod, n)...)
	checks.Add(indicator.Period("mediumPeriod", inc.mediumPeriod, n)...)
	checks.Add(indicator.Period("longPeriod", inc.longPeriod, n)...)
	checks.Add(
		indicator.StrictlyIncreasing([]string{"shortPeriod", "mediumPeriod", "longPeriod"}, inc.shortPeriod, inc.mediumPeriod, inc.longPeriod),
		indicator.Positive("shortWeight", inc.shortWeight),
		indicator.Positive("mediumWeight", inc.mediumWeight),
		indicator.Positive("longWeight", inc.longWeight),
	)
	return checks.Validate("UO")
}

// BuyingPressure returns close - min(low, prevClose); the first value is 0.
func (inc *UltimateOscillator) BuyingPressure() (floats.Slice, error) {
	return indicator.Memo(&inc.buyingPressure, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		bp := floats.Zeros(len(inc.prices))
		for i := 1; i < len(bp); i++ {
			bp[i] = floats.Round2(inc.prices[i] - math.Min(inc.low[i], inc.prices[i-1]))
		}
		return bp, nil
	})
}

func (inc *UltimateOscillator) TrueRange() (floats.Slice, error) {
	return indicator.Memo(&inc.trueRange, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		tr := floats.Zeros(len(inc.prices))
		for i := 1; i < len(tr); i++ {
			tr[i] = floats.Round2(math.Max(inc.high[i], inc.prices[i-1]) - math.Min(inc.low[i], inc.prices[i-1]))
		}
		return tr, nil
	})
}

func (inc *UltimateOscillator) periodAverage(bp, tr floats.Slice, period int) floats.Slice {
	avg := floats.Zeros(len(bp))
	for i := period; i < len(avg); i++ {
		avg[i] = floats.Round2(floats.Div(bp.Window(i, period).Sum(), tr.Window(i, period).Sum(), 0))
	}
	return avg
}

func (inc *UltimateOscillator) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.uo, func() (floats.Slice, error) {
		bp, err := inc.BuyingPressure()
		if err != nil {
			return nil, err
		}

		tr, err := inc.TrueRange()
		if err != nil {
			return nil, err
		}

		short := inc.periodAverage(bp, tr, inc.shortPeriod)
		medium := inc.periodAverage(bp, tr, inc.mediumPeriod)
		long := inc.periodAverage(bp, tr, inc.longPeriod)
		total := inc.shortWeight + inc.mediumWeight + inc.longWeight

		uo := floats.Zeros(len(bp))
		for i := inc.longPeriod; i < len(uo); i++ {
			weighted := inc.shortWeight*short[i] + inc.mediumWeight*medium[i] + inc.longWeight*long[i]
			uo[i] = floats.Round2(100 * weighted / total)
		}
		return uo, nil
	})
}

package volume

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

const (
	DefaultEMVPeriod = 14
	DefaultEMVScale  = 100000000.0
)

/*
EMV implements the ease of movement.

	distance = (high + low) / 2 - (prevHigh + prevLow) / 2
	boxRatio = (volume / 1e8) / (high - low)
	emv      = MA(distance / boxRatio, period)

A bar whose box ratio is undefined or 0 (a flat bar or no volume) takes the smallest
positive box ratio of the series. When there is none, the raw EMV of that bar is 0.

https://www.investopedia.com/terms/e/easeofmovement.asp
*/
type EMV struct {
	prices, high, low, volume floats.Slice
	period                    int
	maType                    indicator.MAType

	distance indicator.Cache[floats.Slice]
	boxRatio indicator.Cache[floats.Slice]
	rawEMV   indicator.Cache[floats.Slice]
	emv      indicator.Cache[floats.Slice]
}

func NewEMV(prices, high, low, volume []float64, period int, maType indicator.MAType) *EMV {
	inc := &EMV{}
	inc.Reset(prices, high, low, volume, period, maType)
	return inc
}

func NewEMVDefault(prices, high, low, volume []float64) *EMV {
	return NewEMV(prices, high, low, volume, DefaultEMVPeriod, indicator.MATypeSimple)
}

func (inc *EMV) Reset(prices, high, low, volume []float64, period int, maType indicator.MAType) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.volume = floats.Slice(volume).Clone()
	inc.period = period
	inc.maType = maType
	inc.distance.Reset()
	inc.boxRatio.Reset()
	inc.rawEMV.Reset()
	inc.emv.Reset()
}

func (inc *EMV) Validate() error {
	var checks indicator.Checks
	checks.Add(barVolumeChecks(inc.prices, inc.high, inc.low, inc.volume)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	checks.Add(indicator.ValidMAType("maType", inc.maType))
	return checks.Validate("EMV")
}

// Distance returns the move of the bar midpoint; the first value is 0.
func (inc *EMV) Distance() (floats.Slice, error) {
	return indicator.Memo(&inc.distance, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		distance := floats.Zeros(len(inc.high))
		for i := 1; i < len(distance); i++ {
			distance[i] = floats.Round2((inc.high[i]+inc.low[i])/2 - (inc.high[i-1]+inc.low[i-1])/2)
		}
		return distance, nil
	})
}

// BoxRatio returns the scaled volume over the bar range, with the degenerate bars already
// substituted. The result is 0 only when no bar has a usable ratio.
func (inc *EMV) BoxRatio() (floats.Slice, error) {
	return indicator.Memo(&inc.boxRatio, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		ratio := make(floats.Slice, len(inc.volume))
		minRatio := math.Inf(1)
		var degenerate []int
		for i := range ratio {
			span := inc.high[i] - inc.low[i]
			if span == 0 || inc.volume[i] == 0 {
				degenerate = append(degenerate, i)
				continue
			}

			ratio[i] = (inc.volume[i] / DefaultEMVScale) / span
			if ratio[i] > 0 {
				minRatio = math.Min(minRatio, ratio[i])
			}
		}

		if len(degenerate) > 0 {
			substitute := 0.0
			if !math.IsInf(minRatio, 1) {
				substitute = minRatio
			}

			log.Debugf("emv: %d degenerate bars take box ratio %f", len(degenerate), substitute)
			for _, i := range degenerate {
				ratio[i] = substitute
			}
		}

		return ratio, nil
	})
}

// RawEMV returns the unsmoothed distance over box ratio.
func (inc *EMV) RawEMV() (floats.Slice, error) {
	return indicator.Memo(&inc.rawEMV, func() (floats.Slice, error) {
		distance, err := inc.Distance()
		if err != nil {
			return nil, err
		}

		ratio, err := inc.BoxRatio()
		if err != nil {
			return nil, err
		}

		return floats.Slice(floats.Divide(distance, ratio, 0)).Round(2), nil
	})
}

func (inc *EMV) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.emv, func() (floats.Slice, error) {
		raw, err := inc.RawEMV()
		if err != nil {
			return nil, err
		}

		return trend.MovingAverage(inc.maType, raw, inc.period)
	})
}

package volume

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

/*
ADL implements the accumulation/distribution line.

	multiplier = ((close - low) - (high - close)) / (high - low)
	adl        = cumsum(multiplier * volume)

A flat bar (high == low) takes the largest multiplier of the other bars, or 0 when every
bar is flat.

https://www.investopedia.com/terms/a/accumulationdistribution.asp
*/
type ADL struct {
	prices, high, low, volume floats.Slice

	multiplier indicator.Cache[floats.Slice]
	flowVolume indicator.Cache[floats.Slice]
	adl        indicator.Cache[floats.Slice]
}

func NewADL(prices, high, low, volume []float64) *ADL {
	inc := &ADL{}
	inc.Reset(prices, high, low, volume)
	return inc
}

func (inc *ADL) Reset(prices, high, low, volume []float64) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.volume = floats.Slice(volume).Clone()
	inc.multiplier.Reset()
	inc.flowVolume.Reset()
	inc.adl.Reset()
}

func (inc *ADL) Validate() error {
	return indicator.Validate("ADL", barVolumeChecks(inc.prices, inc.high, inc.low, inc.volume)...)
}

// MoneyFlowMultiplier returns the close location value of every bar.
func (inc *ADL) MoneyFlowMultiplier() (floats.Slice, error) {
	return indicator.Memo(&inc.multiplier, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		multiplier := make(floats.Slice, len(inc.prices))
		var flat []int
		maxMultiplier := math.Inf(-1)
		for i := range multiplier {
			span := inc.high[i] - inc.low[i]
			if span == 0 {
				flat = append(flat, i)
				continue
			}

			multiplier[i] = floats.Round2(((inc.prices[i] - inc.low[i]) - (inc.high[i] - inc.prices[i])) / span)
			maxMultiplier = math.Max(maxMultiplier, multiplier[i])
		}

		if len(flat) > 0 {
			substitute := 0.0
			if !math.IsInf(maxMultiplier, -1) {
				substitute = maxMultiplier
			}

			log.Debugf("adl: %d flat bars take multiplier %.2f", len(flat), substitute)
			for _, i := range flat {
				multiplier[i] = substitute
			}
		}

		return multiplier, nil
	})
}

// MoneyFlowVolume returns the multiplier weighted volume.
func (inc *ADL) MoneyFlowVolume() (floats.Slice, error) {
	return indicator.Memo(&inc.flowVolume, func() (floats.Slice, error) {
		multiplier, err := inc.MoneyFlowMultiplier()
		if err != nil {
			return nil, err
		}

		return floats.Slice(floats.Multiply(multiplier, inc.volume)).Round(2), nil
	})
}

func (inc *ADL) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.adl, func() (floats.Slice, error) {
		flowVolume, err := inc.MoneyFlowVolume()
		if err != nil {
			return nil, err
		}

		adl := make(floats.Slice, len(flowVolume))
		var sum float64
		for i, v := range flowVolume {
			sum = floats.Round2(sum + v)
			adl[i] = sum
		}
		return adl, nil
	})
}

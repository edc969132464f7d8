package volatility

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultChannelPeriod = 20

// PriceChannel tracks the highest high and the lowest low of the trailing period. Before the
// window fills, it covers all the bars seen so far. mid is the average of the two bands.
//
// https://www.investopedia.com/terms/d/donchianchannels.asp
type PriceChannel struct {
	prices, high, low floats.Slice
	period            int

	up   indicator.Cache[floats.Slice]
	mid  indicator.Cache[floats.Slice]
	down indicator.Cache[floats.Slice]
}

// DonchianChannel is another name of the price channel.
type DonchianChannel = PriceChannel

func NewPriceChannel(prices, high, low []float64, period int) *PriceChannel {
	inc := &PriceChannel{}
	inc.Reset(prices, high, low, period)
	return inc
}

func NewDonchianChannel(prices, high, low []float64, period int) *DonchianChannel {
	return NewPriceChannel(prices, high, low, period)
}

func (inc *PriceChannel) Reset(prices, high, low []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.period = period
	inc.up.Reset()
	inc.mid.Reset()
	inc.down.Reset()
}

func (inc *PriceChannel) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.HighLow(inc.prices, inc.high, inc.low)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("PriceChannel")
}

func (inc *PriceChannel) Up() (floats.Slice, error) {
	return indicator.Memo(&inc.up, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		up := make(floats.Slice, len(inc.high))
		for i := range up {
			up[i] = inc.high.Window(i, inc.period).Max()
		}
		return up, nil
	})
}

func (inc *PriceChannel) Down() (floats.Slice, error) {
	return indicator.Memo(&inc.down, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		down := make(floats.Slice, len(inc.low))
		for i := range down {
			down[i] = inc.low.Window(i, inc.period).Min()
		}
		return down, nil
	})
}

func (inc *PriceChannel) Mid() (floats.Slice, error) {
	return indicator.Memo(&inc.mid, func() (floats.Slice, error) {
		up, err := inc.Up()
		if err != nil {
			return nil, err
		}

		down, err := inc.Down()
		if err != nil {
			return nil, err
		}

		mid := up.Add(down)
		for i := range mid {
			mid[i] = floats.Round2(mid[i] / 2)
		}
		return mid, nil
	})
}

func (inc *PriceChannel) Calculate() (up, mid, down floats.Slice, err error) {
	if up, err = inc.Up(); err != nil {
		return nil, nil, nil, err
	}

	if mid, err = inc.Mid(); err != nil {
		return nil, nil, nil, err
	}

	if down, err = inc.Down(); err != nil {
		return nil, nil, nil, err
	}

	return up, mid, down, nil
}

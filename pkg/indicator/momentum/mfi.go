package momentum

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultMFIPeriod = 14

/*
MFI implements the money flow index.

	tp        = round2((high + low + close) / 3)
	raw flow  = round2(tp * volume)
	mfi       = 100 - 100 / (1 + sum(positive flow) / max(sum(negative flow), 1))

A flow is positive when the close rises and negative when it falls. The sums cover the
trailing period+1 bars and are emitted from index period+1; earlier values are 0.

https://www.investopedia.com/terms/m/mfi.asp
*/
type MFI struct {
	prices, high, low, volume floats.Slice
	period                    int

	typicalPrice indicator.Cache[floats.Slice]
	rawFlow      indicator.Cache[floats.Slice]
	mfi          indicator.Cache[floats.Slice]
}

func NewMFI(prices, high, low, volume []float64, period int) *MFI {
	inc := &MFI{}
	inc.Reset(prices, high, low, volume, period)
	return inc
}

func (inc *MFI) Reset(prices, high, low, volume []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.high = floats.Slice(high).Clone()
	inc.low = floats.Slice(low).Clone()
	inc.volume = floats.Slice(volume).Clone()
	inc.period = period
	inc.typicalPrice.Reset()
	inc.rawFlow.Reset()
	inc.mfi.Reset()
}

func (inc *MFI) Validate() error {
	var checks indicator.Checks
	checks.Add(
		indicator.NotEmpty("prices", inc.prices),
		indicator.NotEmpty("high", inc.high),
		indicator.NotEmpty("low", inc.low),
		indicator.NotEmpty("volume", inc.volume),
		indicator.SameLength([]string{"prices", "high", "low", "volume"}, inc.prices, inc.high, inc.low, inc.volume),
	)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("MFI")
}

func (inc *MFI) TypicalPrice() (floats.Slice, error) {
	return indicator.Memo(&inc.typicalPrice, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		tp := make(floats.Slice, len(inc.prices))
		for i := range tp {
			tp[i] = floats.Round2((inc.high[i] + inc.low[i] + inc.prices[i]) / 3)
		}
		return tp, nil
	})
}

func (inc *MFI) RawMoneyFlow() (floats.Slice, error) {
	return indicator.Memo(&inc.rawFlow, func() (floats.Slice, error) {
		tp, err := inc.TypicalPrice()
		if err != nil {
			return nil, err
		}

		return floats.Slice(floats.Multiply(tp, inc.volume)).Round(2), nil
	})
}

func (inc *MFI) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.mfi, func() (floats.Slice, error) {
		raw, err := inc.RawMoneyFlow()
		if err != nil {
			return nil, err
		}

		positive := floats.Zeros(len(raw))
		negative := floats.Zeros(len(raw))
		for i := 1; i < len(raw); i++ {
			switch {
			case inc.prices[i] > inc.prices[i-1]:
				positive[i] = raw[i]
			case inc.prices[i] < inc.prices[i-1]:
				negative[i] = raw[i]
			}
		}

		mfi := floats.Zeros(len(raw))
		for i := inc.period + 1; i < len(mfi); i++ {
			posSum := floats.Round2(positive.Window(i, inc.period+1).Sum())
			negSum := floats.Round2(math.Max(negative.Window(i, inc.period+1).Sum(), 1))
			mfi[i] = floats.Round2(100 - 100/(1+posSum/negSum))
		}
		return mfi, nil
	})
}

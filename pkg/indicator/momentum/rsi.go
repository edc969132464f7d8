package momentum

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

const DefaultRSIPeriod = 14

/*
RSI implements the relative strength index over simple windowed averages of the gains and
losses (not Wilder's smoothing).

	rs  = avg(gain, period) / avg(loss, period)
	rsi = 100 - 100 / (1 + rs)

Every intermediate series is rounded to 2 decimals. The first period values are 0. A window
without losses yields 100, or 50 when it has no gains either.

https://www.investopedia.com/terms/r/rsi.asp
*/
type RSI struct {
	prices floats.Slice
	period int

	gain    indicator.Cache[floats.Slice]
	loss    indicator.Cache[floats.Slice]
	avgGain indicator.Cache[floats.Slice]
	avgLoss indicator.Cache[floats.Slice]
	rs      indicator.Cache[floats.Slice]
	rsi     indicator.Cache[floats.Slice]
}

func NewRSI(prices []float64, period int) *RSI {
	inc := &RSI{}
	inc.Reset(prices, period)
	return inc
}

func (inc *RSI) Reset(prices []float64, period int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.period = period
	inc.gain.Reset()
	inc.loss.Reset()
	inc.avgGain.Reset()
	inc.avgLoss.Reset()
	inc.rs.Reset()
	inc.rsi.Reset()
}

func (inc *RSI) Validate() error {
	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	return checks.Validate("RSI")
}

// Gain returns the per-step price increase, 0 on flat or falling steps.
func (inc *RSI) Gain() (floats.Slice, error) {
	return indicator.Memo(&inc.gain, func() (floats.Slice, error) {
		return inc.change(func(delta float64) float64 { return delta })
	})
}

// Loss returns the per-step price decrease as a positive value, 0 on flat or rising steps.
func (inc *RSI) Loss() (floats.Slice, error) {
	return indicator.Memo(&inc.loss, func() (floats.Slice, error) {
		return inc.change(func(delta float64) float64 { return -delta })
	})
}

func (inc *RSI) change(sign func(delta float64) float64) (floats.Slice, error) {
	if err := inc.Validate(); err != nil {
		return nil, err
	}

	out := floats.Zeros(len(inc.prices))
	for i, delta := range inc.prices.Diff() {
		if v := sign(delta); v > 0 {
			out[i] = floats.Round2(v)
		}
	}
	return out, nil
}

func (inc *RSI) AverageGain() (floats.Slice, error) {
	return indicator.Memo(&inc.avgGain, func() (floats.Slice, error) {
		gain, err := inc.Gain()
		if err != nil {
			return nil, err
		}
		return windowMean(gain, inc.period), nil
	})
}

func (inc *RSI) AverageLoss() (floats.Slice, error) {
	return indicator.Memo(&inc.avgLoss, func() (floats.Slice, error) {
		loss, err := inc.Loss()
		if err != nil {
			return nil, err
		}
		return windowMean(loss, inc.period), nil
	})
}

// windowMean is the trailing mean emitted from index period on.
func windowMean(values floats.Slice, period int) floats.Slice {
	out := floats.Zeros(len(values))
	for i := period; i < len(values); i++ {
		out[i] = floats.Round2(values.Window(i, period).Sum() / float64(period))
	}
	return out
}

// RS returns the relative strength; a zero average loss yields 0.
func (inc *RSI) RS() (floats.Slice, error) {
	return indicator.Memo(&inc.rs, func() (floats.Slice, error) {
		avgGain, err := inc.AverageGain()
		if err != nil {
			return nil, err
		}

		avgLoss, err := inc.AverageLoss()
		if err != nil {
			return nil, err
		}

		rs := floats.Zeros(len(avgGain))
		for i := inc.period; i < len(rs); i++ {
			rs[i] = floats.Round2(floats.Div(avgGain[i], avgLoss[i], 0))
		}
		return rs, nil
	})
}

func (inc *RSI) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.rsi, func() (floats.Slice, error) {
		rs, err := inc.RS()
		if err != nil {
			return nil, err
		}

		// both caches are warm after RS
		avgGain, _ := inc.avgGain.Get()
		avgLoss, _ := inc.avgLoss.Get()

		rsi := floats.Zeros(len(rs))
		for i := inc.period; i < len(rsi); i++ {
			switch {
			case avgLoss[i] == 0 && avgGain[i] == 0:
				rsi[i] = 50
			case avgLoss[i] == 0:
				rsi[i] = 100
			default:
				rsi[i] = floats.Round2(100 - 100/(1+rs[i]))
			}
		}
		return rsi, nil
	})
}

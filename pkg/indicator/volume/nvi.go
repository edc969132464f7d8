package volume

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/momentum"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

const (
	DefaultNVIPeriod = 255
	DefaultNVIValue  = 1000.0
)

/*
NVI implements the negative volume index. The index starts at 1000 and only moves on the bars
where the volume decreases, accumulating the one bar rate of change of the price:

	nvi = prevNVI + roc(close, 1)    if roc(volume, 1) < 0
	nvi = prevNVI                    otherwise

Both rates of change are the 2 decimal ROC values, so a zero previous price or volume leaves
the index unchanged.

The signal line is a moving average of the index.

https://www.investopedia.com/terms/n/nvi.asp
*/
type NVI struct {
	prices, volume floats.Slice
	period         int
	maType         indicator.MAType

	nvi    indicator.Cache[floats.Slice]
	signal indicator.Cache[floats.Slice]
}

func NewNVI(prices, volume []float64, period int, maType indicator.MAType) *NVI {
	inc := &NVI{}
	inc.Reset(prices, volume, period, maType)
	return inc
}

func NewNVIDefault(prices, volume []float64) *NVI {
	return NewNVI(prices, volume, DefaultNVIPeriod, indicator.MATypeExponential)
}

func (inc *NVI) Reset(prices, volume []float64, period int, maType indicator.MAType) {
	inc.prices = floats.Slice(prices).Clone()
	inc.volume = floats.Slice(volume).Clone()
	inc.period = period
	inc.maType = maType
	inc.nvi.Reset()
	inc.signal.Reset()
}

func (inc *NVI) Validate() error {
	var checks indicator.Checks
	checks.Add(priceVolumeChecks(inc.prices, inc.volume)...)
	checks.Add(indicator.Period("period", inc.period, len(inc.prices))...)
	checks.Add(indicator.ValidMAType("maType", inc.maType))
	return checks.Validate("NVI")
}

func (inc *NVI) Index() (floats.Slice, error) {
	return indicator.Memo(&inc.nvi, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		priceROC, err := momentum.NewROC(inc.prices, 1).Calculate()
		if err != nil {
			return nil, err
		}

		volumeROC, err := momentum.NewROC(inc.volume, 1).Calculate()
		if err != nil {
			return nil, err
		}

		nvi := make(floats.Slice, len(inc.prices))
		nvi[0] = DefaultNVIValue
		for i := 1; i < len(nvi); i++ {
			if volumeROC[i] >= 0 {
				nvi[i] = nvi[i-1]
				continue
			}

			nvi[i] = floats.Round2(nvi[i-1] + priceROC[i])
		}
		return nvi, nil
	})
}

// Signal returns the moving average of the index.
func (inc *NVI) Signal() (floats.Slice, error) {
	return indicator.Memo(&inc.signal, func() (floats.Slice, error) {
		nvi, err := inc.Index()
		if err != nil {
			return nil, err
		}

		return trend.MovingAverage(inc.maType, nvi, inc.period)
	})
}

func (inc *NVI) Calculate() (nvi, signal floats.Slice, err error) {
	if nvi, err = inc.Index(); err != nil {
		return nil, nil, err
	}

	if signal, err = inc.Signal(); err != nil {
		return nil, nil, err
	}

	return nvi, signal, nil
}

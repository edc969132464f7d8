package volume

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

/*
OBV implements the on-balance volume. The volume of a bar is added when the close rises,
subtracted when it falls and ignored when it is unchanged.

https://www.investopedia.com/terms/o/onbalancevolume.asp
*/
type OBV struct {
	prices, volume floats.Slice

	obv indicator.Cache[floats.Slice]
}

func NewOBV(prices, volume []float64) *OBV {
	inc := &OBV{}
	inc.Reset(prices, volume)
	return inc
}

func (inc *OBV) Reset(prices, volume []float64) {
	inc.prices = floats.Slice(prices).Clone()
	inc.volume = floats.Slice(volume).Clone()
	inc.obv.Reset()
}

func (inc *OBV) Validate() error {
	return indicator.Validate("OBV", priceVolumeChecks(inc.prices, inc.volume)...)
}

func (inc *OBV) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.obv, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		obv := make(floats.Slice, len(inc.prices))
		for i := 1; i < len(obv); i++ {
			switch {
			case inc.prices[i] > inc.prices[i-1]:
				obv[i] = floats.Round2(obv[i-1] + inc.volume[i])
			case inc.prices[i] < inc.prices[i-1]:
				obv[i] = floats.Round2(obv[i-1] - inc.volume[i])
			default:
				obv[i] = obv[i-1]
			}
		}
		return obv, nil
	})
}

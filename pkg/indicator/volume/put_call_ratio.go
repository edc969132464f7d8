package volume

import (
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

// PutCallRatio divides the put volume by the call volume bar by bar. A bar without call
// volume has a ratio of 0.
type PutCallRatio struct {
	put, call floats.Slice

	ratio indicator.Cache[floats.Slice]
}

func NewPutCallRatio(put, call []float64) *PutCallRatio {
	inc := &PutCallRatio{}
	inc.Reset(put, call)
	return inc
}

func (inc *PutCallRatio) Reset(put, call []float64) {
	inc.put = floats.Slice(put).Clone()
	inc.call = floats.Slice(call).Clone()
	inc.ratio.Reset()
}

func (inc *PutCallRatio) Validate() error {
	return indicator.Validate("PutCallRatio",
		indicator.NotEmpty("put", inc.put),
		indicator.NotEmpty("call", inc.call),
		indicator.SameLength([]string{"put", "call"}, inc.put, inc.call),
	)
}

func (inc *PutCallRatio) Calculate() (floats.Slice, error) {
	return indicator.Memo(&inc.ratio, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		return floats.Slice(floats.Divide(inc.put, inc.call, 0)).Round(2), nil
	})
}

package indicator

import "github.com/c9s/bbta/pkg/datatype/floats"

// Validator is implemented by every indicator. Validate reports every violated
// precondition at once through a *ValidationError.
type Validator interface {
	Validate() error
}

// SeriesCalculator is an indicator producing a single output series.
type SeriesCalculator interface {
	Validator
	Calculate() (floats.Slice, error)
}

// Float64Func is a batch moving average style calculator: series in, series out.
type Float64Func func(series floats.Slice, period int) (floats.Slice, error)

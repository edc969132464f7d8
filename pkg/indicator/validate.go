package indicator

import (
	"fmt"
	"strings"
)

func quote(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}

// NotEmpty checks that a required series has at least one sample.
func NotEmpty(name string, series []float64) error {
	if len(series) == 0 {
		return fmt.Errorf("`%s` cannot be empty", name)
	}
	return nil
}

// SameLength checks that all parallel series share one length. names and series are
// matched by position.
func SameLength(names []string, series ...[]float64) error {
	for i := 1; i < len(series); i++ {
		if len(series[i]) != len(series[0]) {
			return fmt.Errorf("%s must have the same length", quote(names))
		}
	}
	return nil
}

// PositivePeriod checks that a window size is at least 1.
func PositivePeriod(name string, period int) error {
	if period <= 0 {
		return fmt.Errorf("`%s` must be greater than 0", name)
	}
	return nil
}

// PeriodWithin checks that a window size does not exceed the series length.
func PeriodWithin(name string, period, length int) error {
	if period > length {
		return fmt.Errorf("`%s` cannot be greater than the length of the series, period=%d length=%d", name, period, length)
	}
	return nil
}

// Period combines PositivePeriod and PeriodWithin.
func Period(name string, period, length int) []error {
	return []error{PositivePeriod(name, period), PeriodWithin(name, period, length)}
}

// Positive checks a numeric parameter such as a band multiplier or a weight.
func Positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("`%s` must be greater than 0", name)
	}
	return nil
}

// Less checks a < b.
func Less(aName string, a int, bName string, b int) error {
	if a >= b {
		return fmt.Errorf("`%s` must be less than `%s`", aName, bName)
	}
	return nil
}

// StrictlyIncreasing checks values[0] < values[1] < ... names and values are matched by position.
func StrictlyIncreasing(names []string, values ...int) error {
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			return fmt.Errorf("%s must be strictly increasing", quote(names))
		}
	}
	return nil
}

// NonDecreasing checks values[0] <= values[1] <= ...
func NonDecreasing(names []string, values ...int) error {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return fmt.Errorf("%s must be non-decreasing", quote(names))
		}
	}
	return nil
}

// Checks collects check results, flattening the grouped ones returned by Period.
type Checks []error

func (c *Checks) Add(errs ...error) {
	*c = append(*c, errs...)
}

func (c Checks) Validate(name string) error {
	return Validate(name, c...)
}

// HighLow returns the checks shared by the indicators that take close, high and low series.
func HighLow(prices, high, low []float64) []error {
	return []error{
		NotEmpty("prices", prices),
		NotEmpty("high", high),
		NotEmpty("low", low),
		SameLength([]string{"prices", "high", "low"}, prices, high, low),
	}
}

package trend

import (
	"math"

	"github.com/c9s/bbta/pkg/datatype/floats"
)

// directionalRange is the per-bar range used by ADX and the Vortex indicator:
// the largest of |H-L|, |L-Lprev| and |H-Cprev|. The first bar is 0.
func directionalRange(prices, high, low floats.Slice) floats.Slice {
	tr := floats.Zeros(len(prices))
	for i := 1; i < len(prices); i++ {
		tr[i] = floats.Round2(math.Max(
			math.Abs(high[i]-low[i]),
			math.Max(math.Abs(low[i]-low[i-1]), math.Abs(high[i]-prices[i-1])),
		))
	}
	return tr
}

// wilderSum seeds with the plain sum of the first window (ending at index period) and then
// applies Wilder smoothing: s[i] = s[i-1] - s[i-1]/period + x[i].
func wilderSum(values floats.Slice, period int) floats.Slice {
	out := floats.Zeros(len(values))
	for i := period; i < len(values); i++ {
		if i == period {
			out[i] = floats.Round2(values.Window(i, period).Sum())
			continue
		}

		out[i] = floats.Round2(out[i-1] - out[i-1]/float64(period) + values[i])
	}
	return out
}

// rollingSum is the trailing window sum from index period-1 on, rounded to 2 decimals.
func rollingSum(values floats.Slice, period int) floats.Slice {
	out := floats.Zeros(len(values))
	for i := period - 1; i < len(values); i++ {
		out[i] = floats.Round2(values.Window(i, period).Sum())
	}
	return out
}

package floats

import "gonum.org/v1/gonum/floats"

func Average(arr []float64) float64 {
	if len(arr) == 0 {
		return 0.0
	}

	s := 0.0
	for _, a := range arr {
		s += a
	}
	return s / float64(len(arr))
}

// Multiply multiplies two float series of the same length element by element.
func Multiply(inReal0 []float64, inReal1 []float64) []float64 {
	return floats.MulTo(make([]float64, len(inReal0)), inReal0, inReal1)
}

// Divide divides two float series element by element, a zero divisor yields fallback.
func Divide(inReal0 []float64, inReal1 []float64, fallback float64) []float64 {
	outReal := make([]float64, len(inReal0))
	for i := 0; i < len(inReal0); i++ {
		outReal[i] = Div(inReal0[i], inReal1[i], fallback)
	}
	return outReal
}

// MinMax - Lowest and highest values over a specified period
// The first inTimePeriod-1 outputs are zero.
// ported from https://github.com/markcheno/go-talib/blob/master/talib.go
func MinMax(inReal []float64, inTimePeriod int) (outMin []float64, outMax []float64) {
	outMin = make([]float64, len(inReal))
	outMax = make([]float64, len(inReal))
	if inTimePeriod <= 0 {
		return outMin, outMax
	}

	nbInitialElementNeeded := inTimePeriod - 1
	startIdx := nbInitialElementNeeded
	outIdx := startIdx
	today := startIdx
	trailingIdx := startIdx - nbInitialElementNeeded
	highestIdx := -1
	highest := 0.0
	lowestIdx := -1
	lowest := 0.0
	for today < len(inReal) {
		tmpLow, tmpHigh := inReal[today], inReal[today]
		if highestIdx < trailingIdx {
			highestIdx = trailingIdx
			highest = inReal[highestIdx]
			i := highestIdx
			i++
			for i <= today {
				tmpHigh = inReal[i]
				if tmpHigh > highest {
					highestIdx = i
					highest = tmpHigh
				}
				i++
			}
		} else if tmpHigh >= highest {
			highestIdx = today
			highest = tmpHigh
		}
		if lowestIdx < trailingIdx {
			lowestIdx = trailingIdx
			lowest = inReal[lowestIdx]
			i := lowestIdx
			i++
			for i <= today {
				tmpLow = inReal[i]
				if tmpLow < lowest {
					lowestIdx = i
					lowest = tmpLow
				}
				i++
			}
		} else if tmpLow <= lowest {
			lowestIdx = today
			lowest = tmpLow
		}
		outMax[outIdx] = highest
		outMin[outIdx] = lowest
		outIdx++
		trailingIdx++
		today++
	}
	return outMin, outMax
}

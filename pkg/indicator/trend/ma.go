package trend

import (
	"fmt"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

var movingAverages = map[indicator.MAType]indicator.Float64Func{
	indicator.MATypeSimple:      CalculateSMA,
	indicator.MATypeExponential: CalculateEMA,
	indicator.MATypeWeighted:    CalculateWMA,
}

// MovingAverageFunc resolves a moving average type to its calculator.
func MovingAverageFunc(maType indicator.MAType) (indicator.Float64Func, error) {
	fn, ok := movingAverages[maType]
	if !ok {
		return nil, fmt.Errorf("unsupported moving average type: %s", maType)
	}
	return fn, nil
}

// MovingAverage calculates the moving average selected by maType over series.
func MovingAverage(maType indicator.MAType, series floats.Slice, period int) (floats.Slice, error) {
	fn, err := MovingAverageFunc(maType)
	if err != nil {
		return nil, err
	}

	return fn(series, period)
}

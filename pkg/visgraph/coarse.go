package visgraph

import (
	"github.com/samber/lo"

	"github.com/c9s/bbta/pkg/datatype/floats"
)

// CoarseGrain averages the series over consecutive non-overlapping blocks of the given
// width. A trailing partial block is averaged over the samples it has. A scale below 2
// returns a copy of the series.
func CoarseGrain(series []float64, scale int) floats.Slice {
	if scale <= 1 {
		return floats.Slice(series).Clone()
	}

	return lo.Map(lo.Chunk(series, scale), func(block []float64, _ int) float64 {
		return floats.Average(block)
	})
}

package volume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c9s/bbta/pkg/datatype/floats"
)

// 30 daily bars: high, low, close and volume.
var (
	barHigh   = loadSeries(`[24.20,24.07,24.04,23.87,23.67,23.59,23.80,23.80,24.30,24.15,24.05,24.06,23.88,25.14,25.20,25.07,25.22,25.37,25.36,25.26,24.82,24.44,24.65,24.84,24.75,24.51,24.68,24.67,23.84,24.30]`)
	barLow    = loadSeries(`[23.85,23.72,23.64,23.37,23.46,23.18,23.40,23.57,24.05,23.77,23.60,23.84,23.64,23.94,24.74,24.77,24.90,24.93,24.96,24.93,24.21,24.21,24.43,24.44,24.20,24.25,24.21,24.15,23.63,23.76]`)
	barClose  = loadSeries(`[23.89,23.95,23.67,23.78,23.50,23.32,23.75,23.79,24.14,23.81,23.78,23.86,23.70,24.96,24.88,24.96,25.18,25.07,25.27,25.00,24.46,24.28,24.62,24.58,24.53,24.35,24.34,24.23,23.76,24.20]`)
	barVolume = loadSeries(`[18730,12272,24691,18358,22964,15919,16067,16568,16019,9774,22573,12987,10907,5799,7395,5818,7165,5673,5625,5023,7457,11798,12366,13295,9257,9691,8870,11356,13379,11081]`)
)

func loadSeries(s string) floats.Slice {
	var series floats.Slice
	if err := json.Unmarshal([]byte(s), &series); err != nil {
		panic(err)
	}
	return series
}

func assertSeries(t *testing.T, expected string, actual floats.Slice) {
	t.Helper()
	Delta := 0.011
	want := loadSeries(expected)
	require.Len(t, actual, len(want))
	for i := range want {
		require.InDelta(t, want[i], actual[i], Delta, "index %d", i)
	}
}

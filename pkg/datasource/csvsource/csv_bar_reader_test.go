package csvsource

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVBarReader_ReadWithBinanceDecoder(t *testing.T) {
	start := time.Unix(1609459200, 0).UTC()
	tests := []struct {
		name string
		give string
		want Bar
		err  error
	}{
		{
			name: "Read DOHLCV",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,2311.81144500",
			want: Bar{StartTime: start, EndTime: start.Add(time.Hour), Open: 28923.63, High: 29031.34, Low: 28690.17, Close: 28995.13, Volume: 2311.811445},
		},
		{
			name: "Read DOHLC",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000",
			want: Bar{StartTime: start, EndTime: start.Add(time.Hour), Open: 28923.63, High: 29031.34, Low: 28690.17, Close: 28995.13},
		},
		{
			name: "Not enough columns",
			give: "1609459200000,28923.63000000,29031.34000000",
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid time format",
			give: "23/12/2021,28923.63000000,29031.34000000,28690.17000000,28995.13000000",
			err:  ErrInvalidTimeFormat,
		},
		{
			name: "Invalid price format",
			give: "1609459200000,sixty,29031.34000000,28690.17000000,28995.13000000",
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,vol",
			err:  ErrInvalidVolumeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewBinanceCSVBarReader(csv.NewReader(strings.NewReader(tt.give)))
			bar, err := reader.Read(time.Hour)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.want, bar)
		})
	}
}

func TestCSVBarReader_ReadWithMetaTraderDecoder(t *testing.T) {
	start := time.Date(2008, 12, 11, 16, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		give string
		want Bar
		err  error
	}{
		{
			name: "Read DOHLCV",
			give: "11/12/2008;16:00;779.527679;780.964756;777.527679;779.964756;5",
			want: Bar{StartTime: start, EndTime: start.Add(time.Hour), Open: 779.527679, High: 780.964756, Low: 777.527679, Close: 779.964756, Volume: 5},
		},
		{
			name: "Not enough columns",
			give: "1609459200000;28923.63000000;29031.34000000",
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid time format",
			give: "23/12/2021;t;28923.63000000;29031.34000000;28690.17000000;28995.13000000",
			err:  ErrInvalidTimeFormat,
		},
		{
			name: "Invalid price format",
			give: "11/12/2008;00:00;sixty;29031.34000000;28690.17000000;28995.13000000",
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "11/12/2008;00:00;779.527679;780.964756;777.527679;779.964756;vol",
			err:  ErrInvalidVolumeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMetaTraderCSVBarReader(csv.NewReader(strings.NewReader(tt.give)))
			bar, err := reader.Read(time.Hour)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.want, bar)
		})
	}
}

func TestCSVBarReader_ReadAll(t *testing.T) {
	records := []string{
		"time,open,high,low,close,volume",
		"1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,2311.81144500",
		"1609459300000,28928.63000000,30031.34000000,22690.17000000,28495.13000000,3000.00",
	}
	reader := NewCSVBarReader(csv.NewReader(strings.NewReader(strings.Join(records, "\n"))))
	bars, err := reader.ReadAll(time.Hour)
	require.NoError(t, err)
	assert.Len(t, bars, 2)
	assert.Equal(t, []float64{28995.13, 28495.13}, []float64(bars.Close()))
	assert.Equal(t, []float64{2311.811445, 3000}, []float64(bars.Volume()))

	// only the first record may be a header
	records = append(records, "not-a-time,1,2,3,4,5")
	_, err = NewCSVBarReader(csv.NewReader(strings.NewReader(strings.Join(records, "\n")))).ReadAll(time.Hour)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestReadBarsFromCSV(t *testing.T) {
	bars, err := ReadBarsFromCSV("testdata/bars", 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, bars, 3)

	assert.Equal(t, []float64{29331.69, 32178.33, 33000.05}, []float64(bars.Close()))
	assert.Equal(t, []float64{29600, 33300, 34778.11}, []float64(bars.High()))
	assert.Equal(t, []float64{28624.57, 28946.53, 31962.99}, []float64(bars.Low()))
	assert.Equal(t, []float64{28923.63, 29331.70, 32176.45}, []float64(bars.Open()))
	assert.True(t, bars.Times()[0].Before(bars.Times()[1]))
	assert.Equal(t, bars[0].StartTime.Add(24*time.Hour), bars[0].EndTime)

	_, err = ReadBarsFromCSV("testdata/missing", time.Hour)
	assert.Error(t, err)
}

func TestReaderByName(t *testing.T) {
	maker, err := ReaderByName("metatrader")
	require.NoError(t, err)

	bars, err := maker(csv.NewReader(strings.NewReader("11/12/2008;16:00;1;2;0.5;1.5;10"))).ReadAll(time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, []float64(bars.Close()))

	_, err = ReaderByName("ninjatrader")
	assert.Error(t, err)
}

package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bbta/pkg/config"
	"github.com/c9s/bbta/pkg/datasource/csvsource"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/momentum"
)

func loadTestBars(t *testing.T) csvsource.Bars {
	t.Helper()
	bars, err := csvsource.ReadBarsFromCSV("testdata/bars.csv", 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, bars, 30)
	return bars
}

func TestCompute(t *testing.T) {
	bars := loadTestBars(t)
	cfg := config.Default()

	for _, name := range Indicators() {
		t.Run(name, func(t *testing.T) {
			out, err := Compute(name, cfg, bars)
			if err != nil {
				// presets longer than the fixture are reported, not computed
				var verr *indicator.ValidationError
				require.ErrorAs(t, err, &verr)
				return
			}

			require.NotEmpty(t, out)
			for _, o := range out {
				assert.NotEmpty(t, o.Name)
				assert.Len(t, o.Values, len(bars))
			}
		})
	}

	out, err := Compute("rsi", cfg, bars)
	require.NoError(t, err)
	expected, err := momentum.NewRSI(bars.Close(), momentum.DefaultRSIPeriod).Calculate()
	require.NoError(t, err)
	assert.Equal(t, expected, out[0].Values)

	_, err = Compute("nvi", cfg, bars)
	assert.Error(t, err, "the default signal period is longer than the fixture")

	_, err = Compute("hma", cfg, bars)
	assert.EqualError(t, err, "unknown indicator: hma")
}

func TestRenderOutputs(t *testing.T) {
	bars := loadTestBars(t)
	out, err := Compute("sma", config.Default(), bars)
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderOutputs(&buf, bars, out, 3, false)

	text := buf.String()
	assert.Contains(t, text, "SMA")
	assert.Contains(t, text, "2021-01-30 00:00")
	assert.Contains(t, text, "24.48")
	assert.NotContains(t, text, "2021-01-27 00:00")
}

func TestCalcCommand(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"calc", "--file", "testdata/bars.csv", "--indicator", "boll", "--tail", "2"})
	require.NoError(t, RootCmd.Execute())

	text := buf.String()
	assert.Contains(t, text, "UPPER")
	assert.Contains(t, text, "LOWER")
	assert.Equal(t, 2, strings.Count(text, "2021-01-"))
}

func TestIndicatorsCommand(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"indicators"})
	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, strings.Join(Indicators(), "\n")+"\n", buf.String())
}

package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/bbta/pkg/datatype/floats"
)

// Canvas is a line chart of series sharing one time axis.
type Canvas struct {
	chart.Chart
	Interval time.Duration
}

func NewCanvas(title string, interval time.Duration) *Canvas {
	valueFormatter := chart.TimeMinuteValueFormatter
	if interval >= 24*time.Hour {
		valueFormatter = chart.TimeDateValueFormatter
	} else if interval >= time.Hour {
		valueFormatter = chart.TimeHourValueFormatter
	}

	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: valueFormatter,
			},
			YAxis: chart.YAxis{
				ValueFormatter: func(v interface{}) string {
					if vf, isFloat := v.(float64); isFloat {
						return fmt.Sprintf("%.2f", vf)
					}
					return ""
				},
			},
		},
		Interval: interval,
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// Plot adds a series. The leading zero values are the warm-up positions of an indicator and
// are not drawn. Nothing is added when fewer than two points remain.
func (canvas *Canvas) Plot(tag string, times []time.Time, values floats.Slice) {
	start := 0
	for start < len(values) && values[start] == 0 {
		start++
	}

	if len(values)-start < 2 || len(times) != len(values) {
		return
	}

	canvas.Series = append(canvas.Series, chart.TimeSeries{
		Name:    tag,
		XValues: times[start:],
		YValues: values[start:],
	})
}

// Len returns the number of plotted series.
func (canvas *Canvas) Len() int {
	return len(canvas.Series)
}

// RenderPNG writes the chart as a PNG image.
func (canvas *Canvas) RenderPNG(w io.Writer) error {
	if len(canvas.Series) == 0 {
		return fmt.Errorf("chart %s has no series to render", canvas.Title)
	}
	return canvas.Render(chart.PNG, w)
}

package visgraph

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/style"
)

const DefaultTimescale = 10

// MultiscaleResult holds one gamma and p-value per scale; the three slices are parallel.
type MultiscaleResult struct {
	Scales []int        `json:"scales"`
	Gamma  floats.Slice `json:"gamma"`
	PValue floats.Slice `json:"pValue"`
}

// Multiscale correlates x and y at the scales 1..timescale. At each scale both series are
// coarse-grained, converted to horizontal visibility graphs and the degree sequences are
// compared with GoodmanKruskalGamma. A scale whose p-value cannot be computed reports 1.
func Multiscale(x, y []float64, timescale int) (*MultiscaleResult, error) {
	var checks indicator.Checks
	checks.Add(
		indicator.NotEmpty("x", x),
		indicator.NotEmpty("y", y),
		indicator.SameLength([]string{"x", "y"}, x, y),
	)
	checks.Add(indicator.Period("timescale", timescale, len(x))...)
	if err := checks.Validate("Multiscale"); err != nil {
		return nil, err
	}

	result := &MultiscaleResult{
		Scales: make([]int, 0, timescale),
		Gamma:  make(floats.Slice, 0, timescale),
		PValue: make(floats.Slice, 0, timescale),
	}

	for scale := 1; scale <= timescale; scale++ {
		dx := Horizontal(CoarseGrain(x, scale)).Degrees()
		dy := Horizontal(CoarseGrain(y, scale)).Degrees()

		gamma, err := GoodmanKruskalGamma(dx, dy)
		if err != nil {
			return nil, err
		}

		p, err := Significance(gamma, len(dx))
		if err != nil {
			log.WithError(err).Warnf("scale %d: p-value not available, using 1", scale)
			p = 1
		}

		result.Scales = append(result.Scales, scale)
		result.Gamma.Push(gamma)
		result.PValue.Push(p)
	}

	return result, nil
}

// Render writes the result as a table of scale, gamma and p-value.
func (r *MultiscaleResult) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewReportTableStyle())
	t.AppendHeader(table.Row{"scale", "gamma", "p-value", ""})
	for i, scale := range r.Scales {
		t.AppendRow(table.Row{
			scale,
			fmt.Sprintf("%.4f", r.Gamma[i]),
			fmt.Sprintf("%.4f", r.PValue[i]),
			style.SignificanceStars(r.PValue[i]),
		})
	}
	t.Render()
}

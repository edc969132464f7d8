package visgraph

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Significance returns the two-sided p-value of a correlation r measured on n pairs, using
// the t statistic r * sqrt((n - 2) / (1 - r^2)) with n - 2 degrees of freedom.
// It fails when n < 3 or when |r| >= 1, where the statistic is not finite.
func Significance(r float64, n int) (float64, error) {
	if n < 3 {
		return 0, errors.Errorf("significance: at least 3 pairs are required, n=%d", n)
	}

	if math.IsNaN(r) || math.Abs(r) >= 1 {
		return 0, errors.Errorf("significance: correlation must be in (-1, 1), r=%f", r)
	}

	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	p := 2 * (1 - dist.CDF(math.Abs(t)))
	return math.Min(1, math.Max(0, p)), nil
}

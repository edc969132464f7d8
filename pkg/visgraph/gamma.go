package visgraph

import (
	"cmp"

	"github.com/pkg/errors"
)

// GoodmanKruskalGamma returns the rank correlation (C - D) / (C + D) of two paired samples,
// where C and D count the concordant and discordant pairs. Pairs tied in either sample are
// left out; when every pair is tied the correlation is 0.
func GoodmanKruskalGamma[T cmp.Ordered](x, y []T) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.Errorf("gamma: samples must have the same length, len(x)=%d len(y)=%d", len(x), len(y))
	}

	var concordant, discordant int
	for i := 0; i < len(x); i++ {
		for j := i + 1; j < len(x); j++ {
			switch cmp.Compare(x[i], x[j]) * cmp.Compare(y[i], y[j]) {
			case 1:
				concordant++
			case -1:
				discordant++
			}
		}
	}

	if concordant+discordant == 0 {
		return 0, nil
	}

	return float64(concordant-discordant) / float64(concordant+discordant), nil
}

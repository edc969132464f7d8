package style

var SignificanceMark = "*"

// DefaultSignificanceLevels are the p-value thresholds of one, two and three marks.
var DefaultSignificanceLevels = []float64{0.05, 0.01, 0.001}

// SignificanceStars repeats SignificanceMark once per level the p-value falls below.
func SignificanceStars(p float64, levels ...float64) (out string) {
	if len(levels) == 0 {
		levels = DefaultSignificanceLevels
	}

	for _, level := range levels {
		if p < level {
			out += SignificanceMark
		}
	}
	return out
}

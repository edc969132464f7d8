package visgraph

import (
	"math"
	"math/big"
	"strconv"
)

// Basic builds the natural visibility graph by scanning every pair. For each origin i the
// scan keeps the blocker, the sample with the steepest slope from i seen so far, and j is
// visible when the blocker lies strictly below the line from i to j.
func Basic(series []float64) *Graph {
	g := NewGraph(len(series))
	for i := range series {
		blocker := -1
		for j := i + 1; j < len(series); j++ {
			if blocker < 0 || below(series, i, blocker, j) {
				g.Connect(i, j)
				blocker = j
			}
		}
	}
	return g
}

// Fast builds the same graph as Basic by divide and conquer. The first maximum of a range
// hides everything on its left from everything on its right, so it is connected to both
// sides and the two halves are solved independently.
func Fast(series []float64) *Graph {
	g := NewGraph(len(series))
	fastVisibility(g, series, 0, len(series)-1)
	return g
}

func fastVisibility(g *Graph, series []float64, left, right int) {
	for left < right {
		k := left
		for i := left + 1; i <= right; i++ {
			if series[i] > series[k] {
				k = i
			}
		}

		blocker := -1
		for i := k - 1; i >= left; i-- {
			if blocker < 0 || below(series, i, blocker, k) {
				g.Connect(i, k)
				blocker = i
			}
		}

		blocker = -1
		for i := k + 1; i <= right; i++ {
			if blocker < 0 || below(series, k, blocker, i) {
				g.Connect(k, i)
				blocker = i
			}
		}

		// recurse into the smaller half and loop on the larger one to bound the stack depth
		if k-left < right-k {
			fastVisibility(g, series, left, k-1)
			left = k + 1
		} else {
			fastVisibility(g, series, k+1, right)
			right = k - 1
		}
	}
}

// orientErrBound bounds, relative to the magnitude of the samples involved, both the
// rounding of the float determinant in below and the gap between a sample and its shortest
// decimal form.
const orientErrBound = 8 * 0x1p-53

// below reports whether sample mid lies strictly below the segment from lo to hi, with
// lo < mid < hi. Samples are taken at their shortest decimal value, so 0.3 lies exactly on
// the segment from 0 to 0.9. The float determinant decides when it is clear of its error
// bound and near collinear triples are decided with exact rational arithmetic. Basic and
// Fast both decide every edge through this one predicate.
func below(series []float64, lo, mid, hi int) bool {
	yLo, yMid, yHi := series[lo], series[mid], series[hi]
	dMid, dHi := float64(mid-lo), float64(hi-lo)

	det := (yHi-yLo)*dMid - (yMid-yLo)*dHi
	bound := orientErrBound * ((math.Abs(yHi)+math.Abs(yLo))*dMid + (math.Abs(yMid)+math.Abs(yLo))*dHi)
	if det > bound {
		return true
	}
	if det < -bound {
		return false
	}

	return belowExact(yLo, yMid, yHi, mid-lo, hi-lo)
}

func decimalRat(v float64) (*big.Rat, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64))
}

func belowExact(yLo, yMid, yHi float64, dMid, dHi int) bool {
	lo, okLo := decimalRat(yLo)
	mid, okMid := decimalRat(yMid)
	hi, okHi := decimalRat(yHi)
	if !okLo || !okMid || !okHi {
		// non-finite samples have no exact value
		return (yHi-yLo)*float64(dMid) > (yMid-yLo)*float64(dHi)
	}

	l := new(big.Rat).Sub(hi, lo)
	l.Mul(l, new(big.Rat).SetInt64(int64(dMid)))

	r := new(big.Rat).Sub(mid, lo)
	r.Mul(r, new(big.Rat).SetInt64(int64(dHi)))

	return l.Cmp(r) > 0
}

// Horizontal builds the horizontal visibility graph: i and j are connected when every sample
// between them is lower than both. A monotonic stack keeps the samples that can still see
// to the right.
func Horizontal(series []float64) *Graph {
	g := NewGraph(len(series))
	stack := make([]int, 0, len(series))
	for j, v := range series {
		for len(stack) > 0 && series[stack[len(stack)-1]] < v {
			g.Connect(stack[len(stack)-1], j)
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 {
			top := stack[len(stack)-1]
			g.Connect(top, j)
			// an equal sample blocks top from everything further right
			if series[top] == v {
				stack = stack[:len(stack)-1]
			}
		}

		stack = append(stack, j)
	}
	return g
}

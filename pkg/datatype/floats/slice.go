package floats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Slice is an index-aligned float64 series.
type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

// Zeros returns a series of n zero values, the warm-up filler of every indicator.
func Zeros(n int) Slice {
	return make(Slice, n)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Length() int {
	return len(s)
}

// Clone returns a copy that does not share the backing array.
func (s Slice) Clone() Slice {
	if s == nil {
		return nil
	}

	c := make(Slice, len(s))
	copy(c, s)
	return c
}

// Sum adds the values from left to right. floats.Sum accumulates in SIMD lanes whose
// grouping depends on the slice alignment, which can move a 2-decimal rounding boundary.
func (s Slice) Sum() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s.Sum() / float64(len(s))
}

func (s Slice) Max() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return floats.Max(s)
}

func (s Slice) Min() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return floats.Min(s)
}

func (s Slice) Add(b Slice) Slice {
	c := make(Slice, len(s))
	floats.AddTo(c, s, b)
	return c
}

func (s Slice) Sub(b Slice) Slice {
	c := make(Slice, len(s))
	floats.SubTo(c, s, b)
	return c
}

func (s Slice) Abs() Slice {
	c := make(Slice, len(s))
	for i, v := range s {
		c[i] = math.Abs(v)
	}
	return c
}

// Diff returns the one-step differences; the first element is 0.
func (s Slice) Diff() Slice {
	c := make(Slice, len(s))
	for i := 1; i < len(s); i++ {
		c[i] = s[i] - s[i-1]
	}
	return c
}

// Window returns the trailing window of the given size ending at index end (inclusive).
// The window is clamped to the beginning of the series.
func (s Slice) Window(end, size int) Slice {
	start := end - size + 1
	if start < 0 {
		start = 0
	}
	return s[start : end+1]
}

func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		return s.Clone()
	}
	return s[length-size:].Clone()
}

func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}
	return s[len(s)-size:]
}

func (s Slice) Last(i int) float64 {
	length := len(s)
	if i < 0 || length-1-i < 0 {
		return 0.0
	}
	return s[length-1-i]
}

// Round returns a new series with every value rounded to the given decimal places.
func (s Slice) Round(places int) Slice {
	c := make(Slice, len(s))
	for i, v := range s {
		c[i] = Round(v, places)
	}
	return c
}

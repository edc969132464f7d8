package visgraph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasic(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		edges  [][2]int
	}{
		{"zigzag", []float64{1, 3, 2, 4, 1, 5, 2}, [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}, {4, 5}, {5, 6}}},
		{"valley", []float64{4, 1, 2, 1, 3}, [][2]int{{0, 1}, {0, 2}, {0, 4}, {1, 2}, {2, 3}, {2, 4}, {3, 4}}},
		{"collinear", []float64{2, 2, 2, 2}, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"convex", []float64{1, 2, 5}, [][2]int{{0, 1}, {0, 2}, {1, 2}}},
		{"collinear decimals", []float64{0.2, 0, 0.3, 0.4, 0.9}, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {2, 3}, {2, 4}, {3, 4}}},
		{"single", []float64{1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Basic(tt.series)
			assert.Equal(t, len(tt.series), g.Order())
			assert.Equal(t, tt.edges, g.Edges())
			assert.Equal(t, tt.edges, Fast(tt.series).Edges())
		})
	}
}

func TestFast_SameEdgesAsBasic(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := 1 + rnd.Intn(40)
		levels := 1 + rnd.Intn(10)
		series := make([]float64, n)
		for i := range series {
			series[i] = float64(rnd.Intn(levels))
		}

		assert.Equal(t, Basic(series).Edges(), Fast(series).Edges(), "series %v", series)
	}
}

func TestFast_SameEdgesAsBasic_Decimals(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for round := 0; round < 2000; round++ {
		n := 1 + rnd.Intn(30)
		levels := 1 + rnd.Intn(12)
		series := make([]float64, n)
		for i := range series {
			series[i] = float64(rnd.Intn(levels+1)) / 10 * 1.1
		}

		assert.Equal(t, Basic(series).Edges(), Fast(series).Edges(), "series %v", series)
	}
}

func TestBelow(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   bool
	}{
		{"on the segment", []float64{0, 0.45, 0.9}, false},
		{"on the segment, inexact binary", []float64{0.1, 0.2, 0.3}, false},
		{"under the segment", []float64{0, 0.44, 0.9}, true},
		{"over the segment", []float64{0, 0.46, 0.9}, false},
		{"large offset on the segment", []float64{1e6 + 0.1, 1e6 + 0.2, 1e6 + 0.3}, false},
		{"flat", []float64{2, 2, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, below(tt.series, 0, 1, 2))
		})
	}
}

func TestHorizontal(t *testing.T) {
	g := Horizontal([]float64{1, 3, 2, 4, 1, 5, 2})
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}, {4, 5}, {5, 6}}, g.Edges())
	assert.Equal(t, []int{1, 3, 2, 4, 2, 3, 1}, g.Degrees())

	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, Horizontal([]float64{2, 2, 2}).Edges())
	// the equal sample 1 blocks 0 from 3
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 3}}, Horizontal([]float64{2, 2, 1, 3}).Edges())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}}, Horizontal([]float64{3, 1, 3, 1, 3}).Edges())

	g = Horizontal([]float64{1, 2, 5})
	assert.False(t, g.HasEdge(0, 2))
	assert.True(t, Basic([]float64{1, 2, 5}).HasEdge(0, 2))
}

func TestHorizontal_MatchesDefinition(t *testing.T) {
	visible := func(series []float64, i, j int) bool {
		for k := i + 1; k < j; k++ {
			if series[k] >= series[i] || series[k] >= series[j] {
				return false
			}
		}
		return true
	}

	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		series := make([]float64, 1+rnd.Intn(30))
		for i := range series {
			series[i] = float64(rnd.Intn(6))
		}

		g := Horizontal(series)
		for i := range series {
			for j := i + 1; j < len(series); j++ {
				assert.Equal(t, visible(series, i, j), g.HasEdge(i, j), "series %v edge %d-%d", series, i, j)
			}
		}
	}
}

func TestGraph(t *testing.T) {
	g := NewGraph(4)
	g.Connect(2, 1)
	g.Connect(1, 2)
	g.Connect(3, 3)
	g.Connect(0, 3)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, [][2]int{{0, 3}, {1, 2}}, g.Edges())
	assert.Equal(t, []int{1, 1, 1, 1}, g.Degrees())
	assert.True(t, g.HasEdge(3, 0))

	empty := NewGraph(0)
	assert.Equal(t, 0, empty.Order())
	assert.Empty(t, empty.Edges())
	assert.Empty(t, empty.Degrees())
}

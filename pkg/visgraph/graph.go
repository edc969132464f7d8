package visgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// Graph is an undirected graph with one node per sample of the source series.
type Graph struct {
	g     *simple.UndirectedGraph
	order int
}

// NewGraph returns a graph of n isolated nodes numbered 0..n-1.
func NewGraph(n int) *Graph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	return &Graph{g: g, order: n}
}

// Connect adds the edge i-j. Self loops and repeated edges are ignored.
func (g *Graph) Connect(i, j int) {
	if i == j || g.HasEdge(i, j) {
		return
	}
	g.g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
}

func (g *Graph) HasEdge(i, j int) bool {
	return g.g.HasEdgeBetween(int64(i), int64(j))
}

// Order returns the number of nodes.
func (g *Graph) Order() int {
	return g.order
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	return g.g.Edges().Len()
}

// Edges returns every edge once as {i, j} with i < j, sorted.
func (g *Graph) Edges() [][2]int {
	var edges [][2]int
	it := g.g.Edges()
	for it.Next() {
		e := it.Edge()
		i, j := int(e.From().ID()), int(e.To().ID())
		if i > j {
			i, j = j, i
		}
		edges = append(edges, [2]int{i, j})
	}

	sort.Slice(edges, func(a, b int) bool {
		if edges[a][0] != edges[b][0] {
			return edges[a][0] < edges[b][0]
		}
		return edges[a][1] < edges[b][1]
	})
	return edges
}

// Degrees returns the degree of every node in node order.
func (g *Graph) Degrees() []int {
	degrees := make([]int, g.order)
	for i := range degrees {
		degrees[i] = g.g.From(int64(i)).Len()
	}
	return degrees
}

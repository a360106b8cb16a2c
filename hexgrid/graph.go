package hexgrid

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// ToGraph converts the lattice into a weighted, undirected gonum graph.
// Node IDs are row-major indices (see Coordinate); each adjacency becomes one
// edge weighted by its Euclidean distance. Weight returns 0 for a node to
// itself and +Inf for non-adjacent pairs.
// Complexity: O(W·H) time and memory.
func (g *Grid) ToGraph() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range g.nodes {
		wg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		u := g.index(e.From.Col, e.From.Row)
		v := g.index(e.To.Col, e.To.Row)
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(u)),
			T: simple.Node(int64(v)),
			W: e.Distance,
		})
	}
	return wg
}

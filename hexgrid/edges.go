package hexgrid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Edges lists every undirected adjacency exactly once, in row-major order of
// From and, per node, in the order right, bottom-left, bottom-right.
// Complexity: O(W·H).
func (g *Grid) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for i := range g.nodes {
		n := &g.nodes[i]
		for _, d := range forward {
			to, ok := n.Neighbor(d)
			if !ok {
				continue
			}
			out = append(out, Edge{From: n.coord, To: to, Direction: d, Distance: n.dists[d]})
		}
	}
	return out
}

// Summary describes the distribution of all edge distances.
// Returns ErrNoNeighbors for a grid without adjacencies.
func (g *Grid) Summary() (Summary, error) {
	if g.edges == 0 {
		return Summary{}, ErrNoNeighbors
	}
	edges := g.Edges()
	ds := make([]float64, len(edges))
	for i, e := range edges {
		ds[i] = e.Distance
	}
	mean, std := stat.PopMeanStdDev(ds, nil)

	return Summary{
		Edges:  len(ds),
		Min:    floats.Min(ds),
		Max:    floats.Max(ds),
		Mean:   mean,
		StdDev: std,
	}, nil
}

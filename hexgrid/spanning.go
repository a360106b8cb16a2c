package hexgrid

import "sort"

// SpanningTree returns the minimum spanning tree of the lattice weighted by
// codebook distance, and its total weight. Cutting its heaviest edges splits
// the map along its strongest U-Matrix ridges.
//
// The hexagonal lattice is always connected, so the tree has Len()-1 edges.
// Ties are broken by Edges order, making the result deterministic.
//
// Error Conditions: none; a 1×1 grid yields an empty tree of weight 0.
//
// Steps:
//  1. Collect every undirected edge once (Edges) and stable-sort by distance.
//  2. Initialize a disjoint-set forest over row-major node indices.
//  3. For each edge in order, if its endpoints lie in different sets, union
//     them (by rank, with path compression) and keep the edge.
//  4. Stop once Len()-1 edges are kept.
//
// Complexity: O(E log E) with E ≤ 3·W·H. Memory: O(E + W·H).
func (g *Grid) SpanningTree() ([]Edge, float64) {
	// 1. Candidate edges, lightest first
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Distance < edges[j].Distance
	})

	// 2. Disjoint sets over row-major node indices
	parent := make([]int, len(g.nodes))
	rank := make([]uint8, len(g.nodes))
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	tree := make([]Edge, 0, len(g.nodes)-1)
	var total float64
	// 3. Keep edges that join two components
	for _, e := range edges {
		ru := find(g.index(e.From.Col, e.From.Row))
		rv := find(g.index(e.To.Col, e.To.Row))
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree = append(tree, e)
		total += e.Distance
		// 4. Tree complete
		if len(tree) == len(g.nodes)-1 {
			break
		}
	}
	return tree, total
}

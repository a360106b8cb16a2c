package hexgrid

// Clusters groups nodes into connected components where two adjacent nodes
// belong together iff their distance is ≤ threshold. On a U-Matrix these are
// the low-distance basins separated by high-distance ridges.
//
// Returns a slice of components; each component is a slice of row-major node
// indices in BFS order. Components are ordered by their smallest index.
// To convert an index back to coordinates, use Coordinate.
//
// Error Conditions: none; a negative threshold joins nothing and yields W·H
// singleton components.
//
// Steps:
//  1. Scan nodes in row-major order, skipping those already assigned.
//  2. BFS from each unassigned node across present directions whose
//     distance is ≤ threshold.
//  3. Append the BFS order as one component.
//
// Time:   O(W·H·6).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Clusters(threshold float64) [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for i0 := range g.nodes {
		if seen[i0] {
			continue
		}
		// 2. BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := &g.nodes[queue[qi]]
			for _, d := range Directions {
				dist, ok := u.DistanceTo(d)
				if !ok || dist > threshold {
					continue
				}
				c := u.nbrs[d]
				vi := g.index(c.Col, c.Row)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		// 3. Emit
		comps = append(comps, queue)
	}
	return comps
}

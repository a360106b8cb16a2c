package hexgrid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Node is one lattice position and its reference vector.
// Links are filled exclusively by the Grid's adjacency pass; a Node never
// discovers its own neighbors.
type Node struct {
	coord  Coord
	vector []float64
	mask   uint8 // bit d set iff direction d has a neighbor
	nbrs   [NumDirections]Coord
	dists  [NumDirections]float64
}

// newNode wraps vector at (col, row) with every direction absent.
func newNode(col, row int, vector []float64) Node {
	return Node{coord: Coord{Col: col, Row: row}, vector: vector}
}

// Coord returns the lattice coordinates of n.
func (n *Node) Coord() Coord { return n.coord }

// Col returns the column of n.
func (n *Node) Col() int { return n.coord.Col }

// Row returns the row of n.
func (n *Node) Row() int { return n.coord.Row }

// Vector returns a copy of the reference vector of n.
func (n *Node) Vector() []float64 {
	out := make([]float64, len(n.vector))
	copy(out, n.vector)
	return out
}

// Dim returns the length of the reference vector.
func (n *Node) Dim() int { return len(n.vector) }

// HasNeighbor reports whether a neighbor lies in direction d.
func (n *Node) HasNeighbor(d Direction) bool {
	return int(d) < NumDirections && n.mask&(1<<d) != 0
}

// Neighbor returns the coordinates of the neighbor in direction d,
// or false if d points past the grid boundary.
func (n *Node) Neighbor(d Direction) (Coord, bool) {
	if !n.HasNeighbor(d) {
		return Coord{}, false
	}
	return n.nbrs[d], true
}

// NeighborCount returns how many of the six directions are present.
func (n *Node) NeighborCount() int {
	count := 0
	for _, d := range Directions {
		if n.HasNeighbor(d) {
			count++
		}
	}
	return count
}

// DistanceTo returns the Euclidean distance to the neighbor in direction d.
// The boolean is false when d is absent; that is a boundary, not an error.
func (n *Node) DistanceTo(d Direction) (float64, bool) {
	if !n.HasNeighbor(d) {
		return 0, false
	}
	return n.dists[d], true
}

// distances returns the distances of all present directions in Directions order.
func (n *Node) distances() []float64 {
	out := make([]float64, 0, NumDirections)
	for _, d := range Directions {
		if dist, ok := n.DistanceTo(d); ok {
			out = append(out, dist)
		}
	}
	return out
}

// AverageDistance returns the mean distance over present directions.
// Boundary directions are excluded, not counted as zero.
// Returns ErrNoNeighbors for an isolated node (a 1×1 grid).
func (n *Node) AverageDistance() (float64, error) {
	ds := n.distances()
	if len(ds) == 0 {
		return 0, ErrNoNeighbors
	}
	return stat.Mean(ds, nil), nil
}

// MaxDistance returns the largest distance over present directions.
// Returns ErrNoNeighbors for an isolated node (a 1×1 grid).
func (n *Node) MaxDistance() (float64, error) {
	ds := n.distances()
	if len(ds) == 0 {
		return 0, ErrNoNeighbors
	}
	return floats.Max(ds), nil
}

package umatrix

import (
	"errors"

	"github.com/katalvlaran/umatrix/hexgrid"
)

// rowShift is the first occupied column of expanded row Y, indexed by Y mod 4.
var rowShift = [4]int{0, 1, 2, 1}

// Position returns the expanded-lattice position of node c.
func Position(c hexgrid.Coord) (x, y int) {
	return 4*c.Col + 2*(c.Row&1), 2 * c.Row
}

// RowShift returns the first occupied column of expanded row y.
func RowShift(y int) int {
	return rowShift[y&3]
}

// Build lays g out as a U-Matrix. Node cells come first in row-major node
// order, followed by one edge cell per adjacency in hexgrid.Grid.Edges order.
//
// A grid without adjacencies (1×1) yields a single node cell with zero
// distance and intensity; a grid whose maximum distance is 0 yields zero
// intensities everywhere.
//
// Complexity: O(W·H).
func Build(g *hexgrid.Grid, opts Options) (*UMatrix, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	maxDist, err := g.MaxDistance()
	if err != nil && !errors.Is(err, hexgrid.ErrNoNeighbors) {
		return nil, err
	}

	edges := g.Edges()
	u := &UMatrix{
		Width:       4*g.XDim() - 1,
		Height:      2*g.YDim() - 1,
		MaxDistance: maxDist,
		Cells:       make([]Cell, 0, g.Len()+len(edges)),
		index:       make(map[[2]int]int, g.Len()+len(edges)),
	}

	for _, n := range g.Nodes() {
		v, err := nodeValue(n, opts.NodeStatistic)
		if err != nil && !errors.Is(err, hexgrid.ErrNoNeighbors) {
			return nil, err
		}
		x, y := Position(n.Coord())
		u.add(Cell{Kind: NodeCell, X: x, Y: y, From: n.Coord(), To: n.Coord(), Distance: v})
	}
	for _, e := range edges {
		ax, ay := Position(e.From)
		bx, by := Position(e.To)
		u.add(Cell{
			Kind:     EdgeCell,
			X:        (ax + bx) / 2,
			Y:        (ay + by) / 2,
			From:     e.From,
			To:       e.To,
			Distance: e.Distance,
		})
	}

	return u, nil
}

// nodeValue returns the statistic s of n's neighbor distances.
func nodeValue(n *hexgrid.Node, s NodeStatistic) (float64, error) {
	switch s {
	case Maximum:
		return n.MaxDistance()
	default:
		return n.AverageDistance()
	}
}

// add appends c with its normalized intensity and indexes its position.
func (u *UMatrix) add(c Cell) {
	if u.MaxDistance > 0 {
		// a node mean can round a hair above the maximum
		c.Intensity = min(c.Distance/u.MaxDistance, 1)
	}
	u.index[[2]int{c.X, c.Y}] = len(u.Cells)
	u.Cells = append(u.Cells, c)
}

// At returns the cell at expanded position (x, y), or false for a gap.
func (u *UMatrix) At(x, y int) (Cell, bool) {
	i, ok := u.index[[2]int{x, y}]
	if !ok {
		return Cell{}, false
	}
	return u.Cells[i], true
}

// Nodes returns the node cells.
func (u *UMatrix) Nodes() []Cell {
	return u.filter(NodeCell)
}

// EdgeCells returns the edge cells.
func (u *UMatrix) EdgeCells() []Cell {
	return u.filter(EdgeCell)
}

func (u *UMatrix) filter(k CellKind) []Cell {
	var out []Cell
	for _, c := range u.Cells {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

package hexgrid

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// New builds a Grid from a [yDim][xDim][vectorDim] vector grid and resolves
// every node's six neighbor links.
// It deep-copies the input, so later changes to vectors do not affect the Grid.
//
// Returns ErrEmptyGrid if vectors has no rows or no columns,
// ErrNonRectangular if row lengths differ, and ErrDimensionMismatch if
// vectorDim is not positive or any vector's length differs from vectorDim.
// On error no Grid is returned.
//
// Error Conditions:
//   - ErrEmptyGrid         : len(vectors) == 0 or len(vectors[0]) == 0.
//   - ErrNonRectangular    : some row has a different length than row 0.
//   - ErrDimensionMismatch : vectorDim ≤ 0, or a vector of another length.
//
// Steps:
//  1. Validate shape and vectorDim.
//  2. Copy every vector into one row-major backing array and wrap it in a Node.
//  3. Link: for each node, resolve the six candidate offsets, keep the
//     in-bounds ones and store their distances (rows in parallel when
//     opts.Parallelism > 1).
//  4. Aggregate: count undirected edges and cache the largest distance.
//
// Complexity: O(W·H·D) time and memory.
func New(vectors [][][]float64, vectorDim int, opts Options) (*Grid, error) {
	// 1. Validate
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if vectorDim <= 0 {
		return nil, fmt.Errorf("%w: vectorDim must be positive, got %d", ErrDimensionMismatch, vectorDim)
	}
	h, w := len(vectors), len(vectors[0])
	for _, row := range vectors {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		vectorDim: vectorDim,
		xDim:      w,
		yDim:      h,
		nodes:     make([]Node, 0, w*h),
	}
	// 2. Deep copy into one backing array to prevent external mutation
	values := make([]float64, w*h*vectorDim)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			src := vectors[row][col]
			if len(src) != vectorDim {
				return nil, fmt.Errorf("%w: node (%d,%d) has %d values, want %d",
					ErrDimensionMismatch, col, row, len(src), vectorDim)
			}
			off := g.index(col, row) * vectorDim
			vec := values[off : off+vectorDim : off+vectorDim]
			copy(vec, src)
			g.nodes = append(g.nodes, newNode(col, row, vec))
		}
	}

	// 3. Adjacency pass
	if err := g.link(opts.Parallelism); err != nil {
		return nil, err
	}
	// 4. Edge count and global max
	g.aggregate()

	return g, nil
}

// link runs the adjacency pass. Each row only writes its own nodes and reads
// immutable vectors, so rows can be linked independently.
func (g *Grid) link(parallelism int) error {
	if parallelism <= 1 {
		for row := 0; row < g.yDim; row++ {
			if err := g.linkRow(row); err != nil {
				return err
			}
		}
		return nil
	}

	var eg errgroup.Group
	eg.SetLimit(parallelism)
	for row := 0; row < g.yDim; row++ {
		eg.Go(func() error {
			return g.linkRow(row)
		})
	}
	return eg.Wait()
}

// linkRow resolves the links of every node on row.
func (g *Grid) linkRow(row int) error {
	for col := 0; col < g.xDim; col++ {
		if err := g.linkNode(col, row); err != nil {
			return err
		}
	}
	return nil
}

// linkNode computes the six candidate neighbors of (col, row), keeps the
// in-bounds ones and stores their distances.
func (g *Grid) linkNode(col, row int) error {
	n := &g.nodes[g.index(col, row)]
	for _, d := range Directions {
		dc, dr := d.Offset(row)
		c, r := col+dc, row+dr
		if !g.InBounds(c, r) {
			continue
		}
		dist, err := Euclidean(n.vector, g.nodes[g.index(c, r)].vector)
		if err != nil {
			return fmt.Errorf("link %v %v: %w", n.coord, d, err)
		}
		n.nbrs[d] = Coord{Col: c, Row: r}
		n.dists[d] = dist
		n.mask |= 1 << d
	}
	return nil
}

// aggregate caches the edge count and the largest neighbor distance.
func (g *Grid) aggregate() {
	links := 0
	for i := range g.nodes {
		n := &g.nodes[i]
		for _, d := range Directions {
			if dist, ok := n.DistanceTo(d); ok {
				links++
				if dist > g.maxDist {
					g.maxDist = dist
				}
			}
		}
	}
	// every adjacency is seen from both ends
	g.edges = links / 2
}

// VectorDim returns the length of every reference vector.
func (g *Grid) VectorDim() int { return g.vectorDim }

// XDim returns the number of columns.
func (g *Grid) XDim() int { return g.xDim }

// YDim returns the number of rows.
func (g *Grid) YDim() int { return g.yDim }

// Len returns the number of nodes, XDim·YDim.
func (g *Grid) Len() int { return len(g.nodes) }

// EdgeCount returns the number of undirected adjacencies.
func (g *Grid) EdgeCount() int { return g.edges }

// InBounds reports whether (col, row) lies within the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.xDim && row >= 0 && row < g.yDim
}

// index maps (col, row) to a row-major arena index: row*xDim + col.
func (g *Grid) index(col, row int) int {
	return row*g.xDim + col
}

// Index returns the row-major arena index of c, or false if c is out of range.
func (g *Grid) Index(c Coord) (int, bool) {
	if !g.InBounds(c.Col, c.Row) {
		return 0, false
	}
	return g.index(c.Col, c.Row), true
}

// Coordinate converts a row-major index back to lattice coordinates.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Col: idx % g.xDim, Row: idx / g.xDim}
}

// At returns the node on row, col.
// Returns ErrOutOfRange if the position is outside the lattice.
func (g *Grid) At(row, col int) (*Node, error) {
	if !g.InBounds(col, row) {
		return nil, fmt.Errorf("%w: row %d, col %d on %d×%d grid", ErrOutOfRange, row, col, g.xDim, g.yDim)
	}
	return &g.nodes[g.index(col, row)], nil
}

// Node returns the node at c.
// Returns ErrOutOfRange if c is outside the lattice.
func (g *Grid) Node(c Coord) (*Node, error) {
	return g.At(c.Row, c.Col)
}

// Neighbor resolves the link of n in direction d to a node of this grid.
// The boolean is false when d is a boundary.
func (g *Grid) Neighbor(n *Node, d Direction) (*Node, bool) {
	c, ok := n.Neighbor(d)
	if !ok {
		return nil, false
	}
	return &g.nodes[g.index(c.Col, c.Row)], true
}

// Nodes returns every node in row-major order.
func (g *Grid) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	for i := range g.nodes {
		out[i] = &g.nodes[i]
	}
	return out
}

// MaxDistance returns the largest distance between any two adjacent nodes:
// the maximum of every node's MaxDistance. It is computed once at
// construction and used to normalize edge distances into [0, 1].
// Returns ErrNoNeighbors for a grid without adjacencies (1×1).
func (g *Grid) MaxDistance() (float64, error) {
	if g.edges == 0 {
		return 0, ErrNoNeighbors
	}
	return g.maxDist, nil
}

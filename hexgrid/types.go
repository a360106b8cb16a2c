package hexgrid

import "fmt"

// Coord identifies a lattice node by column and row.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// String renders c as "(col,row)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Parallelism bounds the number of rows linked concurrently.
	// Values ≤1 run the adjacency pass sequentially in row-major order.
	Parallelism int
}

// DefaultOptions returns Options with a sequential adjacency pass.
func DefaultOptions() Options {
	return Options{Parallelism: 1}
}

// Edge is one undirected adjacency between two lattice nodes.
type Edge struct {
	From, To  Coord
	Direction Direction // side of From on which To lies
	Distance  float64
}

// Summary describes the distribution of edge distances across a grid.
type Summary struct {
	Edges  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // population standard deviation
}

// Grid is an immutable hexagonal lattice of Nodes.
// Nodes live in a flat row-major arena; neighbor links are coordinates into it.
type Grid struct {
	vectorDim int
	xDim      int
	yDim      int
	nodes     []Node
	edges     int
	maxDist   float64
}

package umatrix

import (
	"fmt"

	"github.com/katalvlaran/umatrix/hexgrid"
)

// CellKind tells node cells from edge cells.
type CellKind uint8

const (
	// NodeCell holds a codebook node and an aggregate of its neighbor distances.
	NodeCell CellKind = iota
	// EdgeCell holds the distance between two adjacent nodes.
	EdgeCell
)

// String returns "node" or "edge".
func (k CellKind) String() string {
	switch k {
	case NodeCell:
		return "node"
	case EdgeCell:
		return "edge"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// NodeStatistic selects the value shown on node cells.
type NodeStatistic uint8

const (
	// Average shows the mean distance to present neighbors.
	Average NodeStatistic = iota
	// Maximum shows the largest distance to a present neighbor.
	Maximum
)

// String returns "average" or "max".
func (s NodeStatistic) String() string {
	switch s {
	case Average:
		return "average"
	case Maximum:
		return "max"
	}
	return fmt.Sprintf("NodeStatistic(%d)", uint8(s))
}

// ParseNodeStatistic maps "average" or "max" to a NodeStatistic.
func ParseNodeStatistic(s string) (NodeStatistic, error) {
	switch s {
	case "average", "":
		return Average, nil
	case "max":
		return Maximum, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatistic, s)
}

// Options configures Build.
type Options struct {
	NodeStatistic NodeStatistic
}

// DefaultOptions shows average neighbor distance on node cells.
func DefaultOptions() Options {
	return Options{NodeStatistic: Average}
}

// Cell is one occupied position of the expanded lattice.
type Cell struct {
	Kind CellKind `json:"kind"`
	X    int      `json:"x"`
	Y    int      `json:"y"`
	// From is the node of a NodeCell, or the first endpoint of an EdgeCell.
	From hexgrid.Coord `json:"from"`
	// To is the second endpoint of an EdgeCell; equal to From for node cells.
	To hexgrid.Coord `json:"to"`
	// Distance is the edge distance, or the node statistic for node cells.
	Distance float64 `json:"distance"`
	// Intensity is Distance normalized by the grid maximum, in [0, 1].
	Intensity float64 `json:"intensity"`
}

// UMatrix is the expanded lattice of a grid.
type UMatrix struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	MaxDistance float64 `json:"max_distance"`
	Cells       []Cell  `json:"cells"`
	index       map[[2]int]int
}

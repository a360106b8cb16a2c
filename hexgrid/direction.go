package hexgrid

import "fmt"

// Direction names one of the six sides of a hexagon.
// Offsets depend on row parity: shift is row&1, so odd rows sit half a cell
// to the right of even rows.
type Direction uint8

const (
	// TopLeft points to (col−1+shift, row−1).
	TopLeft Direction = iota
	// TopRight points to (col+shift, row−1).
	TopRight
	// Left points to (col−1, row).
	Left
	// Right points to (col+1, row).
	Right
	// BottomLeft points to (col−1+shift, row+1).
	BottomLeft
	// BottomRight points to (col+shift, row+1).
	BottomRight

	// NumDirections is the number of sides of a hexagon.
	NumDirections = 6
)

// Directions lists every direction in adjacency-pass order.
var Directions = [NumDirections]Direction{TopLeft, TopRight, Left, Right, BottomLeft, BottomRight}

// forward holds the directions pointing to a larger row-major index; walking
// them from every node visits each undirected adjacency exactly once.
var forward = [3]Direction{Right, BottomLeft, BottomRight}

var directionLabels = [NumDirections]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	Left:        "left",
	Right:       "right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

// String returns the label of d, e.g. "top-left".
func (d Direction) String() string {
	if int(d) < NumDirections {
		return directionLabels[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection returns the Direction whose label is s.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if directionLabels[d] == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Opposite returns the direction pointing back along d.
func (d Direction) Opposite() Direction {
	switch d {
	case TopLeft:
		return BottomRight
	case TopRight:
		return BottomLeft
	case Left:
		return Right
	case Right:
		return Left
	case BottomLeft:
		return TopRight
	case BottomRight:
		return TopLeft
	}
	panic(fmt.Sprintf("hexgrid: Opposite of invalid %v", d))
}

// Offset returns the (col, row) delta from a node on row to its neighbor in d.
// Odd rows are shifted forward by one column relative to even rows.
func (d Direction) Offset(row int) (dc, dr int) {
	shift := row & 1
	switch d {
	case TopLeft:
		return -1 + shift, -1
	case TopRight:
		return shift, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case BottomLeft:
		return -1 + shift, 1
	case BottomRight:
		return shift, 1
	}
	panic(fmt.Sprintf("hexgrid: Offset of invalid %v", d))
}

package hexgrid

import "errors"

var (
	// ErrEmptyGrid indicates the vector grid has no rows or no columns.
	ErrEmptyGrid = errors.New("hexgrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("hexgrid: all rows must have the same length")
	// ErrDimensionMismatch indicates two compared vectors differ in length.
	ErrDimensionMismatch = errors.New("hexgrid: vector dimension mismatch")
	// ErrNoNeighbors indicates an aggregate was requested where no adjacency exists.
	ErrNoNeighbors = errors.New("hexgrid: no neighbors")
	// ErrOutOfRange indicates a coordinate outside the lattice.
	ErrOutOfRange = errors.New("hexgrid: coordinate out of range")
	// ErrUnknownDirection indicates a direction label outside the six known ones.
	ErrUnknownDirection = errors.New("hexgrid: unknown direction")
)

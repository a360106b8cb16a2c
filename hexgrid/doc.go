// Package hexgrid models the hexagonal lattice of a Self-Organizing Map: one
// Node per codebook vector, six resolved neighbor links per node, and the
// Euclidean distances that a U-Matrix visualizes.
//
// What:
//
//   - Grid owns a rectangular yDim×xDim arena of Nodes, built once and never
//     mutated afterwards.
//   - Adjacency uses doubled (offset) coordinates: odd rows are shifted half a
//     hexagon forward, so a node's neighbors depend on its row parity.
//   - Every neighbor distance is computed during construction; the largest
//     one is cached as the grid's normalization denominator.
//   - Clusters groups nodes joined by short edges; ToGraph exports the
//     lattice as a gonum weighted undirected graph.
//
// Neighbor rule for (col, row), with shift = row mod 2:
//
//	top-left     (col-1+shift, row-1)     top-right    (col+shift, row-1)
//	left         (col-1,       row)       right        (col+1,     row)
//	bottom-left  (col-1+shift, row+1)     bottom-right (col+shift, row+1)
//
// A candidate outside [0,xDim)×[0,yDim) is a boundary: the direction is absent.
//
// Layout (xDim=3, yDim=3):
//
//	(0,0) (1,0) (2,0)
//	   (0,1) (1,1) (2,1)
//	(0,2) (1,2) (2,2)
//
// Options:
//
//   - Options.Parallelism: rows linked concurrently during construction
//     (≤1 means a single sequential pass). The result is identical.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrDimensionMismatch: a vector whose length differs from vectorDim.
//   - ErrNoNeighbors: aggregate distance queried where no adjacency exists.
//   - ErrOutOfRange: coordinate access outside the lattice.
//
// Complexity:
//
//   - New:       O(W·H·D) time, O(W·H·D) memory (D = vectorDim).
//   - Queries:   O(1) per node and direction.
//   - Clusters:  O(W·H).
//   - ToGraph:   O(W·H).
package hexgrid

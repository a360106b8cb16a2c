// Package umatrix lays a hexgrid.Grid out as a U-Matrix: every codebook node
// surrounded by intermediate cells that carry the distance to each neighbor.
//
// The expanded lattice has Width = 4·xDim−1 columns and Height = 2·yDim−1
// rows. Node (c, r) sits at X = 4c + 2·(r mod 2), Y = 2r; the cell between two
// adjacent nodes sits at the midpoint of their positions. Row Y therefore
// starts at column [0,1,2,1][Y mod 4].
//
//	N . E . N . E . N . .       N = node cell
//	. E . E . E . E . E .       E = edge cell
//	. . N . E . N . E . N
//
// Intensity is a cell's distance divided by the grid's maximum neighbor
// distance, so every intensity lies in [0, 1]. Colors and screen geometry are
// left to the renderer.
package umatrix

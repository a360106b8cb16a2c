package hexgrid_test

import (
	"fmt"

	"github.com/katalvlaran/umatrix/hexgrid"
)

// ExampleNew builds the 2×2 lattice and walks the links of its first node.
//
//	(0,0) (1,0)
//	   (0,1) (1,1)
//
// Row 1 is odd, so it is shifted half a hexagon to the right: (0,0) touches
// (1,0) on its right and (0,1) on its bottom-right.
func ExampleNew() {
	vectors := [][][]float64{
		{{0, 0}, {1, 0}},
		{{0, 1}, {1, 1}},
	}
	g, err := hexgrid.New(vectors, 2, hexgrid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	n, _ := g.At(0, 0)
	for _, d := range hexgrid.Directions {
		if c, ok := n.Neighbor(d); ok {
			dist, _ := n.DistanceTo(d)
			fmt.Printf("%-12s %v %.3f\n", d, c, dist)
		}
	}
	gmax, _ := g.MaxDistance()
	fmt.Printf("max %.3f over %d edges\n", gmax, g.EdgeCount())

	// Output:
	// right        (1,0) 1.000
	// bottom-right (0,1) 1.000
	// max 1.414 over 5 edges
}

// ExampleGrid_Clusters separates two groups of similar vectors.
func ExampleGrid_Clusters() {
	vectors := [][][]float64{
		{{0}, {0.1}, {5}},
		{{0.2}, {4.9}, {5.1}},
	}
	g, _ := hexgrid.New(vectors, 1, hexgrid.DefaultOptions())

	for i, comp := range g.Clusters(0.5) {
		fmt.Printf("cluster %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", g.Coordinate(idx))
		}
		fmt.Println()
	}

	// Output:
	// cluster 0: (0,0) (1,0) (0,1)
	// cluster 1: (2,0) (1,1) (2,1)
}

package hexgrid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/umatrix/hexgrid"
)

// randomVectors returns a deterministic x×y grid of dim-length vectors.
func randomVectors(x, y, dim int) [][][]float64 {
	rng := rand.New(rand.NewSource(42))
	grid := make([][][]float64, y)
	for r := range grid {
		grid[r] = make([][]float64, x)
		for c := range grid[r] {
			v := make([]float64, dim)
			for i := range v {
				v[i] = rng.Float64()
			}
			grid[r][c] = v
		}
	}
	return grid
}

// BenchmarkNew measures construction of a 100×100 lattice of 64-dim vectors.
// Complexity: O(W×H×D)
func BenchmarkNew(b *testing.B) {
	vectors := randomVectors(100, 100, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hexgrid.New(vectors, 64, hexgrid.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNew_Parallel is BenchmarkNew with rows linked on 8 workers.
func BenchmarkNew_Parallel(b *testing.B) {
	vectors := randomVectors(100, 100, 64)
	opts := hexgrid.Options{Parallelism: 8}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hexgrid.New(vectors, 64, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClusters measures component search on the same lattice.
func BenchmarkClusters(b *testing.B) {
	g, err := hexgrid.New(randomVectors(100, 100, 64), 64, hexgrid.DefaultOptions())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clusters(3)
	}
}

func BenchmarkSpanningTree(b *testing.B) {
	g, err := hexgrid.New(randomVectors(100, 100, 64), 64, hexgrid.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.SpanningTree()
	}
}

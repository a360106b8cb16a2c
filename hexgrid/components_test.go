package hexgrid_test

import (
	"testing"

	"github.com/katalvlaran/umatrix/hexgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClusters_Ridge splits a 4×2 grid along a high-distance ridge between
// columns 1 and 2.
func TestClusters_Ridge(t *testing.T) {
	vectors := [][][]float64{
		{{0}, {0.1}, {5}, {5.1}},
		{{0.1}, {0.2}, {5.2}, {5}},
	}
	g, err := hexgrid.New(vectors, 1, hexgrid.DefaultOptions())
	require.NoError(t, err)

	comps := g.Clusters(1)
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []int{0, 1, 4, 5}, comps[0])
	assert.ElementsMatch(t, []int{2, 3, 6, 7}, comps[1])
	assert.Equal(t, 0, comps[0][0], "components start at their smallest index")
	assert.Equal(t, 2, comps[1][0])
}

func TestClusters_Thresholds(t *testing.T) {
	g, err := hexgrid.New(square(), 2, hexgrid.DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, g.Clusters(1), 1, "every edge ≤ 1 joins everything")
	assert.Len(t, g.Clusters(0.5), 4, "no edge ≤ 0.5 leaves singletons")
	assert.Len(t, g.Clusters(-1), 4)

	total := 0
	for _, c := range g.Clusters(0.5) {
		total += len(c)
	}
	assert.Equal(t, g.Len(), total)
}

package loader_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/umatrix/codebook"
	"github.com/katalvlaran/umatrix/hexgrid"
	"github.com/katalvlaran/umatrix/loader"
	"github.com/katalvlaran/umatrix/source"
)

const square = "2 0 2 2\r\n0.0 0.0\r\n1.0 0.0\r\n0.0 1.0\r\n1.0 1.0\r\n"

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "som.cod")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// -----------------------------------------------------------------------------
// Load
// -----------------------------------------------------------------------------

func TestLoad_Square(t *testing.T) {
	g, err := loader.Load([]byte(square))
	require.NoError(t, err)
	assert.Equal(t, 2, g.XDim())
	assert.Equal(t, 2, g.YDim())
	assert.Equal(t, 2, g.VectorDim())

	n, err := g.At(0, 0)
	require.NoError(t, err)
	d, ok := n.DistanceTo(hexgrid.Right)
	require.True(t, ok)
	assert.InDelta(t, 1.0, d, 1e-12)
	d, ok = n.DistanceTo(hexgrid.BottomRight)
	require.True(t, ok)
	assert.InDelta(t, 1.0, d, 1e-12)

	maxDist, err := g.MaxDistance()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, maxDist, 1e-12)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"HeaderThreeTokens", "2 0 2\n0 0\n", codebook.ErrMalformedHeader},
		{"HeaderNonNumeric", "two 0 2 2\n", codebook.ErrMalformedHeader},
		{"Empty", "", codebook.ErrMalformedHeader},
		{"TooFewLines", "2 0 2 2\n0 0\n1 0\n0 1\n", codebook.ErrMalformedInput},
		{"BadToken", "2 0 1 1\n0 x\n", codebook.ErrMalformedInput},
		{"HugeVectorDim", "4611686018427387904 hexa 1 1\r\n1 2\r\n", codebook.ErrMalformedInput},
		{"HugeLattice", "1 hexa 4294967296 4294967296\r\n1\r\n", codebook.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := loader.Load([]byte(tc.raw))
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestLoad_SingleNode(t *testing.T) {
	g, err := loader.Load([]byte("2 hexa 1 1\n1.0 2.0\n"))
	require.NoError(t, err)
	n, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, n.NeighborCount())

	_, err = n.AverageDistance()
	assert.ErrorIs(t, err, hexgrid.ErrNoNeighbors)
	_, err = n.MaxDistance()
	assert.ErrorIs(t, err, hexgrid.ErrNoNeighbors)
	_, err = g.MaxDistance()
	assert.ErrorIs(t, err, hexgrid.ErrNoNeighbors)
}

func TestLoader_GridOptions(t *testing.T) {
	seq, err := loader.Load([]byte(square))
	require.NoError(t, err)
	par, err := loader.New(loader.WithGridOptions(hexgrid.Options{Parallelism: 4})).Load([]byte(square))
	require.NoError(t, err)
	assert.Equal(t, seq.Edges(), par.Edges())
}

// -----------------------------------------------------------------------------
// LoadFrom / LoadAsync
// -----------------------------------------------------------------------------

func TestLoadFrom_File(t *testing.T) {
	src := source.FileSource{Path: writeFile(t, square)}
	g, err := loader.New().LoadFrom(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

func TestLoadFrom_NotFound(t *testing.T) {
	src := source.FileSource{Path: filepath.Join(t.TempDir(), "nope.cod")}
	g, err := loader.New().LoadFrom(context.Background(), src)
	assert.ErrorIs(t, err, source.ErrNotFound)
	assert.Nil(t, g)
}

func TestLoadFrom_Cancelled(t *testing.T) {
	src := source.FileSource{Path: writeFile(t, square)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := loader.New().LoadFrom(ctx, src)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, g)
}

func TestLoadAsync(t *testing.T) {
	src := source.FileSource{Path: writeFile(t, square)}
	ch := loader.New().LoadAsync(context.Background(), src)

	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, 4, res.Grid.Len())

	_, ok = <-ch
	assert.False(t, ok, "channel must be closed after one result")
}

func TestLoadAsync_Failure(t *testing.T) {
	src := source.FileSource{Path: writeFile(t, "2 0 2\n")}
	res := <-loader.New().LoadAsync(context.Background(), src)
	assert.ErrorIs(t, res.Err, codebook.ErrMalformedHeader)
	assert.Nil(t, res.Grid)
}

// -----------------------------------------------------------------------------
// Metrics / Logger
// -----------------------------------------------------------------------------

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := loader.NewMetrics(reg)
	ld := loader.New(loader.WithMetrics(m))

	_, err := ld.Load([]byte(square))
	require.NoError(t, err)
	_, err = ld.Load([]byte("bad"))
	require.Error(t, err)
	_, err = ld.LoadFrom(context.Background(), source.FileSource{Path: filepath.Join(t.TempDir(), "x")})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Loads.WithLabelValues(loader.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Loads.WithLabelValues(loader.OutcomeMalformed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Loads.WithLabelValues(loader.OutcomeNotFound)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Nodes))
	assert.InDelta(t, math.Sqrt2, testutil.ToFloat64(m.MaxDistance), 1e-12)
	assert.Equal(t, 3, testutil.CollectAndCount(m.Loads))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestLogger_LoadFields(t *testing.T) {
	var buf bytes.Buffer
	logger := loader.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	src := source.FileSource{Path: writeFile(t, square)}

	_, err := loader.New(loader.WithLogger(logger)).LoadFrom(context.Background(), src)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var fetch, load map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &fetch))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &load))

	assert.Equal(t, "fetch completed", fetch["msg"])
	assert.Equal(t, "load completed", load["msg"])
	assert.Equal(t, fetch["load_id"], load["load_id"])
	assert.NotEmpty(t, load["load_id"])
	assert.Equal(t, src.String(), load["source"])
	assert.Equal(t, 2.0, load["x_dim"])
	assert.Equal(t, 2.0, load["y_dim"])
	assert.Equal(t, 2.0, load["vector_dim"])
}

func TestLogger_Failure(t *testing.T) {
	var buf bytes.Buffer
	logger := loader.NewLogger(slog.NewJSONHandler(&buf, nil))

	_, err := loader.New(loader.WithLogger(logger)).Load([]byte("1 2"))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"load failed"`)
	assert.Contains(t, buf.String(), "malformed header")
}

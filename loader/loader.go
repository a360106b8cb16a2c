package loader

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/umatrix/codebook"
	"github.com/katalvlaran/umatrix/hexgrid"
	"github.com/katalvlaran/umatrix/source"
)

// Loader builds grids from codebook documents.
// A Loader is safe for concurrent use once constructed.
type Loader struct {
	logger   *Logger
	metrics  *Metrics
	gridOpts hexgrid.Options
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. nil restores the no-op logger.
func WithLogger(l *Logger) Option {
	return func(ld *Loader) {
		if l == nil {
			l = NoopLogger()
		}
		ld.logger = l
	}
}

// WithMetrics records every load in m.
func WithMetrics(m *Metrics) Option {
	return func(ld *Loader) { ld.metrics = m }
}

// WithGridOptions sets the options passed to hexgrid.New.
func WithGridOptions(opts hexgrid.Options) Option {
	return func(ld *Loader) { ld.gridOpts = opts }
}

// New returns a Loader with a no-op logger, no metrics and
// hexgrid.DefaultOptions, then applies opts in order.
func New(opts ...Option) *Loader {
	ld := &Loader{
		logger:   NoopLogger(),
		gridOpts: hexgrid.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Result is the outcome of an asynchronous load: exactly one of Grid and
// Err is set.
type Result struct {
	Grid *hexgrid.Grid
	Err  error
}

// Load builds a grid from raw codebook text with default settings.
func Load(raw []byte) (*hexgrid.Grid, error) {
	return New().Load(raw)
}

// Load parses raw and builds its grid.
// Fails with codebook.ErrMalformedHeader or codebook.ErrMalformedInput.
func (l *Loader) Load(raw []byte) (*hexgrid.Grid, error) {
	ctx := context.Background()
	log := l.logger.WithLoadID(uuid.NewString())
	start := time.Now()

	g, err := l.build(raw)
	elapsed := time.Since(start)
	log.LogLoad(ctx, "inline", g, elapsed, err)
	l.metrics.observe(g, elapsed, err)
	return g, err
}

// LoadFrom reads src to completion, then parses and builds its grid.
// If ctx is done at any point before the grid is returned, the result is
// discarded and ctx.Err() is reported.
func (l *Loader) LoadFrom(ctx context.Context, src source.Source) (*hexgrid.Grid, error) {
	log := l.logger.WithLoadID(uuid.NewString())
	start := time.Now()

	g, err := l.loadFrom(ctx, log, src)
	elapsed := time.Since(start)
	log.LogLoad(ctx, src.String(), g, elapsed, err)
	l.metrics.observe(g, elapsed, err)
	return g, err
}

// LoadAsync runs LoadFrom in its own goroutine. The channel receives
// exactly one Result and is then closed.
func (l *Loader) LoadAsync(ctx context.Context, src source.Source) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		g, err := l.LoadFrom(ctx, src)
		out <- Result{Grid: g, Err: err}
	}()
	return out
}

func (l *Loader) loadFrom(ctx context.Context, log *Logger, src source.Source) (*hexgrid.Grid, error) {
	fetchStart := time.Now()
	raw, err := source.ReadAll(ctx, src)
	log.LogFetch(ctx, src.String(), len(raw), time.Since(fetchStart), err)
	if err != nil {
		return nil, err
	}

	g, err := l.build(raw)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func (l *Loader) build(raw []byte) (*hexgrid.Grid, error) {
	cb, err := codebook.Parse(string(raw))
	if err != nil {
		return nil, err
	}
	return hexgrid.New(cb.Vectors, cb.Header.VectorDim, l.gridOpts)
}

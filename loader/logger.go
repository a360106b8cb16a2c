package loader

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/umatrix/hexgrid"
)

// Logger wraps slog.Logger with consistent field names for load events.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON lines to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithLoadID tags every record with a load identifier.
func (l *Logger) WithLoadID(id string) *Logger {
	return &Logger{Logger: l.Logger.With("load_id", id)}
}

// LogFetch logs the outcome of reading a source.
func (l *Logger) LogFetch(ctx context.Context, src string, size int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch failed",
			"source", src,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "fetch completed",
		"source", src,
		"bytes", size,
		"elapsed", elapsed,
	)
}

// LogLoad logs the outcome of building a grid.
func (l *Logger) LogLoad(ctx context.Context, src string, g *hexgrid.Grid, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", src,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	maxDist, _ := g.MaxDistance()
	l.InfoContext(ctx, "load completed",
		"source", src,
		"x_dim", g.XDim(),
		"y_dim", g.YDim(),
		"vector_dim", g.VectorDim(),
		"edges", g.EdgeCount(),
		"max_distance", maxDist,
		"elapsed", elapsed,
	)
}

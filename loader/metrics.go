package loader

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/umatrix/codebook"
	"github.com/katalvlaran/umatrix/hexgrid"
	"github.com/katalvlaran/umatrix/source"
)

// Load outcomes reported in the outcome label of umatrix_loads_total.
const (
	OutcomeSuccess   = "success"
	OutcomeMalformed = "malformed"
	OutcomeNotFound  = "not_found"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Metrics holds the loader's Prometheus collectors.
type Metrics struct {
	Loads       *prometheus.CounterVec
	Duration    prometheus.Histogram
	Nodes       prometheus.Gauge
	MaxDistance prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Loads: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "umatrix_loads_total",
				Help: "Total number of codebook loads, by outcome",
			},
			[]string{"outcome"},
		),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "umatrix_load_duration_seconds",
			Help:    "Duration of codebook loads including fetch, in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "umatrix_grid_nodes",
			Help: "Number of nodes in the most recently loaded grid",
		}),
		MaxDistance: f.NewGauge(prometheus.GaugeOpts{
			Name: "umatrix_grid_max_distance",
			Help: "Largest adjacent-node distance of the most recently loaded grid",
		}),
	}
}

func (m *Metrics) observe(g *hexgrid.Grid, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.Loads.WithLabelValues(outcome(err)).Inc()
	m.Duration.Observe(elapsed.Seconds())
	if err != nil {
		return
	}
	m.Nodes.Set(float64(g.Len()))
	maxDist, _ := g.MaxDistance()
	m.MaxDistance.Set(maxDist)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	case errors.Is(err, codebook.ErrMalformedHeader), errors.Is(err, codebook.ErrMalformedInput):
		return OutcomeMalformed
	case errors.Is(err, source.ErrNotFound):
		return OutcomeNotFound
	}
	return OutcomeError
}

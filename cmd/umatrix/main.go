// Command umatrix loads a hexagonal SOM codebook and reports its U-Matrix.
//
// Usage:
//
//	umatrix [-config umatrix.yaml] [-source URI] [-format text|json]
//	        [-threshold D] [-metrics-addr :9090]
//
// Text output summarizes the grid and its edge distances, counts the
// clusters obtained by joining neighbors no farther apart than the threshold
// and reports the weight of the lattice's minimum spanning tree. JSON output
// is the full U-Matrix cell lattice. With -metrics-addr the loader
// metrics stay available on /metrics until the process is interrupted.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/umatrix/config"
	"github.com/katalvlaran/umatrix/hexgrid"
	"github.com/katalvlaran/umatrix/loader"
	"github.com/katalvlaran/umatrix/source"
	"github.com/katalvlaran/umatrix/umatrix"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "umatrix:", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	source      string
	format      string
	threshold   float64
	metricsAddr string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("umatrix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&f.source, "source", "", "codebook location (path, file://, http(s)://, s3://, minio://); overrides source.uri")
	fs.StringVar(&f.format, "format", "text", "output format: text or json")
	fs.Float64Var(&f.threshold, "threshold", -1, "cluster join distance; negative uses the mean edge distance")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address; overrides metrics.addr")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if f.format != "text" && f.format != "json" {
		return flags{}, fmt.Errorf("unknown format %q", f.format)
	}
	return f, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	f, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.source != "" {
		cfg.Source.URI = f.source
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Addr = f.metricsAddr
	}
	if cfg.Source.URI == "" {
		return errors.New("no source: set -source or source.uri")
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	ld := loader.New(
		loader.WithLogger(logger),
		loader.WithMetrics(loader.NewMetrics(reg)),
		loader.WithGridOptions(cfg.GridOptions()),
	)

	src, err := source.Parse(cfg.Source.URI, cfg.SourceOptions())
	if err != nil {
		return err
	}

	loadCtx := ctx
	if cfg.Source.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, cfg.Source.Timeout)
		defer cancel()
	}
	g, err := ld.LoadFrom(loadCtx, src)
	if err != nil {
		return err
	}

	switch f.format {
	case "json":
		err = writeJSON(stdout, g, cfg.UMatrixOptions())
	default:
		err = writeText(stdout, g, f.threshold)
	}
	if err != nil {
		return err
	}

	if cfg.Metrics.Addr == "" {
		return nil
	}
	return serveMetrics(ctx, cfg.Metrics.Addr, reg, logger)
}

func writeJSON(w io.Writer, g *hexgrid.Grid, opts umatrix.Options) error {
	um, err := umatrix.Build(g, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(um)
}

func writeText(w io.Writer, g *hexgrid.Grid, threshold float64) error {
	fmt.Fprintf(w, "grid:      %d x %d nodes, vector dim %d\n", g.XDim(), g.YDim(), g.VectorDim())

	sum, err := g.Summary()
	if errors.Is(err, hexgrid.ErrNoNeighbors) {
		_, err = fmt.Fprintln(w, "edges:     none")
		return err
	}
	if err != nil {
		return err
	}
	if threshold < 0 {
		threshold = sum.Mean
	}
	fmt.Fprintf(w, "edges:     %d\n", sum.Edges)
	fmt.Fprintf(w, "distance:  min %.4f  max %.4f  mean %.4f  stddev %.4f\n", sum.Min, sum.Max, sum.Mean, sum.StdDev)
	fmt.Fprintf(w, "clusters:  %d (threshold %.4f)\n", len(g.Clusters(threshold)), threshold)
	tree, weight := g.SpanningTree()
	_, err = fmt.Fprintf(w, "mst:       %d edges, weight %.4f\n", len(tree), weight)
	return err
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger *loader.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.InfoContext(ctx, "serving metrics", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

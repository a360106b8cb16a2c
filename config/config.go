package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/umatrix/hexgrid"
	"github.com/katalvlaran/umatrix/loader"
	"github.com/katalvlaran/umatrix/source"
	"github.com/katalvlaran/umatrix/umatrix"
)

// Config is the top-level configuration file.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Grid    GridConfig    `yaml:"grid"`
	UMatrix UMatrixConfig `yaml:"umatrix"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SourceConfig locates the codebook document.
type SourceConfig struct {
	URI     string        `yaml:"uri"`
	Timeout time.Duration `yaml:"timeout"` // 0 disables the deadline
	S3      S3Config      `yaml:"s3"`
	Minio   MinioConfig   `yaml:"minio"`
}

// S3Config configures s3:// sources. Credentials come from the default AWS chain.
type S3Config struct {
	Region string `yaml:"region"`
}

// MinioConfig configures minio:// sources.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	Region    string `yaml:"region"`
}

// GridConfig configures grid construction.
type GridConfig struct {
	Parallelism int `yaml:"parallelism"`
}

// UMatrixConfig configures the U-Matrix layout.
type UMatrixConfig struct {
	NodeStatistic string `yaml:"node_statistic"` // "average" | "max"
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `yaml:"format"` // "text" | "json"
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the endpoint
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Source:  SourceConfig{Timeout: 30 * time.Second},
		Grid:    GridConfig{Parallelism: hexgrid.DefaultOptions().Parallelism},
		UMatrix: UMatrixConfig{NodeStatistic: umatrix.Average.String()},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over DefaultConfig. An empty path returns the defaults.
// Environment references such as ${MINIO_SECRET} are expanded before
// decoding; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range value as ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Source.Timeout < 0 {
		return fmt.Errorf("%w: source.timeout must not be negative", ErrInvalidConfig)
	}
	if c.Grid.Parallelism < 0 {
		return fmt.Errorf("%w: grid.parallelism must not be negative", ErrInvalidConfig)
	}
	if _, err := umatrix.ParseNodeStatistic(c.UMatrix.NodeStatistic); err != nil {
		return fmt.Errorf("%w: umatrix.node_statistic: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// SourceOptions returns the options for source.Parse.
func (c Config) SourceOptions() source.Options {
	return source.Options{
		S3Region: c.Source.S3.Region,
		Minio: source.MinioOptions{
			Endpoint:  c.Source.Minio.Endpoint,
			AccessKey: c.Source.Minio.AccessKey,
			SecretKey: c.Source.Minio.SecretKey,
			UseSSL:    c.Source.Minio.UseSSL,
			Region:    c.Source.Minio.Region,
		},
	}
}

// GridOptions returns the options for hexgrid.New.
func (c Config) GridOptions() hexgrid.Options {
	return hexgrid.Options{Parallelism: c.Grid.Parallelism}
}

// UMatrixOptions returns the options for umatrix.Build.
// Call Validate first; an invalid statistic falls back to the default.
func (c Config) UMatrixOptions() umatrix.Options {
	s, err := umatrix.ParseNodeStatistic(c.UMatrix.NodeStatistic)
	if err != nil {
		return umatrix.DefaultOptions()
	}
	return umatrix.Options{NodeStatistic: s}
}

// Logger builds the configured loader logger.
func (c Config) Logger() (*loader.Logger, error) {
	level, err := c.Log.level()
	if err != nil {
		return nil, err
	}
	if c.Log.Format == "json" {
		return loader.NewJSONLogger(level), nil
	}
	return loader.NewTextLogger(level), nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, l.Level)
	}
	return level, nil
}

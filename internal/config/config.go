// Package config loads the georoute YAML configuration file.
//
//	graph:
//	  file: data/spb_graph.txt
//	  synthetic: ""        # grid:RxC | line:N | random:N:RADIUS
//	  seed: 1
//	router:
//	  default_algorithm: astar
//	  heuristic: euclidean # euclidean | haversine | zero
//	server:
//	  listen: ":8080"
//	  cors_origins: ["*"]
//	  shutdown_timeout: 10s
//	log:
//	  level: info
//	  format: text
//	telemetry:
//	  trace_exporter: none # none | stdout
//	  service_name: georoute
//
// Unknown keys are rejected. Missing keys keep their Default() values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/georoute/astar"
	"github.com/katalvlaran/georoute/builder"
	"github.com/katalvlaran/georoute/internal/logging"
	"github.com/katalvlaran/georoute/router"
)

// MaxFileSize caps the configuration file size.
const MaxFileSize = 1 << 20

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Graph     Graph     `yaml:"graph"`
	Router    Router    `yaml:"router"`
	Server    Server    `yaml:"server"`
	Log       Log       `yaml:"log"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Graph selects the graph source. Synthetic wins over File when both are set.
type Graph struct {
	File      string `yaml:"file"`
	Synthetic string `yaml:"synthetic"`
	Seed      int64  `yaml:"seed"`
}

// Router holds query defaults.
type Router struct {
	DefaultAlgorithm string `yaml:"default_algorithm"`
	Heuristic        string `yaml:"heuristic"`
}

// Server holds HTTP settings.
type Server struct {
	Listen          string        `yaml:"listen"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Telemetry holds tracing settings.
type Telemetry struct {
	TraceExporter string `yaml:"trace_exporter"`
	ServiceName   string `yaml:"service_name"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Graph: Graph{Seed: 1},
		Router: Router{
			DefaultAlgorithm: "astar",
			Heuristic:        "euclidean",
		},
		Server: Server{
			Listen:          ":8080",
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{Level: "info", Format: "text"},
		Telemetry: Telemetry{
			TraceExporter: "none",
			ServiceName:   "georoute",
		},
	}
}

// Load reads path over Default() and validates the result. An empty path or
// a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return cfg, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}
	if len(data) > MaxFileSize {
		return cfg, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidConfig, path, MaxFileSize)
	}

	if cfg, err = Parse(data); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over Default() and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := router.ParseAlgorithm(c.Router.DefaultAlgorithm); err != nil {
		errs = append(errs, fmt.Errorf("router.default_algorithm: %w", err))
	}
	if _, ok := astar.HeuristicByName(c.Router.Heuristic); !ok {
		errs = append(errs, fmt.Errorf("router.heuristic: unknown %q", c.Router.Heuristic))
	}
	if c.Graph.Synthetic != "" {
		if _, err := builder.ParseSynthetic(c.Graph.Synthetic); err != nil {
			errs = append(errs, fmt.Errorf("graph.synthetic: %w", err))
		}
	}
	if strings.TrimSpace(c.Server.Listen) == "" {
		errs = append(errs, errors.New("server.listen: must not be empty"))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server.shutdown_timeout: must not be negative"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown %q", c.Log.Format))
	}
	switch c.Telemetry.TraceExporter {
	case "none", "stdout":
	default:
		errs = append(errs, fmt.Errorf("telemetry.trace_exporter: unknown %q", c.Telemetry.TraceExporter))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

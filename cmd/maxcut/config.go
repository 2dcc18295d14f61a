// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/logging"
)

// ErrConfig indicates an invalid run configuration.
var ErrConfig = errors.New("maxcut: invalid config")

// Precision names.
const (
	PrecisionSingle = "single"
	PrecisionDouble = "double"
)

// Output names.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config is one solve run. The YAML layout matches the field tags.
type Config struct {
	Graph     GraphConfig   `yaml:"graph"`
	Processes int           `yaml:"processes"`
	Workers   int           `yaml:"workers"`
	Precision string        `yaml:"precision"`
	Gammas    []float64     `yaml:"gammas"`
	Output    string        `yaml:"output"`
	Log       LogConfig     `yaml:"log"`
	Metrics   MetricsConfig `yaml:"metrics"`
}

// GraphConfig selects a builder topology. Only the fields the topology uses
// are read.
type GraphConfig struct {
	Topology    string  `yaml:"topology"`
	Vertices    int     `yaml:"vertices"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Left        int     `yaml:"left"`
	Right       int     `yaml:"right"`
	Probability float64 `yaml:"probability"`
	Seed        int64   `yaml:"seed"`
	Edges       [][]int `yaml:"edges"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr   string        `yaml:"addr"`
	Linger time.Duration `yaml:"linger"`
}

// DefaultConfig returns the configuration used when neither a file nor flags
// say otherwise: an 8-cycle on one process in double precision.
func DefaultConfig() Config {
	return Config{
		Graph: GraphConfig{
			Topology:    "cycle",
			Vertices:    8,
			Rows:        2,
			Cols:        3,
			Left:        2,
			Right:       3,
			Probability: 0.5,
			Seed:        1,
		},
		Processes: 1,
		Precision: PrecisionDouble,
		Gammas:    []float64{0.25, 0.5, 1},
		Output:    OutputText,
		Log:       LogConfig{Level: "warn", Format: string(logging.FormatText)},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(raw)
}

// ParseConfig decodes YAML over DefaultConfig.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields the library packages cannot check themselves.
func (c Config) Validate() error {
	if c.Processes < 1 || c.Processes&(c.Processes-1) != 0 {
		return fmt.Errorf("processes=%d is not a positive power of two: %w", c.Processes, ErrConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d < 0: %w", c.Workers, ErrConfig)
	}
	switch c.Precision {
	case PrecisionSingle, PrecisionDouble:
	default:
		return fmt.Errorf("precision=%q: %w", c.Precision, ErrConfig)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("output=%q: %w", c.Output, ErrConfig)
	}
	for i, e := range c.Graph.Edges {
		if len(e) != 2 {
			return fmt.Errorf("graph.edges[%d]=%v is not a pair: %w", i, e, ErrConfig)
		}
	}
	if c.Metrics.Linger < 0 {
		return fmt.Errorf("metrics.linger=%s < 0: %w", c.Metrics.Linger, ErrConfig)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// Constructor maps the graph section onto a builder constructor.
func (g GraphConfig) Constructor() (builder.Constructor, error) {
	switch strings.ToLower(g.Topology) {
	case "cycle":
		return builder.Cycle(g.Vertices), nil
	case "path":
		return builder.Path(g.Vertices), nil
	case "star":
		return builder.Star(g.Vertices), nil
	case "wheel":
		return builder.Wheel(g.Vertices), nil
	case "complete":
		return builder.Complete(g.Vertices), nil
	case "bipartite":
		return builder.CompleteBipartite(g.Left, g.Right), nil
	case "grid":
		return builder.Grid(g.Rows, g.Cols), nil
	case "random":
		return builder.RandomSparse(g.Vertices, g.Probability), nil
	case "edges":
		pairs := make([][2]int, 0, len(g.Edges))
		for i, e := range g.Edges {
			if len(e) != 2 {
				return nil, fmt.Errorf("graph.edges[%d]=%v is not a pair: %w", i, e, ErrConfig)
			}
			pairs = append(pairs, [2]int{e[0], e[1]})
		}
		return builder.FromEdges(g.Vertices, pairs), nil
	default:
		return nil, fmt.Errorf("topology=%q: %w", g.Topology, ErrConfig)
	}
}

// parseEdges reads "u-v" pairs from the --edge flag.
func parseEdges(specs []string) ([][]int, error) {
	out := make([][]int, 0, len(specs))
	for _, s := range specs {
		a, b, ok := strings.Cut(s, "-")
		if !ok {
			return nil, fmt.Errorf("edge %q: want u-v: %w", s, ErrConfig)
		}
		u, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", s, ErrConfig)
		}
		v, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", s, ErrConfig)
		}
		out = append(out, []int{u, v})
	}

	return out, nil
}

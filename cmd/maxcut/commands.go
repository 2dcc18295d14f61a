// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "maxcut",
		Short:        "Distributed Max-Cut QAOA cost operator",
		Long:         "maxcut builds the diagonal Max-Cut cost operator of a graph across a\nsimulated process group and reports cut statistics of QAOA states.",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the maxcut version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "maxcut %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

// solveFlags mirrors Config for the command line; only flags the user set
// override the config file.
type solveFlags struct {
	configPath string
	cfg        Config
	edges      []string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	def := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build the cost operator and report cut statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := DefaultConfig()
			if f.configPath != "" {
				loaded, err := LoadConfig(f.configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if err := f.overlay(cmd, &cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runSolve(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file; flags override its values")
	fs.StringVar(&f.cfg.Graph.Topology, "topology", def.Graph.Topology, "cycle|path|star|wheel|complete|bipartite|grid|random|edges")
	fs.IntVarP(&f.cfg.Graph.Vertices, "vertices", "n", def.Graph.Vertices, "vertex count (qubits)")
	fs.IntVar(&f.cfg.Graph.Rows, "rows", def.Graph.Rows, "grid rows")
	fs.IntVar(&f.cfg.Graph.Cols, "cols", def.Graph.Cols, "grid columns")
	fs.IntVar(&f.cfg.Graph.Left, "left", def.Graph.Left, "bipartite left side size")
	fs.IntVar(&f.cfg.Graph.Right, "right", def.Graph.Right, "bipartite right side size")
	fs.Float64Var(&f.cfg.Graph.Probability, "probability", def.Graph.Probability, "edge probability for random graphs")
	fs.Int64Var(&f.cfg.Graph.Seed, "seed", def.Graph.Seed, "seed for random graphs")
	fs.StringSliceVar(&f.edges, "edge", nil, "edge as u-v for the edges topology (repeatable)")
	fs.IntVarP(&f.cfg.Processes, "processes", "p", def.Processes, "simulated process count (power of two)")
	fs.IntVarP(&f.cfg.Workers, "workers", "w", def.Workers, "workers per process (0 = GOMAXPROCS)")
	fs.StringVar(&f.cfg.Precision, "precision", def.Precision, "single|double")
	fs.Float64SliceVar(&f.cfg.Gammas, "gamma", def.Gammas, "cost-layer angles (repeatable)")
	fs.StringVarP(&f.cfg.Output, "output", "o", def.Output, "text|yaml")
	fs.StringVar(&f.cfg.Log.Level, "log-level", def.Log.Level, "debug|info|warn|error")
	fs.StringVar(&f.cfg.Log.Format, "log-format", def.Log.Format, "text|json")
	fs.StringVar(&f.cfg.Metrics.Addr, "metrics-addr", def.Metrics.Addr, "serve Prometheus /metrics on this address")
	fs.DurationVar(&f.cfg.Metrics.Linger, "metrics-linger", def.Metrics.Linger, "keep serving /metrics this long after the run")

	return cmd
}

// overlay copies every flag the user set onto cfg.
func (f *solveFlags) overlay(cmd *cobra.Command, cfg *Config) error {
	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("topology", func() { cfg.Graph.Topology = f.cfg.Graph.Topology })
	set("vertices", func() { cfg.Graph.Vertices = f.cfg.Graph.Vertices })
	set("rows", func() { cfg.Graph.Rows = f.cfg.Graph.Rows })
	set("cols", func() { cfg.Graph.Cols = f.cfg.Graph.Cols })
	set("left", func() { cfg.Graph.Left = f.cfg.Graph.Left })
	set("right", func() { cfg.Graph.Right = f.cfg.Graph.Right })
	set("probability", func() { cfg.Graph.Probability = f.cfg.Graph.Probability })
	set("seed", func() { cfg.Graph.Seed = f.cfg.Graph.Seed })
	set("processes", func() { cfg.Processes = f.cfg.Processes })
	set("workers", func() { cfg.Workers = f.cfg.Workers })
	set("precision", func() { cfg.Precision = f.cfg.Precision })
	set("gamma", func() { cfg.Gammas = f.cfg.Gammas })
	set("output", func() { cfg.Output = f.cfg.Output })
	set("log-level", func() { cfg.Log.Level = f.cfg.Log.Level })
	set("log-format", func() { cfg.Log.Format = f.cfg.Log.Format })
	set("metrics-addr", func() { cfg.Metrics.Addr = f.cfg.Metrics.Addr })
	set("metrics-linger", func() { cfg.Metrics.Linger = f.cfg.Metrics.Linger })

	if fs.Changed("edge") {
		edges, err := parseEdges(f.edges)
		if err != nil {
			return err
		}
		cfg.Graph.Edges = edges
	}

	return nil
}

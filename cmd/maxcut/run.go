// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maxcut/bitenc"
	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/cluster"
	"github.com/katalvlaran/maxcut/logging"
	"github.com/katalvlaran/maxcut/metrics"
	"github.com/katalvlaran/maxcut/qaoa"
)

// Report is what rank 0 prints after a solve.
type Report struct {
	Topology     string    `yaml:"topology"`
	Vertices     int       `yaml:"vertices"`
	Edges        int       `yaml:"edges"`
	Processes    int       `yaml:"processes"`
	Precision    string    `yaml:"precision"`
	MaxCut       int       `yaml:"max_cut"`
	Witness      []int     `yaml:"witness"`
	Distribution []float64 `yaml:"distribution"`
	Layers       []Layer   `yaml:"layers"`
}

// Layer is the state after one cost layer applied to the uniform state.
type Layer struct {
	Gamma       float64 `yaml:"gamma"`
	Expectation float64 `yaml:"expectation"`
	Norm        float64 `yaml:"norm"`
}

// runSolve builds the graph, runs every rank and writes rank 0's report.
func runSolve(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	logger, err := logging.New(errOut, cfg.Log.Level, logging.Format(cfg.Log.Format))
	if err != nil {
		return err
	}

	con, err := cfg.Graph.Constructor()
	if err != nil {
		return err
	}
	adj, err := builder.BuildAdjacency([]builder.BuilderOption{builder.WithSeed(cfg.Graph.Seed)}, con)
	if err != nil {
		return err
	}
	logger.Info("graph built", "topology", cfg.Graph.Topology, "vertices", adj.N(), "edges", adj.EdgeCount())

	basic := &qaoa.BasicMetricsCollector{}
	sink := multiCollector{basic}
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		registerRuntime(reg)
		sink = append(sink, metrics.NewCollector(reg, "maxcut"))
		stop, err := serveMetrics(ctx, cfg.Metrics, reg, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	rep := &Report{
		Topology:  cfg.Graph.Topology,
		Vertices:  adj.N(),
		Edges:     adj.EdgeCount(),
		Processes: cfg.Processes,
		Precision: cfg.Precision,
	}
	flat := adj.Flat()
	err = cluster.Run(ctx, cfg.Processes, func(ctx context.Context, comm cluster.Comm) error {
		opts := []qaoa.Option{
			qaoa.WithLogger(logger.With("rank", comm.Rank())),
			qaoa.WithMetrics(sink),
		}
		if cfg.Workers > 0 {
			opts = append(opts, qaoa.WithWorkers(cfg.Workers))
		}
		var target *Report
		if comm.Rank() == 0 {
			target = rep
		}
		if cfg.Precision == PrecisionSingle {
			return solveRank[complex64, float32](ctx, comm, adj.N(), flat, cfg.Gammas, target, opts)
		}
		return solveRank[complex128, float64](ctx, comm, adj.N(), flat, cfg.Gammas, target, opts)
	})
	if err != nil {
		return err
	}
	for op, st := range basic.Snapshot() {
		logger.Debug("operation stats", "op", op, "calls", st.Calls, "errors", st.Errors, "elements", st.Elements, "total", st.Total)
	}

	if err := writeReport(out, cfg.Output, rep); err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" && cfg.Metrics.Linger > 0 {
		logger.Info("serving metrics", "addr", cfg.Metrics.Addr, "linger", cfg.Metrics.Linger)
		select {
		case <-time.After(cfg.Metrics.Linger):
		case <-ctx.Done():
		}
	}

	return nil
}

// solveRank is one rank's share of the run. Only rank 0 passes a non-nil rep.
func solveRank[C cluster.Amplitude, F qaoa.Real](ctx context.Context, comm cluster.Comm, n int, adjacency []int, gammas []float64, rep *Report, opts []qaoa.Option) error {
	cost, err := cluster.NewVector[C](comm, n)
	if err != nil {
		return err
	}
	maxCut, err := qaoa.BuildCostOperator(ctx, cost, adjacency, opts...)
	if err != nil {
		return err
	}

	amp, err := cluster.NewVector[C](comm, n)
	if err != nil {
		return err
	}
	qaoa.UniformSuperposition(amp)
	hist, err := qaoa.Histogram[C, F](ctx, amp, cost, max(maxCut, 1), opts...)
	if err != nil {
		return err
	}
	witness, err := bestAssignment(ctx, cost, maxCut, n)
	if err != nil {
		return err
	}

	layers := make([]Layer, 0, len(gammas))
	for _, g := range gammas {
		psi := amp.Clone()
		if err := qaoa.ApplyPhaseLayer(ctx, psi, cost, F(g), opts...); err != nil {
			return err
		}
		e, err := qaoa.Expectation[C, F](ctx, psi, cost, opts...)
		if err != nil {
			return err
		}
		norm, err := squaredNorm(ctx, psi)
		if err != nil {
			return err
		}
		layers = append(layers, Layer{Gamma: g, Expectation: float64(e), Norm: norm})
	}

	if rep != nil {
		rep.MaxCut = maxCut
		rep.Witness = witness
		rep.Distribution = make([]float64, len(hist))
		for i, p := range hist {
			rep.Distribution[i] = float64(p)
		}
		rep.Layers = layers
	}

	return nil
}

// bestAssignment returns the bits of the lowest global index whose cost is
// maxCut. Ranks offer the negated index, or -GlobalSize when they hold no
// maximiser, so the group maximum picks the lowest winner.
func bestAssignment[C cluster.Amplitude](ctx context.Context, cost *cluster.Vector[C], maxCut, n int) ([]int, error) {
	offer := -int(cost.GlobalSize())
	for i, c := range cost.Local() {
		if real(complex128(c)) == float64(maxCut) {
			offer = -(int(cost.Start()) + i)
			break
		}
	}
	winner, err := cost.Comm().AllReduceMaxInt(ctx, offer)
	if err != nil {
		return nil, err
	}

	return bitenc.ToBits(uint64(-winner), n)
}

// squaredNorm returns Σ|ψ_i|² over the whole group.
func squaredNorm[C cluster.Amplitude](ctx context.Context, psi *cluster.Vector[C]) (float64, error) {
	var local float64
	for _, a := range psi.Local() {
		z := complex128(a)
		local += real(z)*real(z) + imag(z)*imag(z)
	}
	sum, err := psi.Comm().AllReduceSum(ctx, []float64{local})
	if err != nil {
		return 0, err
	}
	return sum[0], nil
}

func writeReport(w io.Writer, format string, rep *Report) error {
	if format == OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "graph      %s, %d vertices, %d edges\n", rep.Topology, rep.Vertices, rep.Edges)
	fmt.Fprintf(w, "processes  %d (%s precision)\n", rep.Processes, rep.Precision)
	fmt.Fprintf(w, "max cut    %d %v\n", rep.MaxCut, rep.Witness)
	fmt.Fprintln(w, "distribution of the uniform state:")
	for v, p := range rep.Distribution {
		fmt.Fprintf(w, "  cut %2d  %.6f\n", v, p)
	}
	if len(rep.Layers) > 0 {
		fmt.Fprintln(w, "cost layers:")
		for _, l := range rep.Layers {
			fmt.Fprintf(w, "  gamma %-8g <C> = %.6f  norm = %.6f\n", l.Gamma, l.Expectation, l.Norm)
		}
	}
	return nil
}

// multiCollector fans one record out to several collectors.
type multiCollector []qaoa.MetricsCollector

func (m multiCollector) RecordOperation(op string, elements int, d time.Duration, err error) {
	for _, c := range m {
		c.RecordOperation(op, elements, d, err)
	}
}

func registerRuntime(reg *prometheus.Registry) {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// serveMetrics starts /metrics on cfg.Addr and returns its shutdown func.
func serveMetrics(ctx context.Context, cfg MetricsConfig, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", cfg.Addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "err", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}, nil
}

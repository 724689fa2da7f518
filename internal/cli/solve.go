package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/katalvlaran/pcp/internal/config"
	"github.com/katalvlaran/pcp/internal/report"
	"github.com/katalvlaran/pcp/metrics"
	"github.com/katalvlaran/pcp/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// newSolveCommand creates the solve subcommand.
func newSolveCommand(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [top/bottom ...]",
		Short: "Search for a matching domino sequence",
		Long: `Search for a sequence of dominoes whose tops and bottoms concatenate to
the same string. Dominoes are given as "top/bottom" arguments, read from
--rules-file, or default to Sipser's example b/ca a/ab ca/a abc/c.

Exit status is 0 when a match is found, 2 when the rule set is empty and
1 on error, timeout or round limit.`,
		Example: `  pcp solve b/ca a/ab ca/a abc/c
  pcp solve --rules-file dominoes.txt --timeout 30s -o table
  pcp solve --max-rounds 12 b/ca a/ab ca/a`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Rules = args
			}
			return runSolve(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.String("rules-file", "", "file with one top/bottom domino per line")
	f.Int("workers", 0, "goroutines per round (0 = GOMAXPROCS)")
	f.Duration("timeout", 0, "stop the search after this long (0 = never)")
	f.Int("max-rounds", 0, "stop the search after this many rounds (0 = never)")
	f.StringP("output", "o", config.OutputText, "output format (text|table|yaml)")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address while searching")
	f.BoolP("verbose", "v", false, "log every round")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputTable, config.OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// runSolve executes one search as configured and renders its result.
func runSolve(cmd *cobra.Command, cfg *config.Config) error {
	rs, err := loadRules(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose).With("run_id", uuid.NewString())
	logger.Info("solving", "rules", rs.String(), "workers", cfg.Workers)

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)
	if cfg.MetricsAddr != "" {
		stop, err := serveMetrics(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	onRound := func(depth, frontier int) error {
		collector.ObserveRound(depth, frontier)
		if cfg.MaxRounds > 0 && depth >= cfg.MaxRounds {
			return fmt.Errorf("%w (%d)", ErrRoundLimit, cfg.MaxRounds)
		}
		logger.Debug("expanding", "depth", depth, "frontier", humanize.Comma(int64(frontier)))
		return nil
	}

	start := time.Now()
	res, err := search.Search(rs,
		search.WithContext(ctx),
		search.WithWorkers(cfg.Workers),
		search.WithLogger(logger),
		search.WithOnRound(onRound),
		search.WithOnExpand(collector.ObserveExpand),
	)
	if res == nil {
		return err
	}
	collector.ObserveResult(res)
	logger.Info("search finished",
		"state", res.State.String(),
		"rounds", res.Rounds,
		"expanded", humanize.Comma(int64(res.Expanded)),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if rerr := report.Render(cmd.OutOrStdout(), cfg.Output, res); rerr != nil {
		return errors.Join(err, rerr)
	}
	if err != nil {
		return err
	}
	if res.State == search.Exhausted {
		return ErrExhausted
	}
	return nil
}

// serveMetrics exposes reg on addr until the returned stop func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("pcp: metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

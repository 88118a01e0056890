package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/seed"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	pkgconfig "magazine-catalog/internal/pkg/config"
	catalogUC "magazine-catalog/internal/usecase/catalog"
)

var version = "dev"

// Registered once per process; promauto panics on duplicates.
var configMetrics = pkgconfig.NewConfigMetrics("catalog")

// app carries the state shared by the subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfg      config.CatalogConfig
	logger   *slog.Logger
	svc      *catalogUC.Service
	shutdown tracing.ShutdownFunc
}

// execute runs the command line args. Teardown runs whether or not the
// command fails, so failing runs still flush spans and write the metrics file.
func execute(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	a := &app{stdout: stdout, stderr: stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, a.teardown(ctx))
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query an in-memory catalog of authors, magazines and articles",
		Long: `Load a catalog of authors, magazines and articles from a YAML seed file
and print reports derived from their relationships.

Without a subcommand a snapshot of the whole catalog is printed.

Examples:
  # Snapshot as JSON
  catalog --seed catalog.yaml

  # One author as YAML
  catalog --seed catalog.yaml --format yaml author Ada

  # The magazine with the most articles
  catalog --seed catalog.yaml top`,
		Version:            version,
		SilenceUsage:       true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(a.svc.Snapshot(cmd.Context()))
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringP("seed", "s", "", "YAML seed file (env "+config.EnvSeedFile+")")
	flags.StringP("format", "f", "", "output format: json or yaml (env "+config.EnvOutputFormat+")")
	flags.String("log-level", "", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	flags.String("log-format", "", "log format: json or text (env "+config.EnvLogFormat+")")
	flags.Bool("trace", false, "print spans to stderr (env "+config.EnvTrace+")")
	flags.String("metrics-file", "", "write Prometheus metrics to this file on exit (env "+config.EnvMetricsFile+")")

	rootCmd.AddCommand(
		newAuthorsCmd(a),
		newMagazinesCmd(a),
		newAuthorCmd(a),
		newMagazineCmd(a),
		newTopCmd(a),
	)
	return rootCmd
}

// setup resolves configuration, installs logging and tracing, and loads the seed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, warnings := config.LoadCatalogConfig(configMetrics)
	overrideString(cmd, "seed", &cfg.SeedFile)
	overrideString(cmd, "format", &cfg.OutputFormat)
	overrideString(cmd, "log-level", &cfg.LogLevel)
	overrideString(cmd, "log-format", &cfg.LogFormat)
	overrideString(cmd, "metrics-file", &cfg.MetricsFile)
	if cmd.Flags().Changed("trace") {
		cfg.Trace, _ = cmd.Flags().GetBool("trace")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = cfg.Normalize()
	a.cfg = cfg

	a.logger = logging.New(a.stderr, cfg.LogFormat, cfg.LogLevel)
	for _, w := range warnings {
		a.logger.Warn("configuration fallback", slog.String("warning", w))
	}
	a.logger.Debug("configuration loaded", slog.Any("config", cfg))

	if cfg.Trace {
		shutdown, err := tracing.InstallStdout(a.stderr)
		if err != nil {
			return err
		}
		a.shutdown = shutdown
	}

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	cmd.SetContext(ctx)

	a.svc = catalogUC.NewService(entity.NewRegistry(), a.logger)
	if cfg.SeedFile == "" {
		a.logger.Info("no seed file given, starting with an empty catalog")
		return nil
	}
	st, err := seed.LoadFile(ctx, cfg.SeedFile, a.svc)
	if err != nil {
		return fmt.Errorf("load seed %s: %w", cfg.SeedFile, err)
	}
	a.logger.Info("catalog loaded",
		slog.String("seed", cfg.SeedFile),
		slog.Int("authors", st.Authors),
		slog.Int("magazines", st.Magazines),
		slog.Int("articles", st.Articles),
		slog.Int("updates", st.Updates))
	return nil
}

// teardown stops the tracer and writes the metrics file. Steps that setup
// never reached are skipped.
func (a *app) teardown(ctx context.Context) error {
	if a.shutdown != nil {
		if err := a.shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Error("failed to shut down tracer", slog.Any("error", err))
		}
		a.shutdown = nil
	}
	if a.logger != nil && a.cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Debug("metrics written", slog.String("path", a.cfg.MetricsFile))
	}
	return nil
}

func overrideString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/calendar-views/internal/app"
)

const shutdownGrace = 5 * time.Second

type serveFlags struct {
	port     int
	private  bool
	logLevel string
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the calendar web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(opts.configFile)
			if err != nil {
				return err
			}
			applyServeFlags(cmd, flags, &cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&flags.port, "port", app.DefaultPort, "Port to listen on")
	cmd.Flags().BoolVar(&flags.private, "private", false, "Require Basic Auth for all pages")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", app.DefaultLogLevel, "Log level (debug, info, warn, error)")
	return cmd
}

// applyServeFlags overrides cfg with the flags set on the command line. The
// root command shares serve's RunE but not its flags, hence the lookup.
func applyServeFlags(cmd *cobra.Command, flags *serveFlags, cfg *app.Config) {
	fs := cmd.Flags()
	if fs.Lookup("port") != nil && fs.Changed("port") {
		cfg.Port = flags.port
	}
	if fs.Lookup("private") != nil && fs.Changed("private") {
		cfg.Private = flags.private
	}
	if fs.Lookup("log-level") != nil && fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
}

func runServe(ctx context.Context, cfg app.Config) error {
	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", "config", cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	app.HolidayRegion = cfg.Holidays.Region

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := app.RegisterMetrics(reg); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	if cfg.Private {
		path, err := app.AuthFilePath(cfg.AuthFile)
		if err != nil {
			return err
		}
		if err := app.LoadAuthCredentials(logger, path); err != nil {
			return fmt.Errorf("failed to load auth credentials: %w", err)
		}
	}

	if cfg.Weather.Enabled() {
		svc, err := app.NewWeatherService(cfg.Weather, logger)
		if err != nil {
			return err
		}
		app.Weather = svc
		scheduler := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
		if _, err := svc.Schedule(ctx, scheduler); err != nil {
			return fmt.Errorf("failed to schedule weather refresh: %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		go svc.RefreshAndLog(ctx)
		logger.Info("Weather forecasts enabled", "refresh", cfg.Weather.TTL, "timezone", cfg.Weather.Timezone)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           app.NewRouter(cfg, logger, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	mode := "public"
	if cfg.Private {
		mode = "private"
	}
	logger.Info(fmt.Sprintf("Starting calendar-views in %s mode on http://localhost:%d", mode, cfg.Port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

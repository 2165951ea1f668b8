package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/rewind/internal/cli"
	httpAdapter "github.com/aretw0/rewind/pkg/adapters/http"
	"github.com/aretw0/rewind/pkg/adapters/memory"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/observability"
	"github.com/aretw0/rewind/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP document server",
	Long:  `Serves many independent documents over a JSON API, with Prometheus metrics and per-document event streams.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		lockOpts, closeLocker, err := lockOptions(cfg, logger)
		if err != nil {
			return err
		}
		defer closeLocker()

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		streams := httpAdapter.NewStreamManager()
		manager := session.NewManager[string](memory.NewStore[string](), nil, append(lockOpts,
			session.WithLogger(logger),
			session.WithCloseHook(streams.CloseDocument),
			session.WithHooks(history.MergeHooks(
				metrics.Hooks(),
				observability.LogHooks(logger),
				streams.Hooks(),
			)),
		)...)

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithStreams(streams),
		}
		if cfg.Server.MetricsPath != "" {
			opts = append(opts, httpAdapter.WithMetrics(cfg.Server.MetricsPath, promhttp.Handler()))
		}

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: httpAdapter.NewHandler(manager, opts...),
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		lifecycle.Go(sigCtx, func(ctx context.Context) error {
			logger.Info("Starting Rewind Server", "address", srv.Addr, "metrics", cfg.Server.MetricsPath)
			serverErrors <- srv.ListenAndServe()
			return nil
		})

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case <-sigCtx.Done():
			logger.Info("Start shutdown...", "signal", sigCtx.Signal())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("Rewind Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (overrides server.addr)")
}

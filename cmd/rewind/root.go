package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/rewind/internal/config"
	"github.com/aretw0/rewind/internal/logging"
	"github.com/aretw0/rewind/pkg/adapters/redis"
	"github.com/aretw0/rewind/pkg/session"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rewind",
	Short: "Rewind is an undo/redo history engine",
	Long: `Rewind keeps the past, present and future of a value so every edit can be
undone and redone. Use it interactively, replay scripts, or serve many documents
over HTTP and MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// setup loads the configuration and builds the logger for a command.
// Logs always go to Stderr so Stdout stays clean for output and stdio transports.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	logger := logging.NewWithFormat(os.Stderr, logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	return cfg, logger, nil
}

// lockOptions connects the Redis locker when lock.redis_url is set.
// The returned cleanup closes the client.
func lockOptions(cfg config.Config, logger *slog.Logger) ([]session.Option, func(), error) {
	opts := []session.Option{session.WithLockTTL(cfg.Lock.TTL)}
	if cfg.Lock.RedisURL == "" {
		return opts, func() {}, nil
	}

	locker, err := redis.NewFromURL(cfg.Lock.RedisURL, cfg.Lock.Prefix)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Distributed locking enabled", "prefix", cfg.Lock.Prefix, "ttl", cfg.Lock.TTL)
	return append(opts, session.WithLocker(locker)), func() { _ = locker.Close() }, nil
}

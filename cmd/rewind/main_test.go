package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/rewind"
	"github.com/aretw0/rewind/internal/config"
	"github.com/aretw0/rewind/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "rewind version "+strings.TrimSpace(rewind.Version)+"\n", out.String())
}

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewind.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n  format: json\n"), 0o644))

	require.NoError(t, serveCmd.ParseFlags([]string{"--config", path}))
	cfg, logger, err := setup(serveCmd)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
}

func TestLockOptions(t *testing.T) {
	cfg := config.Default()
	opts, cleanup, err := lockOptions(cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Len(t, opts, 1)
	cleanup()

	mr := miniredis.RunT(t)
	cfg.Lock.RedisURL = "redis://" + mr.Addr()
	opts, cleanup, err = lockOptions(cfg, logging.NewNop())
	require.NoError(t, err)
	defer cleanup()
	assert.Len(t, opts, 2)

	cfg.Lock.RedisURL = "http://not-redis"
	_, _, err = lockOptions(cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestServeCommand_InvalidAddr(t *testing.T) {
	rootCmd.SetArgs([]string{"serve", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--addr", "no-port"})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetErr(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Addr")
}

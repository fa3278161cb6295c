package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, ModeStdio, cfg.Transport.Mode)
	require.Equal(t, 20, cfg.Feed.Size)
	require.Equal(t, 5, cfg.Feed.RecentLimit)
	require.Equal(t, "unread", cfg.Feed.UnreadPolicy)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "hireboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
transport:
  mode: http
feed:
  size: 12
  unread_policy: random
pipeline:
  size: 7
seed: 42
`), 0o644))

	t.Setenv("HIREBOARD_CONFIG_PATH", path)
	t.Setenv("HIREBOARD_SERVER_PORT", "9100")
	t.Setenv("HIREBOARD_FEED_RECENT_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, ModeHTTP, cfg.Transport.Mode)
	require.Equal(t, 12, cfg.Feed.Size)
	require.Equal(t, 3, cfg.Feed.RecentLimit)
	require.Equal(t, "random", cfg.Feed.UnreadPolicy)
	require.Equal(t, 7, cfg.Pipeline.Size)
	require.Equal(t, uint64(42), cfg.Seed)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HIREBOARD_PIPELINE_SIZE=11\nHIREBOARD_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("HIREBOARD_PIPELINE_SIZE")
		os.Unsetenv("HIREBOARD_LOG_LEVEL")
	})

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 11, cfg.Pipeline.Size)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port not a number", key: "HIREBOARD_SERVER_PORT", val: "http"},
		{name: "port out of range", key: "HIREBOARD_SERVER_PORT", val: "70000"},
		{name: "unknown mode", key: "HIREBOARD_TRANSPORT_MODE", val: "grpc"},
		{name: "negative feed size", key: "HIREBOARD_FEED_SIZE", val: "-1"},
		{name: "unknown unread policy", key: "HIREBOARD_FEED_UNREAD_POLICY", val: "sometimes"},
		{name: "bad seed", key: "HIREBOARD_SEED", val: "-5"},
		{name: "unknown log level", key: "HIREBOARD_LOG_LEVEL", val: "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("HIREBOARD_CONFIG_PATH", filepath.Join(dir, "missing.yaml"))

	_, err := Load()
	require.ErrorContains(t, err, "read config file")
}

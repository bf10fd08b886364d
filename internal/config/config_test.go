package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.False(t, cfg.Auth.Enabled)
	require.Equal(t, "sleipnir.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SLEIPNIR_SERVER_HOST", "127.0.0.1")
	t.Setenv("SLEIPNIR_SERVER_PORT", "9090")
	t.Setenv("SLEIPNIR_TRANSPORT_MODE", "http")
	t.Setenv("SLEIPNIR_AUTH_ENABLED", "true")
	t.Setenv("SLEIPNIR_API_KEY", "secret")
	t.Setenv("SLEIPNIR_DB_PATH", "/tmp/test.db")
	t.Setenv("SLEIPNIR_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, "secret", cfg.Auth.APIKey)
	require.Equal(t, "/tmp/test.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("SLEIPNIR_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SLEIPNIR_SERVER_PORT", "8080")
	t.Setenv("SLEIPNIR_AUTH_ENABLED", "maybe")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  host: 10.0.0.1
  port: 3000
transport:
  mode: http
auth:
  enabled: true
  api_key: from-file
db:
  path: /data/sleipnir.db
log:
  level: warn
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("SLEIPNIR_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", cfg.Server.Host)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, "from-file", cfg.Auth.APIKey)
	require.Equal(t, "/data/sleipnir.db", cfg.DB.Path)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))
	t.Setenv("SLEIPNIR_CONFIG_PATH", path)
	t.Setenv("SLEIPNIR_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("SLEIPNIR_CONFIG_PATH", "/nonexistent/config.yaml")
	_, err := Load()
	require.Error(t, err)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/formcheck/formcheck/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[development]
host = "localhost"
port = 8090
log_level = "trace"
logs_path = ""
log_to_stdout = true
sentry_enabled = false
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"

[production]
host = ""
port = 8090
log_level = "debug"
logs_path = "/var/log/formcheck/service.log"
log_to_stdout = false
sentry_enabled = true
prometheus_metrics_host = ""
prometheus_metrics_port = "2112"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := config.Load("development", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.False(t, cfg.SentryEnabled)
	assert.Equal(t, "2112", cfg.PrometheusMetricsPort)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := config.Load("prod", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "/var/log/formcheck/service.log", cfg.LogsPath)
	assert.True(t, cfg.SentryEnabled)
	assert.False(t, cfg.LogToStdout)
}

func TestLoad_UnknownEnv(t *testing.T) {
	cfg, err := config.Load("staging", writeTestConfig(t))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load("development", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MissingEnvSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[development]\nport = 8090\n"), 0o600))

	cfg, err := config.Load("production", path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing")
}

func TestTomlGet_EnvAliases(t *testing.T) {
	dev := &config.Config{Port: 1}
	prod := &config.Config{Port: 2}
	cfgToml := config.Toml{Development: dev, Production: prod}

	for env, want := range map[string]*config.Config{
		"dev":         dev,
		"DEV":         dev,
		"development": dev,
		"prod":        prod,
		"production":  prod,
		"Production":  prod,
	} {
		got, err := cfgToml.Get(env)
		require.NoError(t, err, "env %s", env)
		assert.Same(t, want, got, "env %s", env)
	}
}

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestGetEnvInt(t *testing.T) {
	const name = "SNAKE_TEST_ENV_INT"
	defer os.Unsetenv(name)

	os.Unsetenv(name)
	require.Equal(t, 7, getEnvInt(name, 7))

	os.Setenv(name, "42")
	require.Equal(t, 42, getEnvInt(name, 7))

	os.Setenv(name, "many")
	require.Equal(t, 7, getEnvInt(name, 7))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, TickMS, cfg.TickMS)
	require.Equal(t, "file", cfg.Backend)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "", cfg.API.Listen)
	require.Equal(t, ":9090", cfg.Prometheus.Listen)
	require.False(t, cfg.Prometheus.Enabled)
	require.Equal(t, time.Duration(TickMS)*time.Millisecond, cfg.TickInterval())
}

func writeConfig(t *testing.T, body string) string {
	dir, err := ioutil.TempDir("", "snake-config")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "snake.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
tick_ms: 120
backend: redis
backend_args: redis://localhost:6379
api:
  listen: ":3005"
  rps: 5
prometheus:
  enabled: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 120*time.Millisecond, cfg.TickInterval())
	require.Equal(t, "redis", cfg.Backend)
	require.Equal(t, "redis://localhost:6379", cfg.BackendArgs)
	require.Equal(t, ":3005", cfg.API.Listen)
	require.Equal(t, 5, cfg.API.RPS)
	require.Equal(t, APIBurst, cfg.API.Burst, "left out, so defaulted")
	require.True(t, cfg.Prometheus.Enabled)
	require.Equal(t, ":9090", cfg.Prometheus.Listen)

	l := cfg.Limiter()
	require.Equal(t, rate.Limit(5), l.Limit())
	require.Equal(t, APIBurst, l.Burst())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "does-not-exist", "snake.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to read config file")

	_, err = Load(writeConfig(t, "backend: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to parse config file")
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		o     Overrides
		check func(t *testing.T, cfg *Config)
	}{
		{"nothing set", Overrides{}, func(t *testing.T, cfg *Config) {
			require.Equal(t, Default(), cfg)
		}},
		{"backend", Overrides{Backend: strPtr("sqlite"), BackendArgs: strPtr("/tmp/s.db")}, func(t *testing.T, cfg *Config) {
			require.Equal(t, "sqlite", cfg.Backend)
			require.Equal(t, "/tmp/s.db", cfg.BackendArgs)
		}},
		{"empty string still applies", Overrides{APIListen: strPtr("")}, func(t *testing.T, cfg *Config) {
			require.Equal(t, "", cfg.API.Listen)
		}},
		{"prometheus", Overrides{PrometheusEnabled: boolPtr(true), PrometheusListen: strPtr(":9100")}, func(t *testing.T, cfg *Config) {
			require.True(t, cfg.Prometheus.Enabled)
			require.Equal(t, ":9100", cfg.Prometheus.Listen)
		}},
		{"tick", Overrides{TickMS: intPtr(50)}, func(t *testing.T, cfg *Config) {
			require.Equal(t, 50*time.Millisecond, cfg.TickInterval())
		}},
		{"non positive tick ignored", Overrides{TickMS: intPtr(0)}, func(t *testing.T, cfg *Config) {
			require.Equal(t, TickMS, cfg.TickMS)
		}},
		{"logging", Overrides{LogLevel: strPtr("debug"), LogFile: strPtr("/tmp/snake.log")}, func(t *testing.T, cfg *Config) {
			require.Equal(t, "debug", cfg.LogLevel)
			require.Equal(t, "/tmp/snake.log", cfg.LogFile)
		}},
	}
	for _, test := range tests {
		cfg := Default()
		cfg.Apply(test.o)
		t.Run(test.name, func(t *testing.T) { test.check(t, cfg) })
	}
}

func TestResolve(t *testing.T) {
	path := writeConfig(t, `
backend: redis
backend_args: redis://localhost:6379
api:
  listen: ":3005"
`)

	cfg, err := Resolve(path, Overrides{Backend: strPtr("inmem")})
	require.NoError(t, err)
	require.Equal(t, "inmem", cfg.Backend, "flags win over the file")
	require.Equal(t, "redis://localhost:6379", cfg.BackendArgs, "file wins over defaults")
	require.Equal(t, ":3005", cfg.API.Listen)

	cfg, err = Resolve("", Overrides{})
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve("", Overrides{LogLevel: strPtr("loud")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")

	_, err = Resolve(filepath.Join(os.TempDir(), "does-not-exist", "snake.yaml"), Overrides{})
	require.Error(t, err)
}

func TestLevel(t *testing.T) {
	cfg := Default()
	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, "info", level.String())
}

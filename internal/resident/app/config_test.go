package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no stray .env
	for _, k := range []string{"ENV", "PORT", "RESIDENT_DATABASE_DRIVER", "DATABASE_URL", "NATS_URL", "AMQP_URL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.True(t, cfg.OTelEnabled)
	require.Empty(t, cfg.NATSURL)
	require.Equal(t, "resident.events", cfg.AMQPExchange)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("RESIDENT_DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/iresident")
	t.Setenv("DB_MAX_CONNS", "20")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.EqualValues(t, 20, cfg.DBMaxConns)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// The file only fills variables that are not set at all.
	t.Setenv("RESIDENT_DATABASE_FILE", "")
	require.NoError(t, os.Unsetenv("RESIDENT_DATABASE_FILE"))
	require.NoError(t, writeFile(filepath.Join(dir, ".env"), "LOG_LEVEL=debug\nRESIDENT_DATABASE_FILE=from-dotenv.db\n"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-dotenv.db", cfg.DatabaseFile)
}

func TestConfigValidate(t *testing.T) {
	base := Config{
		Port:                8000,
		ShutdownGracePeriod: time.Second,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        "x.db",
		DBMaxConns:          10,
	}
	require.NoError(t, base.Validate())

	cases := map[string]func(*Config){
		"unknown driver":         func(c *Config) { c.DatabaseDriver = "mysql" },
		"postgres without url":   func(c *Config) { c.DatabaseDriver = DriverPostgres },
		"min conns above max":    func(c *Config) { c.DatabaseDriver = DriverPostgres; c.DatabaseURL = "postgres://x"; c.DBMinConns = 11 },
		"port out of range":      func(c *Config) { c.Port = 70000 },
		"non-positive grace":     func(c *Config) { c.ShutdownGracePeriod = 0 },
		"negative rate override": func(c *Config) { c.WriteRatePerMinute = -1 },
		"two event buses":        func(c *Config) { c.NATSURL = "nats://x"; c.AMQPURL = "amqp://x" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLimitsOverride(t *testing.T) {
	app := &Application{cfg: Config{StrictRatePerMinute: 3, ReadRatePerMinute: 1200}}
	l := app.limits()

	require.Equal(t, 3, l.Strict.RequestsPerWindow)
	require.Equal(t, 3, l.Strict.Burst)
	require.Equal(t, 1200, l.Read.RequestsPerWindow)
	require.Equal(t, time.Minute, l.Read.Window)
	require.Equal(t, 200, l.Read.Burst)
	require.Equal(t, 60, l.Write.RequestsPerWindow) // untouched
}

func TestApplicationServesWithSQLiteFile(t *testing.T) {
	cfg := Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8000,
		ShutdownGracePeriod: time.Second,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(t.TempDir(), "resident.db"),
	}

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	h := application.Handler()

	req := httptest.NewRequest(http.MethodPost, "/roles/", strings.NewReader(`{"nombre":"admin"}`))
	req.RemoteAddr = "192.0.2.10:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	req.RemoteAddr = "192.0.2.10:5000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"database":"ok"`)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                 string        `env:"ENV"                   envDefault:"dev"`  // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8000"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	DatabaseDriver string `env:"RESIDENT_DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseFile   string `env:"RESIDENT_DATABASE_FILE"   envDefault:"iresident.db"`
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxConns     int32  `env:"DB_MAX_CONNS"             envDefault:"10"`
	DBMinConns     int32  `env:"DB_MIN_CONNS"             envDefault:"0"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// Event bus. At most one of NATS_URL and AMQP_URL may be set; with
	// neither, events are dropped.
	NATSURL      string `env:"NATS_URL"`
	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"resident.events"`

	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`

	// Requests per minute per client IP. Zero keeps the built-in profile.
	StrictRatePerMinute int `env:"RATE_LIMIT_STRICT_PER_MINUTE"`
	WriteRatePerMinute  int `env:"RATE_LIMIT_WRITE_PER_MINUTE"`
	ReadRatePerMinute   int `env:"RATE_LIMIT_READ_PER_MINUTE"`
}

// LoadConfig reads an optional .env file from the working directory and then
// parses the environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("RESIDENT_DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
		if c.DBMinConns > c.DBMaxConns {
			errs = append(errs, fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown RESIDENT_DATABASE_DRIVER %q (want sqlite or postgres)", c.DatabaseDriver))
	}

	if c.NATSURL != "" && c.AMQPURL != "" {
		errs = append(errs, errors.New("set only one of NATS_URL and AMQP_URL"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.ShutdownGracePeriod <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_GRACE_PERIOD must be positive"))
	}
	for name, v := range map[string]int{
		"RATE_LIMIT_STRICT_PER_MINUTE": c.StrictRatePerMinute,
		"RATE_LIMIT_WRITE_PER_MINUTE":  c.WriteRatePerMinute,
		"RATE_LIMIT_READ_PER_MINUTE":   c.ReadRatePerMinute,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", name))
		}
	}

	return errors.Join(errs...)
}

// sqliteDSN enables WAL, a busy timeout and immediate write transactions so
// concurrent redemptions queue on the file lock instead of failing.
func (c Config) sqliteDSN() string {
	return "file:" + c.DatabaseFile +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
}

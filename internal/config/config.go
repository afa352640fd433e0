// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stats-service/internal/stats/core/domain"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	OTelEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	StoreDriver       string        `env:"STORE_DRIVER" envDefault:"postgres"`
	PostgresDSN       string        `env:"POSTGRES_DSN"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"stats.db"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	Timezone  string `env:"STATS_TIMEZONE" envDefault:"UTC"`
	WeekStart string `env:"STATS_WEEK_START" envDefault:"monday"`
	// MaxPeriods caps the periods a single stats query may produce.
	MaxPeriods int `env:"STATS_MAX_PERIODS" envDefault:"10000"`

	calendar domain.Calendar
	level    slog.Level
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required for store driver %q", cfg.StoreDriver)
		}
	case DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("STATS_TIMEZONE: %w", err)
	}
	weekStart, err := parseWeekday(cfg.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("STATS_WEEK_START: %w", err)
	}
	if cfg.MaxPeriods <= 0 {
		return nil, fmt.Errorf("STATS_MAX_PERIODS must be positive, got %d", cfg.MaxPeriods)
	}
	cfg.calendar = domain.Calendar{Location: loc, WeekStart: weekStart, MaxPeriods: cfg.MaxPeriods}

	if err := cfg.level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return &cfg, nil
}

// Calendar is the period calendar derived from STATS_TIMEZONE and
// STATS_WEEK_START.
func (c *Config) Calendar() domain.Calendar { return c.calendar }

func (c *Config) SlogLevel() slog.Level { return c.level }

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

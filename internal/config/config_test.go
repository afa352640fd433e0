package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/stats")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.StoreDriver != DriverPostgres {
		t.Fatalf("expected postgres driver, got %s", cfg.StoreDriver)
	}
	if cfg.DBMaxOpenConns != 20 || cfg.DBMaxIdleConns != 10 || cfg.DBConnMaxLifetime != 30*time.Minute {
		t.Fatalf("unexpected pool settings: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected 5s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Fatalf("expected info level, got %s", cfg.SlogLevel())
	}

	cal := cfg.Calendar()
	if cal.Location != time.UTC || cal.WeekStart != time.Monday || cal.MaxPeriods != 10000 {
		t.Fatalf("unexpected calendar: %+v", cal)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("STATS_TIMEZONE", "Europe/Berlin")
	t.Setenv("STATS_WEEK_START", "Sunday")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STATS_MAX_PERIODS", "500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StoreDriver != DriverSQLite || cfg.SQLitePath != "/tmp/x.db" {
		t.Fatalf("unexpected store settings: %s %s", cfg.StoreDriver, cfg.SQLitePath)
	}
	if cfg.Calendar().Location.String() != "Europe/Berlin" || cfg.Calendar().WeekStart != time.Sunday {
		t.Fatalf("unexpected calendar: %+v", cfg.Calendar())
	}
	if cfg.Calendar().MaxPeriods != 500 {
		t.Fatalf("expected 500 max periods, got %d", cfg.Calendar().MaxPeriods)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %s", cfg.SlogLevel())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing dsn", map[string]string{"STORE_DRIVER": "postgres", "POSTGRES_DSN": ""}, "POSTGRES_DSN is required"},
		{"bad driver", map[string]string{"STORE_DRIVER": "mongo"}, "unknown store driver"},
		{"bad int", map[string]string{"STORE_DRIVER": "memory", "DB_MAX_OPEN_CONNS": "many"}, "parse env:"},
		{"bad timezone", map[string]string{"STORE_DRIVER": "memory", "STATS_TIMEZONE": "Mars/Olympus"}, "STATS_TIMEZONE"},
		{"bad weekday", map[string]string{"STORE_DRIVER": "memory", "STATS_WEEK_START": "funday"}, "STATS_WEEK_START"},
		{"zero max periods", map[string]string{"STORE_DRIVER": "memory", "STATS_MAX_PERIODS": "0"}, "STATS_MAX_PERIODS"},
		{"bad level", map[string]string{"STORE_DRIVER": "memory", "LOG_LEVEL": "loud"}, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

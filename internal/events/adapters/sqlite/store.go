// Package sqlite provides a SQLite-backed event store. Timestamps are kept
// as UTC unix nanoseconds so ordering matches the in-memory store.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"stats-service/internal/events/core/domain"
	"stats-service/internal/events/core/ports"
	statsports "stats-service/internal/stats/core/ports"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store persists statistic events in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var (
	_ ports.EventRepositoryPort   = (*Store)(nil)
	_ statsports.EventReaderPort = (*Store)(nil)
)

func toNanos(value time.Time) int64 {
	return value.UTC().UnixNano()
}

func fromNanos(value int64) time.Time {
	return time.Unix(0, value).UTC()
}

// Open opens a SQLite store and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

const insertEventSQL = `INSERT INTO stats_events (
   event_id,
   statistic,
   kind,
   value,
   occurred_at,
   recorded_at
 ) VALUES (?, ?, ?, ?, ?, ?)
 ON CONFLICT (event_id) DO NOTHING
 RETURNING seq`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) insert(ctx context.Context, q queryRower, e *domain.Event) (bool, error) {
	err := q.QueryRowContext(ctx, insertEventSQL,
		e.ID.String(),
		e.StatisticKey,
		string(e.Kind),
		e.Value,
		toNanos(e.Timestamp),
		toNanos(s.now()),
	).Scan(&e.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert event: %w", err)
	}
	return true, nil
}

func (s *Store) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.insert(ctx, s.sqlDB, e)
}

// InsertEvents writes the batch in one transaction.
func (s *Store) InsertEvents(ctx context.Context, events []*domain.Event) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created := 0
	for _, e := range events {
		ok, err := s.insert(ctx, tx, e)
		if err != nil {
			return 0, err
		}
		if ok {
			created++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return created, nil
}

func (s *Store) FetchEvents(ctx context.Context, statisticKey string, asOf *time.Time) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := `SELECT event_id, kind, value, occurred_at, seq
 FROM stats_events
 WHERE statistic = ?`
	args := []any{statisticKey}
	if asOf != nil {
		query += " AND occurred_at <= ?"
		args = append(args, toNanos(*asOf))
	}
	query += " ORDER BY occurred_at, seq"

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var (
			id, kind string
			at       int64
			e        domain.Event
		)
		if err := rows.Scan(&id, &kind, &e.Value, &at, &e.Seq); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("event %d: %w", e.Seq, err)
		}
		if e.Kind, err = domain.ParseKind(kind); err != nil {
			return nil, fmt.Errorf("event %d: %w", e.Seq, err)
		}
		e.StatisticKey = statisticKey
		e.Timestamp = fromNanos(at)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"stats-service/internal/events/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	lastQuery  string
	lastArgs   []any
	execCalled bool
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func sampleEvent(kind domain.Kind, value int64) *domain.Event {
	return &domain.Event{
		ID:           uuid.New(),
		StatisticKey: "orders",
		Kind:         kind,
		Value:        value,
		Timestamp:    time.Date(2020, 1, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600)),
	}
}

// ------------------------------------------------------------
// SINGLE INSERT
// ------------------------------------------------------------

func TestEventRepository_InsertEvent_Created(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO stats_events") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeResult{rowsAffected: 1}, nil
		},
	}

	repo := NewEventRepository(db)
	e := sampleEvent(domain.KindChange, -2)

	created, err := repo.InsertEvent(context.Background(), e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true, got false")
	}
	if len(db.lastArgs) != 5 {
		t.Fatalf("expected 5 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[0] != e.ID.String() {
		t.Fatalf("expected event id arg, got %v", db.lastArgs[0])
	}
	if db.lastArgs[2] != "change" || db.lastArgs[3] != int64(-2) {
		t.Fatalf("unexpected kind/value args: %v %v", db.lastArgs[2], db.lastArgs[3])
	}
	ts, ok := db.lastArgs[4].(time.Time)
	if !ok || ts.Location() != time.UTC || !ts.Equal(e.Timestamp) {
		t.Fatalf("expected UTC timestamp, got %v", db.lastArgs[4])
	}
}

func TestEventRepository_InsertEvent_Duplicate(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	created, err := NewEventRepository(db).InsertEvent(context.Background(), sampleEvent(domain.KindSet, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

func TestEventRepository_InsertEvent_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}

	created, err := NewEventRepository(db).InsertEvent(context.Background(), sampleEvent(domain.KindSet, 3))
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}

// ------------------------------------------------------------
// BULK INSERT
// ------------------------------------------------------------

func TestEventRepository_InsertEvents(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "unnest(") {
				t.Fatalf("expected unnest in query, got: %s", query)
			}
			return &fakeResult{rowsAffected: 2}, nil
		},
	}

	events := []*domain.Event{
		sampleEvent(domain.KindSet, 3),
		sampleEvent(domain.KindChange, 1),
		sampleEvent(domain.KindChange, -1),
	}

	n, err := NewEventRepository(db).InsertEvents(context.Background(), events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 created, got %d", n)
	}
	if len(db.lastArgs) != 5 {
		t.Fatalf("expected 5 array args, got %d", len(db.lastArgs))
	}

	values, ok := db.lastArgs[3].(*pq.Int64Array)
	if !ok {
		t.Fatalf("expected *pq.Int64Array, got %T", db.lastArgs[3])
	}
	if len(*values) != 3 || (*values)[2] != -1 {
		t.Fatalf("unexpected values: %v", *values)
	}

	times, ok := db.lastArgs[4].(*pq.StringArray)
	if !ok {
		t.Fatalf("expected *pq.StringArray, got %T", db.lastArgs[4])
	}
	if (*times)[0] != "2020-01-01T11:00:00Z" {
		t.Fatalf("expected RFC3339 UTC timestamp, got %s", (*times)[0])
	}
}

func TestEventRepository_InsertEvents_Empty(t *testing.T) {
	db := &fakeDB{}

	n, err := NewEventRepository(db).InsertEvents(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 || db.execCalled {
		t.Fatalf("expected no-op for empty batch")
	}
}

// ------------------------------------------------------------
// SCHEMA
// ------------------------------------------------------------

func TestEnsureSchema(t *testing.T) {
	db := &fakeDB{}

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "CREATE TABLE IF NOT EXISTS stats_events") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}

	db.ExecFn = func(ctx context.Context, query string, args ...any) (sql.Result, error) {
		return nil, errors.New("permission denied")
	}
	err := EnsureSchema(context.Background(), db)
	if err == nil || !strings.HasPrefix(err.Error(), "ensure schema:") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

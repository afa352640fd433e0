package postgres

import (
	"context"
	"fmt"
	"time"

	eventdomain "stats-service/internal/events/core/domain"
	"stats-service/internal/stats/core/ports"

	"github.com/google/uuid"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type EventReader struct {
	db DB
}

func NewEventReader(db DB) *EventReader {
	return &EventReader{db: db}
}

var _ ports.EventReaderPort = (*EventReader)(nil)

const selectEventsSQL = `
SELECT
    event_id,
    kind,
    value,
    occurred_at,
    seq
FROM stats_events
WHERE statistic = $1`

func (r *EventReader) FetchEvents(ctx context.Context, statisticKey string, asOf *time.Time) ([]eventdomain.Event, error) {
	query := selectEventsSQL
	args := []any{statisticKey}
	if asOf != nil {
		query += " AND occurred_at <= $2"
		args = append(args, asOf.UTC())
	}
	query += "\nORDER BY occurred_at, seq"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []eventdomain.Event{}
	for rows.Next() {
		var (
			id, kind string
			e        eventdomain.Event
		)
		if err := rows.Scan(&id, &kind, &e.Value, &e.Timestamp, &e.Seq); err != nil {
			return nil, err
		}

		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("event %d: %w", e.Seq, err)
		}
		if e.Kind, err = eventdomain.ParseKind(kind); err != nil {
			return nil, fmt.Errorf("event %d: %w", e.Seq, err)
		}
		e.StatisticKey = statisticKey
		e.Timestamp = e.Timestamp.UTC()

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

package postgres

import (
	"context"
	"time"

	"stats-service/internal/events/core/domain"
	"stats-service/internal/events/core/ports"

	"github.com/lib/pq"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

const insertEventSQL = `
INSERT INTO stats_events (
    event_id,
    statistic,
    kind,
    value,
    occurred_at
) VALUES (
    $1, $2, $3, $4, $5
)
ON CONFLICT (event_id) DO NOTHING;
`

// Arrays are unnested in order, so seq follows the batch order.
const insertEventsSQL = `
INSERT INTO stats_events (
    event_id,
    statistic,
    kind,
    value,
    occurred_at
)
SELECT *
FROM unnest(
    $1::uuid[],
    $2::text[],
    $3::text[],
    $4::bigint[],
    $5::timestamptz[]
)
ON CONFLICT (event_id) DO NOTHING;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID.String(),
		e.StatisticKey,
		string(e.Kind),
		e.Value,
		e.Timestamp.UTC(),
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> duplicate event_id
	return rows > 0, nil
}

func (r *EventRepository) InsertEvents(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	ids := make([]string, len(events))
	keys := make([]string, len(events))
	kinds := make([]string, len(events))
	values := make([]int64, len(events))
	times := make([]string, len(events))

	for i, e := range events {
		ids[i] = e.ID.String()
		keys[i] = e.StatisticKey
		kinds[i] = string(e.Kind)
		values[i] = e.Value
		times[i] = e.Timestamp.UTC().Format(time.RFC3339Nano)
	}

	res, err := r.db.ExecContext(ctx, insertEventsSQL,
		pq.Array(ids),
		pq.Array(keys),
		pq.Array(kinds),
		pq.Array(values),
		pq.Array(times),
	)
	if err != nil {
		return 0, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

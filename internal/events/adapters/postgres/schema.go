package postgres

import (
	"context"
	"fmt"
)

// schemaSQL is idempotent; EnsureSchema runs it on every start.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS stats_events (
    seq         BIGSERIAL PRIMARY KEY,
    event_id    UUID        NOT NULL UNIQUE,
    statistic   TEXT        NOT NULL,
    kind        TEXT        NOT NULL CHECK (kind IN ('set', 'change')),
    value       BIGINT      NOT NULL,
    occurred_at TIMESTAMPTZ NOT NULL,
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS stats_events_statistic_time_idx
    ON stats_events (statistic, occurred_at, seq);
`

func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

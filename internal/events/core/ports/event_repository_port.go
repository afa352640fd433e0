package ports

import (
	"context"

	"stats-service/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent:
	//   created = true,  err = nil  -> new record, e.Seq assigned
	//   created = false, err = nil  -> duplicate event ID (idempotent)
	//   created = false, err != nil -> store error
	InsertEvent(ctx context.Context, e *domain.Event) (created bool, err error)

	// InsertEvents appends a batch in order and reports how many were new.
	InsertEvents(ctx context.Context, events []*domain.Event) (created int, err error)
}

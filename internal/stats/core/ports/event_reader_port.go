package ports

import (
	"context"
	"time"

	eventdomain "stats-service/internal/events/core/domain"
)

type EventReaderPort interface {
	// FetchEvents returns the statistic's events ordered by timestamp
	// ascending, ties in insertion order. asOf is an inclusive upper
	// bound; nil means no bound.
	FetchEvents(ctx context.Context, statisticKey string, asOf *time.Time) ([]eventdomain.Event, error)
}

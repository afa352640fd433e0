package domain

import (
	"time"

	eventdomain "stats-service/internal/events/core/domain"
)

// ValueAt resolves a counter at instant at (inclusive) from its events,
// which must be ordered by timestamp with ties in insertion order.
//
// The latest SET at or before at gives the baseline (0 without one); every
// CHANGE after that SET's timestamp and not after at is added to it.
func ValueAt(events []eventdomain.Event, at time.Time) int64 {
	return resolve(events, func(ts time.Time) bool { return !ts.After(at) })
}

// ValueBefore is ValueAt with an exclusive bound: only events strictly
// before t count. It is the closing value of a period ending at t.
func ValueBefore(events []eventdomain.Event, t time.Time) int64 {
	return resolve(events, func(ts time.Time) bool { return ts.Before(t) })
}

func resolve(events []eventdomain.Event, within func(time.Time) bool) int64 {
	last := -1
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].IsSet() && within(events[i].Timestamp) {
			last = i
			break
		}
	}

	var value int64
	var since time.Time
	if last >= 0 {
		value = events[last].Value
		since = events[last].Timestamp
	}

	for _, e := range events {
		if !e.IsChange() || !within(e.Timestamp) {
			continue
		}
		if last >= 0 && !e.Timestamp.After(since) {
			continue
		}
		value += e.Value
	}

	return value
}

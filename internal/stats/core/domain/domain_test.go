package domain

import (
	"sort"
	"time"

	eventdomain "stats-service/internal/events/core/domain"
)

// eventLog mimics an append-only store: Seq follows insertion order and
// sorted() returns the events the way a store fetch would.
type eventLog struct {
	events []eventdomain.Event
}

func (l *eventLog) add(kind eventdomain.Kind, value int64, ts time.Time) {
	l.events = append(l.events, eventdomain.Event{
		StatisticKey: "orders",
		Kind:         kind,
		Value:        value,
		Timestamp:    ts,
		Seq:          int64(len(l.events) + 1),
	})
}

func (l *eventLog) set(value int64, ts time.Time)       { l.add(eventdomain.KindSet, value, ts) }
func (l *eventLog) increase(amount int64, ts time.Time) { l.add(eventdomain.KindChange, amount, ts) }
func (l *eventLog) decrease(amount int64, ts time.Time) { l.add(eventdomain.KindChange, -amount, ts) }

func (l *eventLog) sorted() []eventdomain.Event {
	out := append([]eventdomain.Event(nil), l.events...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

var now = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time  { return now.AddDate(0, 0, -n) }
func hoursAgo(n int) time.Time { return now.Add(-time.Duration(n) * time.Hour) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package domain

import (
	"sort"
	"time"

	eventdomain "stats-service/internal/events/core/domain"
)

// DataPoint is the report row for one period.
type DataPoint struct {
	Start time.Time
	End   time.Time
	Label string

	// Value is the counter's closing value for the period.
	Value int64

	// Sums over CHANGE events inside [Start, End); SETs never count.
	Increments int64
	Decrements int64
	Difference int64
}

// Aggregate builds one DataPoint per period, in order. events must be the
// statistic's log ordered by timestamp (ties by insertion) and periods must
// be ascending and non-overlapping, as Calendar produces them.
//
// The log is folded once: a SET replaces the running value and a CHANGE is
// added unless it shares the latest SET's timestamp, which gives the same
// closing values as ValueBefore on each period end.
func Aggregate(events []eventdomain.Event, periods []Period) []DataPoint {
	points := make([]DataPoint, 0, len(periods))

	var (
		value  int64
		setAt  time.Time
		hasSet bool
		next   int
	)

	for _, p := range periods {
		dp := DataPoint{Start: p.Start, End: p.End, Label: p.Label}

		for ; next < len(events) && events[next].Timestamp.Before(p.End); next++ {
			e := events[next]
			if e.IsSet() {
				value, setAt, hasSet = e.Value, e.Timestamp, true
				continue
			}
			if hasSet && !e.Timestamp.After(setAt) {
				continue
			}
			value += e.Value
		}
		dp.Value = value

		from := sort.Search(next, func(i int) bool {
			return !events[i].Timestamp.Before(p.Start)
		})
		for _, e := range events[from:next] {
			if !e.IsChange() {
				continue
			}
			if e.Value > 0 {
				dp.Increments += e.Value
			} else {
				dp.Decrements -= e.Value
			}
		}
		dp.Difference = dp.Increments - dp.Decrements

		points = append(points, dp)
	}

	return points
}

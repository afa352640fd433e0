package domain

import (
	"errors"
	"fmt"
	"time"
)

// DefaultMaxPeriods caps a single period listing when Calendar.MaxPeriods
// is unset.
const DefaultMaxPeriods = 10000

var (
	ErrTooManyPeriods = errors.New("too many periods")
	ErrStalledPeriod  = errors.New("calendar boundary did not advance")
)

// Period is a half-open bucket [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// Calendar does the boundary arithmetic for period generation. Weeks start
// on WeekStart; all boundaries are computed in Location.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
	// MaxPeriods bounds Periods and AlignedPeriods; <= 0 means
	// DefaultMaxPeriods.
	MaxPeriods int
}

// DefaultCalendar is UTC with Monday-start weeks.
func DefaultCalendar() Calendar {
	return Calendar{Location: time.UTC, WeekStart: time.Monday, MaxPeriods: DefaultMaxPeriods}
}

func (c Calendar) maxPeriods() int {
	if c.MaxPeriods <= 0 {
		return DefaultMaxPeriods
	}
	return c.MaxPeriods
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Floor returns the start of the calendar unit containing t.
func (c Calendar) Floor(t time.Time, g Granularity) time.Time {
	t = t.In(c.loc())
	y, m, d := t.Date()

	switch g {
	case Hour:
		// Stays in the current occurrence of a repeated DST hour and
		// honours half-hour offsets.
		return t.Add(-(time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second +
			time.Duration(t.Nanosecond())))
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, c.loc())
	case Week:
		back := (int(t.Weekday()) - int(c.WeekStart) + 7) % 7
		return time.Date(y, m, d-back, 0, 0, 0, 0, c.loc())
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, c.loc())
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, c.loc())
	default:
		return t
	}
}

// Next returns the first boundary strictly after t.
func (c Calendar) Next(t time.Time, g Granularity) time.Time {
	return c.add(c.Floor(t, g), g)
}

func (c Calendar) add(t time.Time, g Granularity) time.Time {
	switch g {
	case Hour:
		return t.Add(time.Hour)
	case Day:
		return t.AddDate(0, 0, 1)
	case Week:
		return t.AddDate(0, 0, 7)
	case Month:
		return t.AddDate(0, 1, 0)
	case Year:
		return t.AddDate(1, 0, 0)
	default:
		return t
	}
}

// Label identifies the unit containing t; weeks use the ISO year and week.
func (c Calendar) Label(t time.Time, g Granularity) string {
	t = t.In(c.loc())
	switch g {
	case Hour:
		return t.Format("2006010215")
	case Day:
		return t.Format("20060102")
	case Week:
		y, w := t.ISOWeek()
		return fmt.Sprintf("%04d%02d", y, w)
	case Month:
		return t.Format("200601")
	case Year:
		return t.Format("2006")
	default:
		return ""
	}
}

// Periods splits [start, end) into contiguous buckets. The first bucket
// starts at start itself and runs to the next boundary; the last one is
// clamped to end. An empty range yields no periods.
func (c Calendar) Periods(start, end time.Time, g Granularity) ([]Period, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	periods := []Period{}
	cur := start.In(c.loc())
	end = end.In(c.loc())

	for cur.Before(end) {
		next := c.Next(cur, g)
		if !next.After(cur) {
			return nil, fmt.Errorf("%w: %s after %s", ErrStalledPeriod, g, cur.Format(time.RFC3339))
		}
		if next.After(end) {
			next = end
		}
		if len(periods) == c.maxPeriods() {
			return nil, fmt.Errorf("%w: more than %d %s periods", ErrTooManyPeriods, c.maxPeriods(), g)
		}
		periods = append(periods, Period{Start: cur, End: next, Label: c.Label(cur, g)})
		cur = next
	}

	return periods, nil
}

// AlignedPeriods covers [start, end) with whole calendar units: the first
// bucket starts at the boundary at or before start and the last one ends at
// the boundary at or after end.
func (c Calendar) AlignedPeriods(start, end time.Time, g Granularity) ([]Period, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	periods := []Period{}
	if !start.Before(end) {
		return periods, nil
	}
	end = end.In(c.loc())

	for cur := c.Floor(start, g); cur.Before(end); {
		next := c.add(cur, g)
		if !next.After(cur) {
			return nil, fmt.Errorf("%w: %s after %s", ErrStalledPeriod, g, cur.Format(time.RFC3339))
		}
		if len(periods) == c.maxPeriods() {
			return nil, fmt.Errorf("%w: more than %d %s periods", ErrTooManyPeriods, c.maxPeriods(), g)
		}
		periods = append(periods, Period{Start: cur, End: next, Label: c.Label(cur, g)})
		cur = next
	}

	return periods, nil
}

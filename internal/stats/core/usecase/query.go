package usecase

import (
	"context"
	"time"

	"stats-service/internal/stats/core/domain"
)

// Query is an immutable report description; every setter returns a copy.
// Obtain one from StatsUseCase.For: a zero Query fails with ErrInvalidQuery.
type Query struct {
	uc          *StatsUseCase
	key         string
	start       time.Time
	end         time.Time
	granularity domain.Granularity
	aligned     bool
}

// Start sets the inclusive lower bound.
func (q Query) Start(t time.Time) Query { q.start = t; return q }

// End sets the exclusive upper bound.
func (q Query) End(t time.Time) Query { q.end = t; return q }

func (q Query) GroupBy(g domain.Granularity) Query { q.granularity = g; return q }

func (q Query) GroupByHour() Query  { return q.GroupBy(domain.Hour) }
func (q Query) GroupByDay() Query   { return q.GroupBy(domain.Day) }
func (q Query) GroupByWeek() Query  { return q.GroupBy(domain.Week) }
func (q Query) GroupByMonth() Query { return q.GroupBy(domain.Month) }
func (q Query) GroupByYear() Query  { return q.GroupBy(domain.Year) }

// Aligned widens the first and last periods to whole calendar units.
func (q Query) Aligned() Query { q.aligned = true; return q }

func (q Query) Key() string                     { return q.key }
func (q Query) Range() (start, end time.Time)   { return q.start, q.end }
func (q Query) Granularity() domain.Granularity { return q.granularity }
func (q Query) IsAligned() bool                 { return q.aligned }

func (q Query) Periods() ([]domain.Period, error) {
	if q.uc == nil {
		return nil, ErrInvalidQuery
	}
	if q.aligned {
		return q.uc.calendar.AlignedPeriods(q.start, q.end, q.granularity)
	}
	return q.uc.calendar.Periods(q.start, q.end, q.granularity)
}

// Get returns one data point per period. The store is read once; on
// failure no partial report is returned.
func (q Query) Get(ctx context.Context) ([]domain.DataPoint, error) {
	if q.uc == nil {
		return nil, ErrInvalidQuery
	}
	return q.uc.run(ctx, q)
}

func (q Query) GetValue(ctx context.Context, at time.Time) (int64, error) {
	if q.uc == nil {
		return 0, ErrInvalidQuery
	}
	return q.uc.GetValue(ctx, q.key, at)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stats-service/internal/stats/core/domain"
	"stats-service/internal/stats/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidQuery = errors.New("invalid stats query")
)

// Clock supplies "now" for query defaults.
type Clock func() time.Time

type StatsUseCase struct {
	reader   ports.EventReaderPort
	calendar domain.Calendar
	clock    Clock
	tracer   trace.Tracer
}

func NewStatsUseCase(reader ports.EventReaderPort, calendar domain.Calendar, clock Clock) *StatsUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &StatsUseCase{
		reader:   reader,
		calendar: calendar,
		clock:    clock,
		tracer:   otel.Tracer("stats-service/internal/stats"),
	}
}

// GetValue resolves the statistic at instant at, bypassing periods.
func (uc *StatsUseCase) GetValue(ctx context.Context, key string, at time.Time) (int64, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, ErrInvalidQuery
	}

	ctx, span := uc.tracer.Start(ctx, "stats.GetValue", trace.WithAttributes(
		attribute.String("stats.key", key),
	))
	defer span.End()

	events, err := uc.reader.FetchEvents(ctx, key, &at)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	return domain.ValueAt(events, at), nil
}

// For starts a query on key covering the last month, grouped by week.
func (uc *StatsUseCase) For(key string) Query {
	now := uc.clock()
	return Query{
		uc:          uc,
		key:         strings.TrimSpace(key),
		start:       now.AddDate(0, -1, 0),
		end:         now,
		granularity: domain.Week,
	}
}

func (uc *StatsUseCase) run(ctx context.Context, q Query) ([]domain.DataPoint, error) {
	if q.key == "" {
		return nil, ErrInvalidQuery
	}

	periods, err := q.Periods()
	if errors.Is(err, domain.ErrTooManyPeriods) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	if err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return []domain.DataPoint{}, nil
	}

	ctx, span := uc.tracer.Start(ctx, "stats.Query", trace.WithAttributes(
		attribute.String("stats.key", q.key),
		attribute.String("stats.granularity", q.granularity.String()),
		attribute.Int("stats.periods", len(periods)),
	))
	defer span.End()

	asOf := periods[len(periods)-1].End
	events, err := uc.reader.FetchEvents(ctx, q.key, &asOf)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return domain.Aggregate(events, periods), nil
}

// GetStatsInput is the transport-facing form of a Query. Nil bounds and an
// empty GroupBy keep the builder defaults.
type GetStatsInput struct {
	Key     string
	Start   *time.Time
	End     *time.Time
	GroupBy string
	Aligned bool
}

type StatsReport struct {
	Key         string
	Start       time.Time
	End         time.Time
	Granularity domain.Granularity
	Aligned     bool
	DataPoints  []domain.DataPoint
}

func (uc *StatsUseCase) Execute(ctx context.Context, in GetStatsInput) (*StatsReport, error) {
	q := uc.For(in.Key)
	if in.Start != nil {
		q = q.Start(*in.Start)
	}
	if in.End != nil {
		q = q.End(*in.End)
	}
	if in.GroupBy != "" {
		g, err := domain.ParseGranularity(in.GroupBy)
		if err != nil {
			return nil, err
		}
		q = q.GroupBy(g)
	}
	if in.Aligned {
		q = q.Aligned()
	}

	points, err := q.Get(ctx)
	if err != nil {
		return nil, err
	}

	start, end := q.Range()
	return &StatsReport{
		Key:         q.Key(),
		Start:       start,
		End:         end,
		Granularity: q.Granularity(),
		Aligned:     q.IsAligned(),
		DataPoints:  points,
	}, nil
}

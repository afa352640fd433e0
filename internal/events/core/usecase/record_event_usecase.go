package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stats-service/internal/events/core/domain"
	"stats-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
)

// Clock supplies the timestamp of events recorded without one.
type Clock func() time.Time

type RecordEventUseCase struct {
	repo  ports.EventRepositoryPort
	clock Clock
}

func NewRecordEventUseCase(repo ports.EventRepositoryPort, clock Clock) *RecordEventUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &RecordEventUseCase{repo: repo, clock: clock}
}

type RecordEventInput struct {
	ID           string // optional, UUID; generated when empty
	StatisticKey string
	Kind         string // "set" | "change"
	Value        int64
	Timestamp    *time.Time // nil -> clock
}

type RecordEventResult struct {
	Event   domain.Event
	Created bool
}

func (uc *RecordEventUseCase) Execute(ctx context.Context, in RecordEventInput) (RecordEventResult, error) {
	e, err := uc.buildEvent(in)
	if err != nil {
		return RecordEventResult{}, err
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return RecordEventResult{}, err
	}

	return RecordEventResult{Event: *e, Created: created}, nil
}

type recordOptions struct {
	amount int64
	at     *time.Time
	id     string
}

type RecordOption func(*recordOptions)

// WithAmount sets the size of an increase or decrease (default 1).
func WithAmount(n int64) RecordOption {
	return func(o *recordOptions) { o.amount = n }
}

// At backdates (or postdates) the event instead of using the clock.
func At(t time.Time) RecordOption {
	return func(o *recordOptions) { o.at = &t }
}

// WithEventID makes the append idempotent on a caller-chosen UUID.
func WithEventID(id string) RecordOption {
	return func(o *recordOptions) { o.id = id }
}

func applyOptions(opts []RecordOption) recordOptions {
	o := recordOptions{amount: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (uc *RecordEventUseCase) Increase(ctx context.Context, key string, opts ...RecordOption) (RecordEventResult, error) {
	o := applyOptions(opts)
	if o.amount <= 0 {
		return RecordEventResult{}, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidEvent, o.amount)
	}
	return uc.Execute(ctx, RecordEventInput{
		ID:           o.id,
		StatisticKey: key,
		Kind:         string(domain.KindChange),
		Value:        o.amount,
		Timestamp:    o.at,
	})
}

func (uc *RecordEventUseCase) Decrease(ctx context.Context, key string, opts ...RecordOption) (RecordEventResult, error) {
	o := applyOptions(opts)
	if o.amount <= 0 {
		return RecordEventResult{}, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidEvent, o.amount)
	}
	return uc.Execute(ctx, RecordEventInput{
		ID:           o.id,
		StatisticKey: key,
		Kind:         string(domain.KindChange),
		Value:        -o.amount,
		Timestamp:    o.at,
	})
}

// Set records an absolute value. WithAmount is ignored.
func (uc *RecordEventUseCase) Set(ctx context.Context, key string, value int64, opts ...RecordOption) (RecordEventResult, error) {
	o := applyOptions(opts)
	return uc.Execute(ctx, RecordEventInput{
		ID:           o.id,
		StatisticKey: key,
		Kind:         string(domain.KindSet),
		Value:        value,
		Timestamp:    o.at,
	})
}

type BulkRecordInput struct {
	Events []RecordEventInput
}

type BulkRecordResult struct {
	Created    int
	Duplicates int
}

// BulkRecord validates every event before appending any of them.
func (uc *RecordEventUseCase) BulkRecord(ctx context.Context, in BulkRecordInput) (BulkRecordResult, error) {
	var res BulkRecordResult

	if len(in.Events) == 0 {
		return res, fmt.Errorf("%w: no events", ErrInvalidEvent)
	}

	events := make([]*domain.Event, 0, len(in.Events))
	for i, ev := range in.Events {
		e, err := uc.buildEvent(ev)
		if err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, e)
	}

	created, err := uc.repo.InsertEvents(ctx, events)
	if err != nil {
		return res, err
	}

	res.Created = created
	res.Duplicates = len(events) - created
	return res, nil
}

func (uc *RecordEventUseCase) buildEvent(in RecordEventInput) (*domain.Event, error) {
	key := strings.TrimSpace(in.StatisticKey)
	if key == "" {
		return nil, fmt.Errorf("%w: statistic key is required", ErrInvalidEvent)
	}

	kind, err := domain.ParseKind(in.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	id := uuid.New()
	if in.ID != "" {
		id, err = uuid.Parse(in.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: id: %w", ErrInvalidEvent, err)
		}
	}

	ts := uc.clock()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}

	return &domain.Event{
		ID:           id,
		StatisticKey: key,
		Kind:         kind,
		Value:        in.Value,
		Timestamp:    ts.UTC().Truncate(time.Microsecond), // PostgreSQL TIMESTAMPTZ precision
	}, nil
}

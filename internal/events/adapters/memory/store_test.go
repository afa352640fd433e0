package memory

import (
	"context"
	"testing"
	"time"

	"stats-service/internal/events/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(key string, kind domain.Kind, value int64, ts time.Time) *domain.Event {
	return &domain.Event{ID: uuid.New(), StatisticKey: key, Kind: kind, Value: value, Timestamp: ts}
}

func TestStore_OrdersByTimestampThenInsertion(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	first := newEvent("orders", domain.KindSet, 1, base)
	backdated := newEvent("orders", domain.KindChange, 5, base.Add(-time.Hour))
	tie := newEvent("orders", domain.KindSet, 2, base)
	other := newEvent("signups", domain.KindChange, 1, base)

	for _, e := range []*domain.Event{first, backdated, tie, other} {
		created, err := s.InsertEvent(ctx, e)
		require.NoError(t, err)
		require.True(t, created)
	}

	events, err := s.FetchEvents(ctx, "orders", nil)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, backdated.ID, events[0].ID)
	assert.Equal(t, first.ID, events[1].ID)
	assert.Equal(t, tie.ID, events[2].ID)
	assert.Less(t, events[1].Seq, events[2].Seq)
}

func TestStore_AsOfIsInclusive(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.InsertEvents(ctx, []*domain.Event{
		newEvent("orders", domain.KindChange, 1, base.Add(-time.Hour)),
		newEvent("orders", domain.KindChange, 1, base),
		newEvent("orders", domain.KindChange, 1, base.Add(time.Hour)),
	})
	require.NoError(t, err)

	events, err := s.FetchEvents(ctx, "orders", &base)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	none, err := s.FetchEvents(ctx, "unknown", nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_DuplicateIDs(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	e := newEvent("orders", domain.KindChange, 1, time.Now())

	created, err := s.InsertEvent(ctx, e)
	require.NoError(t, err)
	assert.True(t, created)

	dup := *e
	created, err = s.InsertEvent(ctx, &dup)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := s.InsertEvents(ctx, []*domain.Event{&dup, newEvent("orders", domain.KindChange, 1, time.Now())})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStore()
	_, err := s.InsertEvent(ctx, newEvent("orders", domain.KindChange, 1, time.Now()))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.FetchEvents(ctx, "orders", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// Package memory is an in-process event store for development and tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"stats-service/internal/events/core/domain"
	"stats-service/internal/events/core/ports"
	statsports "stats-service/internal/stats/core/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu      sync.RWMutex
	seq     int64
	ids     map[uuid.UUID]struct{}
	streams map[string][]domain.Event // per statistic, ordered by (Timestamp, Seq)
}

func NewStore() *Store {
	return &Store{
		ids:     map[uuid.UUID]struct{}{},
		streams: map[string][]domain.Event{},
	}
}

var (
	_ ports.EventRepositoryPort   = (*Store)(nil)
	_ statsports.EventReaderPort = (*Store)(nil)
)

func (s *Store) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(e), nil
}

func (s *Store) InsertEvents(ctx context.Context, events []*domain.Event) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, e := range events {
		if s.insert(e) {
			created++
		}
	}
	return created, nil
}

// insert must be called with s.mu held.
func (s *Store) insert(e *domain.Event) bool {
	if _, dup := s.ids[e.ID]; dup {
		return false
	}

	s.seq++
	e.Seq = s.seq
	s.ids[e.ID] = struct{}{}

	stream := s.streams[e.StatisticKey]
	// after every event with the same timestamp
	i := sort.Search(len(stream), func(i int) bool {
		return stream[i].Timestamp.After(e.Timestamp)
	})
	s.streams[e.StatisticKey] = slices.Insert(stream, i, *e)
	return true
}

func (s *Store) FetchEvents(ctx context.Context, statisticKey string, asOf *time.Time) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stream := s.streams[statisticKey]
	n := len(stream)
	if asOf != nil {
		n = sort.Search(len(stream), func(i int) bool {
			return stream[i].Timestamp.After(*asOf)
		})
	}

	return slices.Clone(stream[:n]), nil
}

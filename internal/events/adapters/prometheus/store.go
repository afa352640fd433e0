// Package prometheus instruments an event store with Prometheus metrics.
package prometheus

import (
	"context"
	"time"

	"stats-service/internal/events/core/domain"
	"stats-service/internal/events/core/ports"
	statsports "stats-service/internal/stats/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// Default histogram buckets for store latency (in seconds).
var defaultBuckets = []float64{
	.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10,
}

// EventStore is what the service needs from a backend: both sides of the log.
type EventStore interface {
	ports.EventRepositoryPort
	statsports.EventReaderPort
}

type storeMetrics struct {
	opDuration     *prometheus.HistogramVec
	opErrors       *prometheus.CounterVec
	eventsAppended *prometheus.CounterVec
}

// InstrumentedStore decorates an EventStore. It changes no behavior.
type InstrumentedStore struct {
	next    EventStore
	metrics *storeMetrics
}

var _ EventStore = (*InstrumentedStore)(nil)

func NewInstrumentedStore(next EventStore, reg prometheus.Registerer) *InstrumentedStore {
	m := &storeMetrics{
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stats_store_operation_duration_seconds",
			Help:    "Event store operation latency in seconds",
			Buckets: defaultBuckets,
		}, []string{"operation"}),

		opErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stats_store_operation_errors_total",
			Help: "Total number of failed event store operations",
		}, []string{"operation"}),

		eventsAppended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stats_events_appended_total",
			Help: "Total number of new events appended to the log",
		}, []string{"operation"}),
	}

	reg.MustRegister(m.opDuration, m.opErrors, m.eventsAppended)

	return &InstrumentedStore{next: next, metrics: m}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	s.metrics.opDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.opErrors.WithLabelValues(op).Inc()
	}
}

func (s *InstrumentedStore) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	const op = "insert_event"
	start := time.Now()
	created, err := s.next.InsertEvent(ctx, e)
	s.observe(op, start, err)
	if created {
		s.metrics.eventsAppended.WithLabelValues(op).Inc()
	}
	return created, err
}

func (s *InstrumentedStore) InsertEvents(ctx context.Context, events []*domain.Event) (int, error) {
	const op = "insert_events"
	start := time.Now()
	created, err := s.next.InsertEvents(ctx, events)
	s.observe(op, start, err)
	if created > 0 {
		s.metrics.eventsAppended.WithLabelValues(op).Add(float64(created))
	}
	return created, err
}

func (s *InstrumentedStore) FetchEvents(ctx context.Context, statisticKey string, asOf *time.Time) ([]domain.Event, error) {
	start := time.Now()
	events, err := s.next.FetchEvents(ctx, statisticKey, asOf)
	s.observe("fetch_events", start, err)
	return events, err
}

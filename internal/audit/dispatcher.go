package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

type Event struct {
	Action   string         `json:"action"`
	Entity   string         `json:"entity"`
	EntityID uuid.UUID      `json:"entity_id"`
	Metadata map[string]any `json:"metadata,omitempty"`
	At       time.Time      `json:"at"`
}

// Sink receives every dispatched event.
type Sink interface {
	Record(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	done  chan struct{}
	once  sync.Once
}

func NewDispatcher(size int, sinks ...Sink) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Record(ctx, ev); err != nil {
				log.Error().Err(err).
					Str("action", ev.Action).
					Str("entity_id", ev.EntityID.String()).
					Msg("audit sink failed")
			}
			cancel()
		}
	}
}

// Dispatch never blocks the request: when the queue is full the event is
// dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	select {
	case d.queue <- ev:
	default:
		metrics.AuditEventsDropped.Inc()
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queued ones to be
// recorded, or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.once.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

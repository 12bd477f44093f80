package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sender delivers one event over one channel (telegram relay, email).
type Sender interface {
	Name() string
	Send(ctx context.Context, ev Event) error
}

// Recorder is told about every successful delivery, keyed by the
// sender's channel name. Failed deliveries are only logged.
type Recorder interface {
	Delivered(ctx context.Context, channel string, ev Event)
}

// Dispatcher fans events out to its senders from a background worker.
// Dispatch never blocks the request path: when the queue is full the
// event is dropped and logged.
type Dispatcher struct {
	senders  []Sender
	recorder Recorder
	queue    chan Event
	logger   zerolog.Logger
}

func NewDispatcher(logger zerolog.Logger, recorder Recorder, senders ...Sender) *Dispatcher {
	d := &Dispatcher{
		senders:  senders,
		recorder: recorder,
		queue:    make(chan Event, 100),
		logger:   logger,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		for _, s := range d.senders {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			if err := s.Send(ctx, ev); err != nil {
				d.logger.Error().
					Err(err).
					Str("sender", s.Name()).
					Str("event", ev.Type).
					Str("event_id", ev.ID).
					Msg("notification delivery failed")
			} else if d.recorder != nil {
				d.recorder.Delivered(ctx, s.Name(), ev)
			}
			cancel()
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn().
			Str("event", ev.Type).
			Msg("notification queue full, dropping event")
	}
}

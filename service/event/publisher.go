package event

import (
	"context"

	"github.com/barline/barline/service/messaging"
)

// Publisher pushes dispatcher events onto a messaging queue.
type Publisher struct {
	queue messaging.Queue[Event]
}

// NewPublisher returns a publisher backed by the supplied queue.
func NewPublisher(queue messaging.Queue[Event]) *Publisher {
	return &Publisher{queue: queue}
}

// Publish adds the event to the queue.
func (p *Publisher) Publish(ctx context.Context, event *Event) error {
	return p.queue.Publish(ctx, event)
}

// TryPublish publishes without ever blocking the caller: when the
// backing queue is saturated (or does not support non-blocking sends)
// the event is dropped. It reports whether the event was accepted.
func (p *Publisher) TryPublish(ctx context.Context, event *Event) bool {
	if q, ok := p.queue.(messaging.TryPublisher[Event]); ok {
		return q.TryPublish(ctx, event)
	}
	return false
}

// Consume retrieves and acknowledges a single event.
func (p *Publisher) Consume(ctx context.Context) (*Event, error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

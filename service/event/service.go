package event

import (
	"github.com/barline/barline/service/messaging/memory"
)

// Service owns the event bus the dispatcher publishes to. Observers are
// attached with SetListener; the bus is observe-only and never feeds
// back into dispatch decisions.
type Service struct {
	queue     *memory.Queue[Event]
	publisher *Publisher
	listener  *Listener
}

// Option customises the event service.
type Option func(*Service)

// WithQueueConfig sets the configuration of the backing memory queue.
func WithQueueConfig(config memory.Config) Option {
	return func(s *Service) {
		s.queue = memory.NewQueue[Event](config)
	}
}

// New creates an event service backed by an in-memory queue.
func New(opts ...Option) *Service {
	ret := &Service{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.queue == nil {
		ret.queue = memory.NewQueue[Event](memory.DefaultConfig())
	}
	ret.publisher = NewPublisher(ret.queue)
	return ret
}

// Publisher returns the publisher the dispatcher emits through.
func (s *Service) Publisher() *Publisher {
	return s.publisher
}

// SetListener replaces the current listener with one invoking handler
// for every published event.
func (s *Service) SetListener(handler func(*Event)) {
	if s.listener != nil {
		s.listener.Stop()
	}
	s.listener = NewListener(s.publisher, handler)
	s.listener.Start()
}

// Close stops the active listener when present.
func (s *Service) Close() {
	if s.listener != nil {
		s.listener.Stop()
	}
}

package dispatcher

import (
	"github.com/barline/barline/service/event"
	"github.com/barline/barline/service/menu"
)

// Option customises a dispatcher.
type Option func(*Service)

// WithMenu sets the service-cost table; the dispatcher keeps its own
// copy so the table stays immutable for the process lifetime.
func WithMenu(m menu.Menu) Option {
	return func(s *Service) {
		s.menu = m.Clone()
	}
}

// WithPublisher wires the event bus publisher.
func WithPublisher(publisher *event.Publisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithNotifier sets the sink for user-facing notices.
func WithNotifier(notify func(string)) Option {
	return func(s *Service) {
		s.notify = notify
	}
}

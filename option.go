package barline

import (
	"io"

	"github.com/barline/barline/service/event"
	"github.com/barline/barline/service/menu"
	"github.com/barline/barline/service/meta"
)

// Option customises the Service façade.
type Option func(s *Service)

// WithConfig sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithMenu sets the service-cost table, taking precedence over the
// configuration menu.
func WithMenu(m menu.Menu) Option {
	return func(s *Service) {
		s.menu = m.Clone()
	}
}

// WithMetaService sets the asset loader.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}

// WithEventService sets the event bus service.
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.eventService = service
	}
}

// WithNotices sets the writer user-facing notices are emitted to.
func WithNotices(out io.Writer) Option {
	return func(s *Service) {
		s.notices = out
	}
}

// WithOutput sets the writer session log lines are forwarded to.
func WithOutput(out io.Writer) Option {
	return func(s *Service) {
		s.output = out
	}
}

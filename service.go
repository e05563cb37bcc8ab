package barline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/barline/barline/runtime/dispatcher"
	"github.com/barline/barline/service/event"
	"github.com/barline/barline/service/menu"
	"github.com/barline/barline/service/messaging/memory"
	"github.com/barline/barline/service/meta"
	"github.com/barline/barline/service/session"
	"github.com/barline/barline/tracing"
)

const (
	serviceName    = "barline"
	serviceVersion = "0.1.0"
)

// Service is the engine façade: it wires the menu, the event bus and
// the dispatcher, and hands out sessions for line-oriented drivers.
type Service struct {
	config       *Config
	menu         menu.Menu
	metaService  *meta.Service
	eventService *event.Service
	dispatcher   *dispatcher.Service
	notices      io.Writer
	output       io.Writer
}

// New creates a Service with the supplied options.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	if s.config.Tracing.Enabled {
		_ = tracing.Init(serviceName, serviceVersion, s.config.Tracing.OutputFile)
	}
	s.dispatcher = dispatcher.New(
		dispatcher.WithMenu(s.menu),
		dispatcher.WithPublisher(s.eventService.Publisher()),
		dispatcher.WithNotifier(func(message string) {
			fmt.Fprintln(s.notices, message)
		}),
	)
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.metaService == nil {
		s.metaService = meta.New(nil, "")
	}
	if s.menu == nil {
		if len(s.config.Menu) > 0 {
			s.menu = menu.Menu(s.config.Menu).Clone()
		} else {
			s.menu = menu.Default()
		}
	}
	if s.eventService == nil {
		queueConfig := memory.DefaultConfig()
		if s.config.Events.QueueBuffer > 0 {
			queueConfig.Buffer = s.config.Events.QueueBuffer
		}
		s.eventService = event.New(event.WithQueueConfig(queueConfig))
	}
	if s.notices == nil {
		s.notices = os.Stdout
	}
	if s.output == nil {
		s.output = os.Stdout
	}
}

// Dispatcher returns the round-robin dispatch engine.
func (s *Service) Dispatcher() *dispatcher.Service {
	return s.dispatcher
}

// Events returns the event bus service.
func (s *Service) Events() *event.Service {
	return s.eventService
}

// Session returns a line-oriented driver bound to the dispatcher.
func (s *Service) Session(options ...session.Option) *session.Service {
	base := []session.Option{
		session.WithOutput(s.output),
		session.WithMetaService(s.metaService),
	}
	return session.New(s.dispatcher, append(base, options...)...)
}

// Close releases background resources such as event listeners.
func (s *Service) Close() {
	if s.eventService != nil {
		s.eventService.Close()
	}
}

// NewFromConfigURL loads a YAML configuration from the supplied URL,
// validates it and creates a Service.
func NewFromConfigURL(ctx context.Context, URL string, options ...Option) (*Service, error) {
	metaService := meta.New(nil, "")
	config := DefaultConfig()
	if err := metaService.Load(ctx, URL, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config at %s: %w", URL, err)
	}
	base := []Option{WithConfig(config), WithMetaService(metaService)}
	return New(append(base, options...)...), nil
}

package barline

import (
	"fmt"

	"github.com/barline/barline/service/menu"
)

// Config is a serialisable representation of the engine configuration.
// It can be populated from YAML or JSON; the zero value is useful – all
// nested fields inherit their package defaults.
type Config struct {
	// Menu overrides the built-in service-cost table when non-empty.
	Menu    map[string]int `json:"menu,omitempty" yaml:"menu,omitempty"`
	Events  EventsConfig   `json:"events" yaml:"events"`
	Tracing TracingConfig  `json:"tracing" yaml:"tracing"`
}

// EventsConfig controls the event bus.
type EventsConfig struct {
	QueueBuffer int `json:"queueBuffer" yaml:"queueBuffer"`
}

// TracingConfig controls OpenTelemetry initialisation.
type TracingConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Events: EventsConfig{QueueBuffer: 100},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Events.QueueBuffer < 0 {
		return fmt.Errorf("events.queueBuffer must not be negative")
	}
	if len(c.Menu) > 0 {
		if err := menu.Menu(c.Menu).Validate(); err != nil {
			return err
		}
	}
	return nil
}

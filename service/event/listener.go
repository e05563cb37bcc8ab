package event

import (
	"context"
	"errors"
	"log"
)

// Listener consumes events from a publisher and hands each one to the
// supplied handler on a dedicated goroutine.
type Listener struct {
	publisher *Publisher
	handler   func(*Event)
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewListener returns a stopped listener; call Start to begin consuming.
func NewListener(publisher *Publisher, handler func(*Event)) *Listener {
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener{
		publisher: publisher,
		handler:   handler,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Stop terminates the consuming goroutine.
func (l *Listener) Stop() {
	l.cancel()
}

// Start launches the consuming goroutine.
func (l *Listener) Start() {
	go func() {
		for {
			event, err := l.publisher.Consume(l.ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Printf("error consuming event: %v", err)
				continue
			}
			if event != nil {
				l.handler(event)
			}
		}
	}()
}

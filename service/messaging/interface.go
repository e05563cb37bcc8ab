package messaging

import "context"

// Queue is an abstract message bus for any payload type. The dispatcher
// publishes its events through this interface so observers can be wired
// without touching the engine.
type Queue[T any] interface {
	// Publish adds a new message with the payload to the queue.
	Publish(ctx context.Context, t *T) error

	// Consume retrieves a single message from the queue.
	Consume(ctx context.Context) (Message[T], error)
}

// TryPublisher is implemented by queues that support a non-blocking
// publish. Callers that must never stall (observe-only producers) probe
// for this capability and drop the payload when the queue cannot accept
// it immediately.
type TryPublisher[T any] interface {
	// TryPublish adds the payload only when the queue can accept it
	// without blocking; it reports whether the message was accepted.
	TryPublish(ctx context.Context, t *T) bool
}

// Message represents a message retrieved from a queue.
type Message[T any] interface {
	// T returns the payload of this message.
	T() *T

	// Ack acknowledges successful processing of this message.
	Ack() error

	// Nack indicates failure in processing this message.
	Nack(err error) error
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    string
	Count int
}

func TestQueue(t *testing.T) {
	config := DefaultConfig()
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[payload](config)

	ctx := context.Background()
	item := payload{ID: "test-1", Count: 1}

	err := queue.Publish(ctx, &item)
	require.NoError(t, err)
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, item, *message.T())

	require.NoError(t, message.Ack())
	// Double ack has to fail.
	assert.Error(t, message.Ack())
}

func TestQueueRetries(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 1
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[payload](config)

	ctx := context.Background()
	item := payload{ID: "retry"}
	require.NoError(t, queue.Publish(ctx, &item))

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	require.NoError(t, message.Nack(nil))

	time.Sleep(30 * time.Millisecond)
	message, err = queue.Consume(ctx)
	require.NoError(t, err)
	require.NoError(t, message.Nack(nil))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, 1, queue.DLQSize())
}

func TestQueueTryPublish(t *testing.T) {
	config := DefaultConfig()
	config.Buffer = 1
	queue := NewQueue[payload](config)

	ctx := context.Background()
	first := payload{ID: "first"}
	assert.True(t, queue.TryPublish(ctx, &first))

	// A full buffer rejects immediately instead of blocking.
	second := payload{ID: "second"}
	assert.False(t, queue.TryPublish(ctx, &second))
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", message.T().ID)
	assert.True(t, queue.TryPublish(ctx, &second))
}

func TestQueueContextCancellation(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := queue.Consume(ctx)
	assert.Error(t, err)

	// The queue stays usable after a cancelled consume.
	item := payload{ID: "after"}
	require.NoError(t, queue.Publish(context.Background(), &item))
	message, err := queue.Consume(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, message)
}

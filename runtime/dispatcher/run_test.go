package dispatcher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreate(t *testing.T, s *Service, id string, capacity int) {
	t.Helper()
	_, err := s.CreateQueue(context.Background(), id, capacity)
	require.NoError(t, err)
}

func TestRun_NoQueues(t *testing.T) {
	s := New()
	assert.Nil(t, s.Run(context.Background(), 1))
	assert.Nil(t, s.RunTurns(context.Background(), 1, 1))
}

func TestRun_FinishSingleTask(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustCreate(t, s, "A", 2)
	s.Admit(ctx, "A", "tea")

	logs := s.Run(ctx, 1)
	assert.Equal(t, []string{
		"time=0 event=run queue=A",
		"time=1 event=finish queue=A id=A-001",
		"display time=1 next=A",
		menuLine,
		"display A [0/2] -> []",
	}, logs)
	assert.Equal(t, 1, s.Time())
}

func TestRunTurns_PartialWork(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustCreate(t, s, "A", 2)
	s.Admit(ctx, "A", "latte")

	logs := s.RunTurns(ctx, 1, 1)
	assert.Equal(t, []string{
		"time=0 event=run queue=A",
		"time=1 event=work queue=A id=A-001 remaining=2",
		"display time=1 next=A",
		menuLine,
		"display A [1/2] -> [A-001:2]",
	}, logs)
}

func TestRunTurns_SkipAndEmptyAreZeroTime(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustCreate(t, s, "A", 1)
	mustCreate(t, s, "B", 1)
	s.RequestSkip(ctx, "B")

	logs := s.RunTurns(ctx, 1, 2)
	assert.Equal(t, []string{
		"time=0 event=run queue=A",
		"display time=0 next=A",
		menuLine,
		"display A [0/1] -> []",
		"display B [0/1] skip -> []",
		"time=0 event=run queue=B",
		"display time=0 next=B",
		menuLine,
		"display A [0/1] -> []",
		"display B [0/1] -> []",
	}, logs)
	assert.Equal(t, 0, s.Time())
}

func TestRunTurns_InvalidSteps(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustCreate(t, s, "A", 1)
	mustCreate(t, s, "B", 1)
	s.Admit(ctx, "A", "tea")
	before := s.Snapshot()

	for _, steps := range []int{0, -1, 3} {
		logs := s.RunTurns(ctx, 1, steps)
		assert.Equal(t, []string{"time=0 event=error reason=invalid_steps"}, logs)
	}
	// No turn ran, nothing moved.
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 0, s.Time())
}

func TestRun_SkipConsumedOnce(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustCreate(t, s, "A", 2)
	// Latching twice before consumption equals latching once.
	s.RequestSkip(ctx, "A")
	s.RequestSkip(ctx, "A")
	s.Admit(ctx, "A", "tea")

	logs := s.Run(ctx, 1)
	runEvents := 0
	for _, entry := range logs {
		if strings.Contains(entry, "event=run") {
			runEvents++
		}
	}
	// Turn one consumes the skip, turn two finishes the task.
	assert.Equal(t, 2, runEvents)
	assert.Contains(t, logs, "time=1 event=finish queue=A id=A-001")
	assert.Equal(t, 1, s.Time())
}

func TestRun_RoundRobinSharedClock(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustCreate(t, s, "A", 2)
	mustCreate(t, s, "B", 2)
	s.Admit(ctx, "A", "latte")
	s.Admit(ctx, "B", "tea")

	logs := s.Run(ctx, 2)
	var events []string
	for _, entry := range logs {
		if !strings.HasPrefix(entry, "display") {
			events = append(events, entry)
		}
	}
	assert.Equal(t, []string{
		"time=0 event=run queue=A",
		"time=2 event=work queue=A id=A-001 remaining=1",
		"time=2 event=run queue=B",
		"time=3 event=finish queue=B id=B-001",
		"time=3 event=run queue=A",
		"time=4 event=finish queue=A id=A-001",
	}, events)
	assert.Equal(t, 4, s.Time())
}

func TestRun_QuantumSufficiency(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustCreate(t, s, "A", 2)
	s.Admit(ctx, "A", "mocha")
	s.Admit(ctx, "A", "tea")

	// A quantum covering every burst finishes each task the first time
	// it is serviced; no work events appear.
	logs := s.Run(ctx, 10)
	for _, entry := range logs {
		assert.NotContains(t, entry, "event=work")
	}
	assert.Contains(t, logs, "time=4 event=finish queue=A id=A-001")
	assert.Contains(t, logs, "time=5 event=finish queue=A id=A-002")
}

func TestRun_OrderStability(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, id := range []string{"C", "A", "B"} {
		mustCreate(t, s, id, 1)
	}
	s.Admit(ctx, "B", "tea")

	logs := s.RunTurns(ctx, 1, 3)
	var visited []string
	for _, entry := range logs {
		if strings.HasPrefix(entry, "time=") && strings.Contains(entry, "event=run") {
			visited = append(visited, entry[strings.LastIndex(entry, "=")+1:])
		}
	}
	// Visiting order is creation order, not lexical order.
	assert.Equal(t, []string{"C", "A", "B"}, visited)
}

func TestRun_CapacityInvariant(t *testing.T) {
	ctx := context.Background()
	s := New()
	mustCreate(t, s, "A", 2)
	s.Admit(ctx, "A", "mocha")
	s.Admit(ctx, "A", "latte")

	logs := s.Run(ctx, 1)
	for _, entry := range logs {
		// Requeued tasks never push occupancy past capacity.
		assert.NotContains(t, entry, "[3/2]")
	}
	assert.Contains(t, logs[len(logs)-1], "display A [0/2] -> []")
}

package dispatcher

import (
	"context"

	"github.com/barline/barline/service/event"
)

// Run services queues until quiescence: every queue drained and every
// skip flag consumed. A queue set that never drains loops by
// construction since skip flags cannot be latched mid-run.
func (s *Service) Run(ctx context.Context, quantum int) []string {
	return s.run(ctx, quantum, 0, false)
}

// RunTurns services exactly steps turns regardless of queue state.
// steps must be within [1, number of queues]; a violation emits a
// single error event and mutates nothing.
func (s *Service) RunTurns(ctx context.Context, quantum, steps int) []string {
	return s.run(ctx, quantum, steps, true)
}

func (s *Service) run(ctx context.Context, quantum, steps int, bounded bool) []string {
	if len(s.order) == 0 {
		return nil
	}
	if bounded && (steps < 1 || steps > len(s.order)) {
		return s.emit(ctx, nil, &event.Event{Time: s.clock.Now(), Kind: event.KindError, Reason: event.ReasonInvalidSteps})
	}
	var logs []string
	for turns := 0; ; {
		logs = s.turn(ctx, logs, quantum)
		turns++
		if bounded && turns >= steps {
			break
		}
		if !bounded && s.quiescent() {
			break
		}
	}
	return logs
}

// turn visits the queue under the cursor: emits the run event, consumes
// a latched skip or services the head task, appends the state snapshot
// and finally advances the cursor.
func (s *Service) turn(ctx context.Context, logs []string, quantum int) []string {
	s.cursor %= len(s.order)
	q := s.queues[s.order[s.cursor]]
	logs = s.emit(ctx, logs, &event.Event{Time: s.clock.Now(), Kind: event.KindRun, Queue: q.id})

	switch {
	case q.skip:
		// Zero-time transition; the latch is consumed exactly once.
		q.skip = false
	case q.ring.Len() == 0:
		// Zero-time transition.
	default:
		front, _ := q.ring.Peek()
		work := min(quantum, front.Remaining)
		if work < 0 {
			work = 0
		}
		front.Remaining -= work
		s.clock.Advance(work)
		if front.Done() {
			q.ring.Dequeue()
			logs = s.emit(ctx, logs, &event.Event{Time: s.clock.Now(), Kind: event.KindFinish, Queue: q.id, Task: front.ID})
		} else {
			task, _ := q.ring.Dequeue()
			q.ring.Enqueue(task)
			logs = s.emit(ctx, logs, &event.Event{Time: s.clock.Now(), Kind: event.KindWork, Queue: q.id, Task: task.ID, Remaining: task.Remaining})
		}
	}

	logs = append(logs, s.Snapshot()...)
	s.cursor = (s.cursor + 1) % len(s.order)
	return logs
}

// quiescent reports whether every queue is empty and every skip flag
// clear.
func (s *Service) quiescent() bool {
	for _, id := range s.order {
		q := s.queues[id]
		if q.skip || q.ring.Len() > 0 {
			return false
		}
	}
	return true
}

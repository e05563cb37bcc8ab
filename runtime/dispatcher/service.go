package dispatcher

import (
	"context"
	"fmt"

	"github.com/barline/barline/internal/clock"
	"github.com/barline/barline/internal/idgen"
	"github.com/barline/barline/model"
	"github.com/barline/barline/queue"
	"github.com/barline/barline/service/event"
	"github.com/barline/barline/service/menu"
)

// User-facing notices. Only unknown-item and full-queue admissions
// produce one; an unknown queue id is rejected silently.
const (
	noticeUnknownItem = "Sorry, we don't serve that."
	noticeFull        = "Sorry, we're at capacity."
)

// line couples the ring buffer with its per-queue dispatch state so the
// skip flag cannot drift apart from the queue set.
type line struct {
	id   string
	ring *queue.Bounded[*model.Task]
	skip bool
}

// Service owns the order lines and runs the round-robin dispatch loop.
// Operations must not be called concurrently.
type Service struct {
	clock     *clock.Logical
	menu      menu.Menu
	queues    map[string]*line
	order     []string
	cursor    int
	seq       *idgen.Sequence
	publisher *event.Publisher
	notify    func(string)
}

// New creates a dispatcher with an empty queue set and the clock at
// zero.
func New(options ...Option) *Service {
	ret := &Service{
		clock:  clock.New(),
		queues: make(map[string]*line),
		seq:    idgen.NewSequence(),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.menu == nil {
		ret.menu = menu.Default()
	}
	if ret.notify == nil {
		ret.notify = func(string) {}
	}
	return ret
}

// Time returns the current logical time.
func (s *Service) Time() int {
	return s.clock.Now()
}

// Menu returns a copy of the service-cost table.
func (s *Service) Menu() menu.Menu {
	return s.menu.Clone()
}

// emit renders the event into the log and, when a publisher is wired,
// forwards it to the event bus. The bus is observe-only: the publish
// never blocks, and an event dropped on a saturated bus never affects
// dispatch.
func (s *Service) emit(ctx context.Context, logs []string, e *event.Event) []string {
	if s.publisher != nil {
		_ = s.publisher.TryPublish(ctx, e)
	}
	return append(logs, e.LogLine())
}

// CreateQueue registers a new empty line and appends it to the
// round-robin order. A non-positive capacity or duplicate id is a
// caller defect reported as an error with no state change and no event.
func (s *Service) CreateQueue(ctx context.Context, id string, capacity int) ([]string, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("queue %s: capacity must be positive, had %d", id, capacity)
	}
	if _, ok := s.queues[id]; ok {
		return nil, fmt.Errorf("queue %s already exists", id)
	}
	s.queues[id] = &line{id: id, ring: queue.New[*model.Task](capacity)}
	s.order = append(s.order, id)
	s.seq.Register(id)
	return s.emit(ctx, nil, &event.Event{Time: s.clock.Now(), Kind: event.KindCreate, Queue: id}), nil
}

// Admit creates a task for the requested item and enqueues it. The
// three rejection paths (unknown item, unknown queue, full) are checked
// in that order; each leaves every counter, queue and the clock
// untouched. Admission never advances the clock.
func (s *Service) Admit(ctx context.Context, queueID, item string) []string {
	cost, ok := s.menu.Cost(item)
	if !ok {
		s.notify(noticeUnknownItem)
		return s.emit(ctx, nil, &event.Event{Time: s.clock.Now(), Kind: event.KindReject, Queue: queueID, Reason: event.ReasonUnknownItem})
	}
	q, ok := s.queues[queueID]
	if !ok {
		return s.emit(ctx, nil, &event.Event{Time: s.clock.Now(), Kind: event.KindReject, Queue: queueID, Reason: event.ReasonUnknownQueue})
	}
	if q.ring.Full() {
		s.notify(noticeFull)
		return s.emit(ctx, nil, &event.Event{Time: s.clock.Now(), Kind: event.KindReject, Queue: queueID, Reason: event.ReasonFull})
	}
	task := model.NewTask(s.seq.Next(queueID), cost)
	q.ring.Enqueue(task)
	return s.emit(ctx, nil, &event.Event{Time: s.clock.Now(), Kind: event.KindEnqueue, Queue: queueID, Task: task.ID, Remaining: task.Remaining})
}

// RequestSkip latches the skip flag of the queue so its next turn
// performs no work. The skip event is emitted even for an unknown queue
// id, in which case the call is otherwise a no-op. Latching twice
// before consumption equals latching once.
func (s *Service) RequestSkip(ctx context.Context, queueID string) []string {
	logs := s.emit(ctx, nil, &event.Event{Time: s.clock.Now(), Kind: event.KindSkip, Queue: queueID})
	if q, ok := s.queues[queueID]; ok {
		q.skip = true
	}
	return logs
}

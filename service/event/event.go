package event

import (
	"fmt"
	"strings"
)

// Kind identifies a dispatcher occurrence.
type Kind string

const (
	KindCreate  Kind = "create"
	KindEnqueue Kind = "enqueue"
	KindReject  Kind = "reject"
	KindSkip    Kind = "skip"
	KindRun     Kind = "run"
	KindWork    Kind = "work"
	KindFinish  Kind = "finish"
	KindError   Kind = "error"
)

// Reason qualifies reject and error events.
type Reason string

const (
	ReasonUnknownItem  Reason = "unknown_item"
	ReasonUnknownQueue Reason = "unknown_queue"
	ReasonFull         Reason = "full"
	ReasonInvalidSteps Reason = "invalid_steps"
)

// Event is a single dispatcher occurrence stamped with the logical time
// at which it happened.
type Event struct {
	Time      int
	Kind      Kind
	Queue     string
	Task      string
	Remaining int
	Reason    Reason
}

// LogLine renders the event in its wire form: space-separated key=value
// tokens with a fixed field order per kind.
func (e *Event) LogLine() string {
	var b strings.Builder
	fmt.Fprintf(&b, "time=%d event=%s", e.Time, e.Kind)
	if e.Queue != "" {
		fmt.Fprintf(&b, " queue=%s", e.Queue)
	}
	switch e.Kind {
	case KindEnqueue:
		fmt.Fprintf(&b, " task=%s remaining=%d", e.Task, e.Remaining)
	case KindWork:
		fmt.Fprintf(&b, " id=%s remaining=%d", e.Task, e.Remaining)
	case KindFinish:
		fmt.Fprintf(&b, " id=%s", e.Task)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, " reason=%s", e.Reason)
	}
	return b.String()
}

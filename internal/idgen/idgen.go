package idgen

import "fmt"

// Format renders a task identifier from its queue and sequence number.
// It is a variable so tests can stub it.
var Format = func(queueID string, seq int) string {
	return fmt.Sprintf("%s-%03d", queueID, seq)
}

// Sequence issues strictly increasing, queue-scoped task identifiers.
type Sequence struct {
	next map[string]int
}

// NewSequence returns an empty identifier sequence.
func NewSequence() *Sequence {
	return &Sequence{next: make(map[string]int)}
}

// Register initialises the counter for a queue when not yet present.
func (s *Sequence) Register(queueID string) {
	if _, ok := s.next[queueID]; !ok {
		s.next[queueID] = 0
	}
}

// Next increments the counter for the queue and returns the rendered
// identifier.
func (s *Sequence) Next(queueID string) string {
	s.next[queueID]++
	return Format(queueID, s.next[queueID])
}

package model

// Task is a single admitted order. Remaining holds the burst still to
// be serviced; the run loop is the only mutator and discards the task
// once it reaches zero.
type Task struct {
	ID        string
	Remaining int
}

// NewTask returns a task with the supplied identity and initial burst.
func NewTask(id string, burst int) *Task {
	return &Task{ID: id, Remaining: burst}
}

// Done reports whether the task has no work left.
func (t *Task) Done() bool {
	return t.Remaining == 0
}

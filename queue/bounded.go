package queue

import "iter"

// Bounded is a fixed-capacity FIFO backed by a circular buffer. The
// backing arena never grows; Enqueue reports failure once occupancy
// reaches capacity. Values are owned exclusively by the queue while
// enqueued.
type Bounded[T any] struct {
	items []T
	front int
	size  int
}

// New returns an empty queue with the supplied fixed capacity.
func New[T any](capacity int) *Bounded[T] {
	return &Bounded[T]{items: make([]T, capacity)}
}

// Enqueue appends value at the logical tail. It returns false without
// side effect when the queue is full.
func (q *Bounded[T]) Enqueue(value T) bool {
	if q.size == len(q.items) {
		return false
	}
	q.items[(q.front+q.size)%len(q.items)] = value
	q.size++
	return true
}

// Dequeue removes and returns the logical head, or false when empty.
func (q *Bounded[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	value := q.items[q.front]
	q.items[q.front] = zero
	q.front = (q.front + 1) % len(q.items)
	q.size--
	return value, true
}

// Peek returns the logical head without mutation, or false when empty.
func (q *Bounded[T]) Peek() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	return q.items[q.front], true
}

// Len returns the current occupancy.
func (q *Bounded[T]) Len() int {
	return q.size
}

// Cap returns the fixed capacity.
func (q *Bounded[T]) Cap() int {
	return len(q.items)
}

// Full reports whether occupancy reached capacity.
func (q *Bounded[T]) Full() bool {
	return q.size == len(q.items)
}

// Items returns a restartable head-to-tail iterator over the queued
// values. Iteration does not mutate the queue.
func (q *Bounded[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(q.items[(q.front+i)%len(q.items)]) {
				return
			}
		}
	}
}

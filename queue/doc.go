// Package queue provides the bounded circular FIFO used by the
// dispatcher for its order lines. It knows nothing about scheduling
// policy.
package queue

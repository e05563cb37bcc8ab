package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Next(t *testing.T) {
	seq := NewSequence()
	seq.Register("A")
	seq.Register("A") // re-registering must not reset the counter

	assert.Equal(t, "A-001", seq.Next("A"))
	assert.Equal(t, "A-002", seq.Next("A"))
	assert.Equal(t, "B-001", seq.Next("B"))
	assert.Equal(t, "A-003", seq.Next("A"))
}

package notice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	assert.Empty(t, q.Drain())

	q.Notify(Success, "saved")
	q.Notify(Error, "failed")
	assert.Len(t, q.Peek(), 2)

	got := q.Drain()
	assert.Equal(t, []Notice{{Level: Success, Message: "saved"}, {Level: Error, Message: "failed"}}, got)
	assert.Empty(t, q.Drain())
}

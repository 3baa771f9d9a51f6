// Package notice holds the transient notifications shown to a visitor.
package notice

import "sync"

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Info    Level = "info"
)

type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(level Level, message string)
}

// Queue collects notices until the next render drains them.
type Queue struct {
	mu    sync.Mutex
	items []Notice
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Notify(level Level, message string) {
	q.mu.Lock()
	q.items = append(q.items, Notice{Level: level, Message: message})
	q.mu.Unlock()
}

func (q *Queue) Drain() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	if out == nil {
		return []Notice{}
	}
	return out
}

// Peek returns pending notices without removing them.
func (q *Queue) Peek() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notice, len(q.items))
	copy(out, q.items)
	return out
}

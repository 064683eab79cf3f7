package events

import (
	"context"
	"sync"
)

// MemoryQueue is a Queue backed by an in-memory slice, used in local dev
// and tests where no SQS queue is configured.
type MemoryQueue struct {
	mu       sync.Mutex
	messages []string
}

// NewMemoryQueue creates an empty MemoryQueue.
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

// Send appends the message body to the in-memory buffer.
func (q *MemoryQueue) Send(ctx context.Context, body string) error {
	q.mu.Lock()
	q.messages = append(q.messages, body)
	q.mu.Unlock()
	return nil
}

// Messages returns a copy of everything sent so far.
func (q *MemoryQueue) Messages() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, len(q.messages))
	copy(out, q.messages)
	return out
}

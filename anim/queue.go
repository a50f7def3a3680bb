package anim

import (
	"context"
	"errors"
	"sync"
)

// ErrNoQueue is returned when the queue is looked up outside of the context that provides it.
var ErrNoQueue = errors.New("anim: event queue requested outside of a desk context")

// Pusher is the side of the queue a trigger sees.
type Pusher interface {
	Push(e *Event)
}

// Popper is the side of the queue the render loop sees.
type Popper interface {
	Pop() (*Event, bool)
}

// Queue is an unbounded FIFO of pending events.
type Queue struct {
	mu     sync.Mutex
	events []*Event
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	q := new(Queue)
	q.events = make([]*Event, 0, 8)
	return q
}

// Push appends an event to the tail.
func (q *Queue) Push(e *Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Pop removes and returns the head, or false when the queue is empty.
func (q *Queue) Pop() (*Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

type queueKey struct{}

// NewContext returns a copy of ctx that provides q.
func NewContext(ctx context.Context, q *Queue) context.Context {
	return context.WithValue(ctx, queueKey{}, q)
}

// FromContext returns the queue provided by ctx.
func FromContext(ctx context.Context) (*Queue, error) {
	q, ok := ctx.Value(queueKey{}).(*Queue)
	if !ok || q == nil {
		return nil, ErrNoQueue
	}
	return q, nil
}

// MustFromContext is like FromContext but panics when no queue is provided.
func MustFromContext(ctx context.Context) *Queue {
	q, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return q
}

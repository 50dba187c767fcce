package feedback

import "sync"

// Queue is an unbounded FIFO of write intents with a single consumer.
// Push never blocks, so a stalled host cannot hold up the caller.
type Queue struct {
	mu     sync.Mutex
	items  []WriteIntent
	closed bool
	ready  chan struct{}
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends an intent. It reports false once the queue is closed.
func (q *Queue) Push(in WriteIntent) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, in)
	q.mu.Unlock()
	q.signal()
	return true
}

// Pop blocks until an intent is available. It returns false when the queue
// is closed and empty.
func (q *Queue) Pop() (WriteIntent, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			in := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return in, true
		}
		if q.closed {
			q.mu.Unlock()
			return WriteIntent{}, false
		}
		q.mu.Unlock()
		<-q.ready
	}
}

// Close stops accepting intents; queued ones are still handed out by Pop.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

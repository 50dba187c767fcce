package feedback

import (
	"errors"
	"sync"

	"github.com/endpoint/summary-panel/internal/models"
)

var ErrInvalidFeedback = errors.New("feedback must be positive or negative")

// WriteIntent asks for value to be written to the ticket field key.
type WriteIntent struct {
	Key   string               `json:"key"`
	Value models.FeedbackValue `json:"value"`
}

// Controller turns feedback clicks into write intents. The baseline is the
// value the ticket held when the panel loaded and never changes: choosing it
// is always a no-op, and choosing the value most recently issued is
// suppressed. There is no way to clear feedback.
type Controller struct {
	key      string
	baseline models.FeedbackValue
	intents  *Queue

	mu     sync.Mutex
	issued models.FeedbackValue
	closed bool
}

func New(key string, baseline models.FeedbackValue, intents *Queue) *Controller {
	return &Controller{key: key, baseline: baseline, intents: intents, issued: baseline}
}

func (c *Controller) Key() string {
	return c.key
}

func (c *Controller) Baseline() models.FeedbackValue {
	return c.baseline
}

// SetFeedback emits at most one intent and returns without waiting for it to
// be written. It never blocks on the host.
func (c *Controller) SetFeedback(v models.FeedbackValue) error {
	if !v.Valid() {
		return ErrInvalidFeedback
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || v == c.baseline || v == c.issued {
		return nil
	}
	c.issued = v
	c.intents.Push(WriteIntent{Key: c.key, Value: v})
	return nil
}

// Close stops emitting intents and closes the command queue.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.intents.Close()
}

package feedback

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/endpoint/summary-panel/internal/host"
	"github.com/endpoint/summary-panel/internal/models"
)

// Delivery reports what happened to one intent once the host answered.
type Delivery struct {
	Intent WriteIntent
	Err    error
}

// Dispatcher writes intents to the host in the order they were issued.
// Failed writes are logged and published, never retried.
type Dispatcher struct {
	Client     host.Client
	Logger     zerolog.Logger
	Timeout    time.Duration
	Deliveries chan<- Delivery
}

// Run blocks until intents is closed and drained.
func (d Dispatcher) Run(intents *Queue) {
	for {
		intent, ok := intents.Pop()
		if !ok {
			return
		}
		d.deliver(intent)
	}
}

func (d Dispatcher) deliver(intent WriteIntent) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := d.Client.Set(ctx, intent.Key, string(intent.Value))
	if err != nil {
		d.Logger.Warn().Err(err).Str("key", intent.Key).Str("value", string(intent.Value)).Msg("feedback write failed")
	} else {
		d.Logger.Info().Str("key", intent.Key).Str("value", string(intent.Value)).Msg("feedback written")
	}
	if d.Deliveries != nil {
		select {
		case d.Deliveries <- Delivery{Intent: intent, Err: err}:
		default:
		}
	}
}

// Bind starts a dispatcher goroutine and returns a controller feeding it.
// Closing the controller stops the goroutine once pending intents are sent.
func Bind(d Dispatcher, key string, baseline models.FeedbackValue) *Controller {
	intents := NewQueue()
	go d.Run(intents)
	return New(key, baseline, intents)
}

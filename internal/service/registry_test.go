package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endpoint/summary-panel/internal/feedback"
	"github.com/endpoint/summary-panel/internal/host"
	"github.com/endpoint/summary-panel/internal/models"
)

func newTestSession(id string) *Session {
	return &Session{ID: id, controller: feedback.New("k", models.FeedbackNone, feedback.NewQueue())}
}

func TestRegistryEvictsOldest(t *testing.T) {
	r := NewRegistry(2)
	first := newTestSession("a")
	r.Add(first)
	r.Add(newTestSession("b"))
	r.Add(newTestSession("c"))

	assert.Equal(t, 2, r.Len())
	_, err := r.Get("a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, first.SetFeedback(models.FeedbackPositive))

	got, err := r.Get("c")
	require.NoError(t, err)
	assert.Equal(t, "c", got.ID)
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(0)
	r.Add(newTestSession("a"))

	require.NoError(t, r.Remove("a"))
	assert.ErrorIs(t, r.Remove("a"), ErrSessionNotFound)
	assert.Equal(t, 0, r.Len())
}

type stalledHost struct {
	*host.MockClient
	release chan struct{}
}

func (s stalledHost) Set(ctx context.Context, key string, value string) error {
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestRegistryNotHeldUpByStalledWrites(t *testing.T) {
	client := stalledHost{MockClient: &host.MockClient{}, release: make(chan struct{})}
	defer close(client.release)

	stuck := &Session{ID: "stuck", controller: feedback.Bind(feedback.Dispatcher{
		Client:  client,
		Logger:  zerolog.Nop(),
		Timeout: time.Minute,
	}, "k", models.FeedbackNone)}

	r := NewRegistry(1)
	r.Add(stuck)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 40; i++ {
			v := models.FeedbackPositive
			if i%2 == 1 {
				v = models.FeedbackNegative
			}
			_ = stuck.SetFeedback(v)
		}
		r.Add(newTestSession("next"))
		_ = r.Remove("next")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("registry blocked behind a stalled feedback write")
	}
	assert.Equal(t, 0, r.Len())
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/endpoint/summary-panel/internal/fault"
	"github.com/endpoint/summary-panel/internal/feedback"
	"github.com/endpoint/summary-panel/internal/host"
	"github.com/endpoint/summary-panel/internal/i18n"
	"github.com/endpoint/summary-panel/internal/models"
	"github.com/endpoint/summary-panel/internal/settings"
	"github.com/endpoint/summary-panel/internal/ticket"
	"github.com/endpoint/summary-panel/internal/view"
)

// Session is one initialized panel for one ticket.
type Session struct {
	ID        string                `json:"session_id"`
	TicketID  string                `json:"ticket_id"`
	Locale    string                `json:"locale"`
	FieldIDs  models.FieldIDMap     `json:"field_ids"`
	Snapshot  models.TicketSnapshot `json:"snapshot"`
	Display   view.Display          `json:"display"`
	Resize    view.ResizeRequest    `json:"resize"`
	Errors    []fault.FetchError    `json:"-"`
	CreatedAt time.Time             `json:"created_at"`

	controller *feedback.Controller
}

// SetFeedback is the callback the display's buttons are bound to.
func (s *Session) SetFeedback(v models.FeedbackValue) error {
	return s.controller.SetFeedback(v)
}

// Close stops the session's feedback dispatcher. Writes already issued are
// still delivered.
func (s *Session) Close() {
	s.controller.Close()
}

type PanelService struct {
	Logger        zerolog.Logger
	Sink          fault.Sink
	DefaultLocale string
	WriteTimeout  time.Duration
	Deliveries    chan<- feedback.Delivery
}

// Init runs the initialization pipeline against client. Host calls happen
// one after another; any failure is reported and replaced by empty values,
// so Init always returns a renderable session.
func (s *PanelService) Init(ctx context.Context, client host.Client, ticketID string) *Session {
	logger := s.Logger.With().Str("ticket_id", ticketID).Logger()
	rec := &fault.Recorder{}
	sink := fault.MultiSink{fault.LogSink{Logger: logger}, rec, s.Sink}

	locale := s.DefaultLocale
	user, err := client.CurrentUser(ctx)
	if err != nil {
		sink.Report(fault.FetchError{Stage: fault.StageCurrentUser, Err: err})
	} else if user.Locale != "" {
		locale = user.Locale
	}
	printer := i18n.Printer(locale)

	var raw map[string]string
	meta, err := client.Metadata(ctx)
	if err != nil {
		sink.Report(fault.FetchError{Stage: fault.StageMetadata, Err: err})
	} else {
		raw = meta.Settings
	}
	ids := settings.Resolve(raw)
	if missing := ids.Missing(); len(missing) > 0 {
		logger.Warn().Strs("fields", missing).Msg("field ids not configured")
	}

	snap := ticket.Fetcher{Client: client, Sink: sink}.Fetch(ctx, ids)

	controller := feedback.Bind(feedback.Dispatcher{
		Client:     client,
		Logger:     logger,
		Timeout:    s.WriteTimeout,
		Deliveries: s.Deliveries,
	}, host.CustomFieldKey(ids.AIFeedback), snap.AIFeedback)

	sess := &Session{
		ID:         uuid.NewString(),
		TicketID:   ticketID,
		Locale:     i18n.Match(locale).String(),
		FieldIDs:   ids,
		Snapshot:   snap,
		CreatedAt:  time.Now().UTC(),
		controller: controller,
	}
	sess.Display = view.Render(snap, sess.SetFeedback, printer)
	sess.Resize = view.Resize()

	if err := client.Resize(ctx, sess.Resize.MaxHeight); err != nil {
		sink.Report(fault.FetchError{Stage: fault.StageResize, Err: err})
	}
	sess.Errors = rec.Errors

	logger.Info().
		Str("session_id", sess.ID).
		Str("locale", sess.Locale).
		Int("errors", len(sess.Errors)).
		Msg("panel initialized")
	return sess
}

// Package fault carries initialization failures from the panel pipeline to
// whoever observes them. Failures never abort initialization; they are
// reported here and the pipeline continues with empty values.
package fault

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Stage names the host call that failed.
type Stage string

const (
	StageCurrentUser  Stage = "current_user"
	StageMetadata     Stage = "metadata"
	StageTicketFields Stage = "ticket_fields"
	StageResize       Stage = "resize"
)

// FetchError wraps a failed host call with the stage it happened in.
type FetchError struct {
	Stage Stage
	Err   error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("%s fetch failed: %v", e.Stage, e.Err)
}

func (e FetchError) Unwrap() error {
	return e.Err
}

// Sink receives failures. Report must not block.
type Sink interface {
	Report(err FetchError)
}

// LogSink logs each failure and swallows it.
type LogSink struct {
	Logger zerolog.Logger
}

func (s LogSink) Report(err FetchError) {
	s.Logger.Error().Err(err.Err).Str("stage", string(err.Stage)).Msg("an error is handled here")
}

// ChannelSink forwards failures to a channel, dropping them when it is full.
type ChannelSink chan FetchError

func (s ChannelSink) Report(err FetchError) {
	select {
	case s <- err:
	default:
	}
}

// Recorder keeps every failure of one initialization.
type Recorder struct {
	Errors []FetchError
}

func (r *Recorder) Report(err FetchError) {
	r.Errors = append(r.Errors, err)
}

// MultiSink fans a failure out to several sinks.
type MultiSink []Sink

func (m MultiSink) Report(err FetchError) {
	for _, s := range m {
		if s != nil {
			s.Report(err)
		}
	}
}

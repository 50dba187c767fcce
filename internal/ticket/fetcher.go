package ticket

import (
	"context"

	"github.com/spf13/cast"

	"github.com/endpoint/summary-panel/internal/fault"
	"github.com/endpoint/summary-panel/internal/host"
	"github.com/endpoint/summary-panel/internal/models"
)

// Keys returns the six lookup keys for one batched read, creation time first.
func Keys(ids models.FieldIDMap) []string {
	return []string{
		host.KeyCreatedAt,
		host.CustomFieldKey(ids.OneSentenceSummary),
		host.CustomFieldKey(ids.ClientSentiment),
		host.CustomFieldKey(ids.BulletPoints),
		host.CustomFieldKey(ids.ActionItems),
		host.CustomFieldKey(ids.AIFeedback),
	}
}

type Fetcher struct {
	Client host.Client
	Sink   fault.Sink
}

// Fetch issues exactly one Get for Keys(ids). It never fails: on error the
// failure goes to the sink and an all-empty snapshot is returned.
func (f Fetcher) Fetch(ctx context.Context, ids models.FieldIDMap) models.TicketSnapshot {
	values, err := f.Client.Get(ctx, Keys(ids))
	if err != nil {
		if f.Sink != nil {
			f.Sink.Report(fault.FetchError{Stage: fault.StageTicketFields, Err: err})
		}
		return models.TicketSnapshot{}
	}
	return Snapshot(ids, values)
}

// Snapshot builds a snapshot from a Get response; absent and null values
// become "".
func Snapshot(ids models.FieldIDMap, values map[string]any) models.TicketSnapshot {
	field := func(id string) string {
		return value(values, host.CustomFieldKey(id))
	}
	return models.TicketSnapshot{
		CreatedAt:          value(values, host.KeyCreatedAt),
		OneSentenceSummary: field(ids.OneSentenceSummary),
		ClientSentiment:    field(ids.ClientSentiment),
		BulletPoints:       field(ids.BulletPoints),
		ActionItems:        field(ids.ActionItems),
		AIFeedback:         models.FeedbackValue(field(ids.AIFeedback)),
	}
}

func value(values map[string]any, key string) string {
	v, ok := values[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

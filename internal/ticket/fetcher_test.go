package ticket

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endpoint/summary-panel/internal/fault"
	"github.com/endpoint/summary-panel/internal/host"
	"github.com/endpoint/summary-panel/internal/models"
)

var fullIDs = models.FieldIDMap{
	OneSentenceSummary: "51",
	ClientSentiment:    "52",
	BulletPoints:       "53",
	ActionItems:        "54",
	AIFeedback:         "55",
}

func TestKeysOrder(t *testing.T) {
	assert.Equal(t, []string{
		"ticket.createdAt",
		"ticket.customField:custom_field_51",
		"ticket.customField:custom_field_52",
		"ticket.customField:custom_field_53",
		"ticket.customField:custom_field_54",
		"ticket.customField:custom_field_55",
	}, Keys(fullIDs))
}

func TestKeysMissingIDsUseUndefined(t *testing.T) {
	keys := Keys(models.FieldIDMap{AIFeedback: "55"})
	require.Len(t, keys, 6)
	assert.Equal(t, "ticket.customField:custom_field_undefined", keys[1])
	assert.Equal(t, "ticket.customField:custom_field_55", keys[5])
}

func TestFetchSuccess(t *testing.T) {
	client := &host.MockClient{Fields: map[string]any{
		host.KeyCreatedAt:          "2024-05-01T10:00:00Z",
		host.CustomFieldKey("51"): "Customer cannot log in after the update.",
		host.CustomFieldKey("52"): "frustrated",
		host.CustomFieldKey("53"): "- login fails\n- update 4.2",
		host.CustomFieldKey("55"): "positive",
	}}
	rec := &fault.Recorder{}

	snap := Fetcher{Client: client, Sink: rec}.Fetch(context.Background(), fullIDs)

	assert.Equal(t, models.TicketSnapshot{
		CreatedAt:          "2024-05-01T10:00:00Z",
		OneSentenceSummary: "Customer cannot log in after the update.",
		ClientSentiment:    "frustrated",
		BulletPoints:       "- login fails\n- update 4.2",
		ActionItems:        "",
		AIFeedback:         models.FeedbackPositive,
	}, snap)
	assert.Empty(t, rec.Errors)
	assert.Len(t, client.GetCalls(), 1)
}

func TestFetchFailureDefaultsEverything(t *testing.T) {
	cause := errors.New("host unavailable")
	client := &host.MockClient{GetErr: cause}
	rec := &fault.Recorder{}

	snap := Fetcher{Client: client, Sink: rec}.Fetch(context.Background(), fullIDs)

	assert.Equal(t, models.TicketSnapshot{}, snap)
	require.Len(t, rec.Errors, 1)
	assert.Equal(t, fault.StageTicketFields, rec.Errors[0].Stage)
	assert.True(t, errors.Is(rec.Errors[0], cause))
	assert.Len(t, client.GetCalls(), 1)
}

func TestFetchEmptyResponse(t *testing.T) {
	snap := Fetcher{Client: &host.MockClient{}}.Fetch(context.Background(), fullIDs)
	assert.Equal(t, models.TicketSnapshot{}, snap)
}

func TestSnapshotCoercesValues(t *testing.T) {
	snap := Snapshot(fullIDs, map[string]any{
		host.KeyCreatedAt:          nil,
		host.CustomFieldKey("52"): 3,
		host.CustomFieldKey("54"): true,
	})
	assert.Equal(t, "", snap.CreatedAt)
	assert.Equal(t, "3", snap.ClientSentiment)
	assert.Equal(t, "true", snap.ActionItems)
}

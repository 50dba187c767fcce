package host

import (
	"context"
	"errors"
	"strings"

	"github.com/endpoint/summary-panel/internal/models"
)

const (
	KeyCreatedAt = "ticket.createdAt"

	CustomFieldPrefix = "ticket.customField:custom_field_"

	// undefinedID is what the platform receives when a field id was never
	// configured; it resolves to an absent value rather than an error.
	undefinedID = "undefined"
)

var ErrNotFound = errors.New("host: not found")

// Client is the capability surface the host platform exposes to the panel.
type Client interface {
	CurrentUser(ctx context.Context) (models.CurrentUser, error)
	Metadata(ctx context.Context) (models.Metadata, error)
	// Get reads several ticket properties in one round trip. Keys the host
	// cannot resolve are omitted or mapped to nil.
	Get(ctx context.Context, keys []string) (map[string]any, error)
	Set(ctx context.Context, key string, value string) error
	Resize(ctx context.Context, maxHeight int) error
}

// Factory returns a Client bound to a single ticket.
type Factory func(ticketID string) Client

func CustomFieldKey(fieldID string) string {
	if fieldID == "" {
		fieldID = undefinedID
	}
	return CustomFieldPrefix + fieldID
}

// ParseCustomFieldKey extracts the field id from a custom field key.
func ParseCustomFieldKey(key string) (string, bool) {
	id, ok := strings.CutPrefix(key, CustomFieldPrefix)
	if !ok || id == "" || id == undefinedID {
		return "", false
	}
	return id, true
}

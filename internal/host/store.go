package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/endpoint/summary-panel/internal/db"
	"github.com/endpoint/summary-panel/internal/models"
)

// StoreClient is a development host whose data lives in the Postgres store.
type StoreClient struct {
	Store    *db.Store
	UserID   string
	TicketID string
	Logger   zerolog.Logger
}

func NewStoreFactory(store *db.Store, userID string, logger zerolog.Logger) Factory {
	return func(ticketID string) Client {
		return &StoreClient{Store: store, UserID: userID, TicketID: ticketID, Logger: logger}
	}
}

func (s *StoreClient) CurrentUser(ctx context.Context) (models.CurrentUser, error) {
	locale, err := s.Store.UserLocale(ctx, s.UserID)
	if err != nil {
		return models.CurrentUser{}, notFound("current user", err)
	}
	return models.CurrentUser{Locale: locale}, nil
}

func (s *StoreClient) Metadata(ctx context.Context) (models.Metadata, error) {
	settings, err := s.Store.ListSettings(ctx)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("metadata: %w", err)
	}
	return models.Metadata{Settings: settings}, nil
}

func (s *StoreClient) Get(ctx context.Context, keys []string) (map[string]any, error) {
	createdAt, err := s.Store.TicketCreatedAt(ctx, s.TicketID)
	if err != nil {
		return nil, notFound("ticket "+s.TicketID, err)
	}

	var ids []string
	for _, k := range keys {
		if id, ok := ParseCustomFieldKey(k); ok {
			ids = append(ids, id)
		}
	}
	fields, err := s.Store.CustomFields(ctx, s.TicketID, ids)
	if err != nil {
		return nil, fmt.Errorf("ticket fields: %w", err)
	}

	out := map[string]any{}
	for _, k := range keys {
		if k == KeyCreatedAt {
			out[k] = createdAt.UTC().Format(time.RFC3339)
			continue
		}
		id, ok := ParseCustomFieldKey(k)
		if !ok {
			out[k] = nil
			continue
		}
		if v, ok := fields[id]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *StoreClient) Set(ctx context.Context, key string, value string) error {
	id, ok := ParseCustomFieldKey(key)
	if !ok {
		return fmt.Errorf("set %q: unsupported key", key)
	}
	return s.Store.SetCustomField(ctx, s.TicketID, id, value)
}

// Resize has no surface to act on in the development host.
func (s *StoreClient) Resize(ctx context.Context, maxHeight int) error {
	s.Logger.Debug().Str("ticket_id", s.TicketID).Int("max_height", maxHeight).Msg("resize requested")
	return nil
}

func notFound(what string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of *pgxpool.Pool the store needs.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Store backs the development host: app settings, users and ticket custom
// fields live in Postgres instead of the real platform.
type Store struct {
	Pool Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS host_users (
	id     TEXT PRIMARY KEY,
	locale TEXT NOT NULL DEFAULT 'en'
);
CREATE TABLE IF NOT EXISTS host_settings (
	label TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tickets (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS ticket_custom_fields (
	ticket_id  TEXT NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
	field_id   TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (ticket_id, field_id)
);`

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, schema)
	return err
}

func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UserLocale returns pgx.ErrNoRows when the user does not exist.
func (s *Store) UserLocale(ctx context.Context, userID string) (string, error) {
	var locale string
	err := s.Pool.QueryRow(ctx, `SELECT locale FROM host_users WHERE id = $1`, userID).Scan(&locale)
	return locale, err
}

func (s *Store) ListSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.Pool.Query(ctx, `SELECT label, value FROM host_settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var label, value string
		if err := rows.Scan(&label, &value); err != nil {
			return nil, err
		}
		out[label] = value
	}
	return out, rows.Err()
}

// ReplaceSettings swaps the whole settings table for the given map.
func (s *Store) ReplaceSettings(ctx context.Context, settings map[string]string) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM host_settings`); err != nil {
			return err
		}
		for label, value := range settings {
			if _, err := tx.Exec(ctx, `INSERT INTO host_settings (label, value) VALUES ($1, $2)`, label, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// TicketCreatedAt returns pgx.ErrNoRows when the ticket does not exist.
func (s *Store) TicketCreatedAt(ctx context.Context, ticketID string) (time.Time, error) {
	var createdAt time.Time
	err := s.Pool.QueryRow(ctx, `SELECT created_at FROM tickets WHERE id = $1`, ticketID).Scan(&createdAt)
	return createdAt, err
}

// CustomFields returns the stored values among fieldIDs; ids without a row
// are left out.
func (s *Store) CustomFields(ctx context.Context, ticketID string, fieldIDs []string) (map[string]string, error) {
	out := map[string]string{}
	if len(fieldIDs) == 0 {
		return out, nil
	}
	rows, err := s.Pool.Query(ctx, `SELECT field_id, value FROM ticket_custom_fields WHERE ticket_id = $1 AND field_id = ANY($2)`, ticketID, fieldIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, value string
		if err := rows.Scan(&id, &value); err != nil {
			return nil, err
		}
		out[id] = value
	}
	return out, rows.Err()
}

func (s *Store) SetCustomField(ctx context.Context, ticketID, fieldID, value string) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO ticket_custom_fields (ticket_id, field_id, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (ticket_id, field_id) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, ticketID, fieldID, value)
	return err
}

// UpsertTicket creates the ticket if needed and writes the given fields.
func (s *Store) UpsertTicket(ctx context.Context, ticketID string, createdAt time.Time, fields map[string]string) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO tickets (id, created_at) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET created_at = EXCLUDED.created_at
		`, ticketID, createdAt); err != nil {
			return err
		}
		for fieldID, value := range fields {
			if _, err := tx.Exec(ctx, `
				INSERT INTO ticket_custom_fields (ticket_id, field_id, value, updated_at)
				VALUES ($1, $2, $3, now())
				ON CONFLICT (ticket_id, field_id) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
			`, ticketID, fieldID, value); err != nil {
				return err
			}
		}
		return nil
	})
}

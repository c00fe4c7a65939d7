package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT,
		phone TEXT,
		service TEXT,
		message TEXT,
		lead_magnet TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT,
		phone TEXT,
		subject TEXT,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY,
		session_id TEXT NOT NULL,
		sender TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS chat_messages_session_idx ON chat_messages (session_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS course_subscriptions (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		course_type TEXT NOT NULL,
		current_day INTEGER NOT NULL DEFAULT 0 CHECK (current_day >= 0),
		subscription_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_email_sent TIMESTAMPTZ,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		claimed_until TIMESTAMPTZ
	)`,
	// One active enrollment per pair; completed rows allow re-enrollment.
	`CREATE UNIQUE INDEX IF NOT EXISTS course_subscriptions_active_uniq
		ON course_subscriptions (email, course_type) WHERE completed = FALSE`,
}

// Migrate creates missing tables. Safe to run on every boot.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}

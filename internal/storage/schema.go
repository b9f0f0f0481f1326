package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is valid for both PostgreSQL and SQLite.
// user_spending intentionally has no foreign key: orphaned records are allowed.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS user_info (
		user_id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		age INTEGER NOT NULL CHECK (age >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS user_spending (
		user_id BIGINT NOT NULL,
		money_spent NUMERIC NOT NULL CHECK (money_spent >= 0),
		year INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_spending_user_id ON user_spending (user_id)`,
	`CREATE TABLE IF NOT EXISTS high_spenders (
		user_id BIGINT PRIMARY KEY REFERENCES user_info (user_id),
		total_spending NUMERIC NOT NULL
	)`,
}

// Bootstrap creates missing tables. It is safe to run on every start.
func Bootstrap(ctx context.Context, db sqlx.ExecerContext) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

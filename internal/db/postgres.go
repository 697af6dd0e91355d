package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var ErrMissingDSN = errors.New("database url not configured")

func Connect(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// position keeps the order records were loaded in, which listings and
// "recent" views rely on. Amounts are float8 so they aggregate exactly as
// the JSON source does.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		position    BIGSERIAL,
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		email       TEXT NOT NULL DEFAULT '',
		orders      INTEGER NOT NULL DEFAULT 0,
		total_spent DOUBLE PRECISION NOT NULL DEFAULT 0,
		joined      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		position BIGSERIAL,
		id       TEXT PRIMARY KEY,
		title    TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		brand    TEXT NOT NULL DEFAULT '',
		price    DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating   DOUBLE PRECISION NOT NULL DEFAULT 0,
		stock    INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		position    BIGSERIAL,
		id          TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL DEFAULT '',
		product_id  TEXT NOT NULL DEFAULT '',
		total       DOUBLE PRECISION,
		status      TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS orders_customer_id_idx ON orders (customer_id)`,
	`CREATE INDEX IF NOT EXISTS orders_product_id_idx ON orders (product_id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		name          TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the tables the repositories read from. It is safe to run
// on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}

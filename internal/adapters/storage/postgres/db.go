package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx (database/sql) y verifica la conexión.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema replica las tablas originales: serial como id y created_at lo pone la base.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id             BIGSERIAL PRIMARY KEY,
		owner_name     TEXT NOT NULL,
		phone          TEXT NOT NULL,
		email          TEXT NOT NULL,
		dog_name       TEXT NOT NULL,
		dog_breed      TEXT,
		service_type   TEXT NOT NULL,
		preferred_date TEXT NOT NULL,
		instructions   TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id            BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		pet_name      TEXT NOT NULL,
		rating        INTEGER NOT NULL,
		comment       TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL,
		email      TEXT NOT NULL,
		message    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema crea las tablas si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: ensure schema: %w", err)
		}
	}
	return nil
}

// nullIfEmpty mapea el opcional "" a NULL.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Package database handles PostgreSQL connections and queries.
//
// We use sqlx over the standard database/sql for struct scanning, with
// raw SQL throughout. One *DB is created at startup and shared; the
// underlying pool is safe for concurrent use.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the sqlx connection with application-specific queries.
type DB struct {
	*sqlx.DB
}

// New opens a pooled connection and verifies it with a ping.
func New(databaseURL string) (*DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Pool settings tuned for serverless PostgreSQL, which closes idle
	// connections aggressively.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(2 * time.Minute)
	db.SetConnMaxIdleTime(30 * time.Second)

	return &DB{db}, nil
}

// HealthCheck verifies the database connection is alive.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}

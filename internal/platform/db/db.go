package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to the shared Postgres gateway via the pgx stdlib
// driver. The pool is sized for the dbtool and small deployments; the
// demo server runs against local SQLite instead (see cmd/server).
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}

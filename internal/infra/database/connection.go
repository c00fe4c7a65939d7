package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "github.com/lib/pq"              // registers "postgres"
)

// NewDBConnection opens the pool and pings it. driver is "pgx" or "postgres".
func NewDBConnection(driver, connString string) (*sql.DB, error) {
	if driver == "" {
		driver = "pgx"
	}

	db, err := sql.Open(driver, connString)
	if err != nil {
		return nil, err
	}

	// Shared by the HTTP handlers and the drip worker.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

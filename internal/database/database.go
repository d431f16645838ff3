package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// New opens a pgx-backed pool sized for the configured connection
// budget. Idle connections are capped at a fifth of the open limit so
// a mostly-idle instance does not hold Postgres slots.
func New(connStr string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns(maxOpenConns))
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func maxIdleConns(maxOpen int) int {
	idle := maxOpen / 5
	if idle < 2 {
		idle = 2
	}

	return idle
}

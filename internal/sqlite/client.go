package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		position INTEGER PRIMARY KEY,
		account_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		balance TEXT NOT NULL
	);
`

type Client struct {
	db     *sql.DB
	config Config
}

func NewClient(config Config) (*Client, error) {
	dsn := buildDSN(config)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	return &Client{
		db:     db,
		config: config,
	}, nil
}

func buildDSN(config Config) string {
	dsn := fmt.Sprintf("file:%s?", config.DatabasePath)

	dsn += fmt.Sprintf("_busy_timeout=%d", int(config.BusyTimeout.Milliseconds()))

	// snapshot rewrites take the write lock up front
	dsn += "&_txlock=immediate"

	if config.EnableWAL {
		dsn += "&_journal_mode=WAL"
	}

	return dsn
}

// Migrate creates the accounts table when it does not exist.
func (c *Client) Migrate(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/hatpick/hatpick/cliparse"
	"github.com/hatpick/hatpick/models"
)

// Open connects to the configured database backend.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case models.DBTypePostgres:
		return sql.Open("postgres", cfg.DatabaseURL)
	case models.DBTypeSQLite:
		return sql.Open("sqlite", cfg.DatabaseURL+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Spaces: one row per derived namespace key.
-- items is a JSON array of strings; last_picked is a JSON object or NULL.
-- Timestamps are RFC 3339 text supplied by the application so the same
-- schema works on both postgres and sqlite.
CREATE TABLE IF NOT EXISTS space (
    ns_key TEXT PRIMARY KEY,
    items TEXT NOT NULL,
    last_picked TEXT,
    item_count INTEGER NOT NULL DEFAULT 0,
    version INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    last_modified_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_space_last_modified ON space(last_modified_at);
`

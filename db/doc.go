// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured backend type:

	conn, err := db.Open(cfg)

Supported backends are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite). SQLite connections get WAL mode and a busy timeout
so concurrent writers queue instead of failing.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema is a single table:

  - space: one row per namespace key holding the item list (JSON text),
    the last pick record (JSON text, nullable), a derived item count,
    a version counter for optimistic concurrency, and timestamps

Timestamps are stored as RFC 3339 text supplied by the application rather
than database defaults, so one schema serves both backends.
*/
package db

// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Hatpick API server.

Hatpick is a shared-list random picker: everyone who knows a shared
secret lands in the same space, edits one list of items, and the last
random pick from that list is remembered.

# Starting the Server

The server runs on sqlite out of the box:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3419 -t postgres -d "postgres://..."

A .env file in the working directory is loaded if present.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3419)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string, or file path for sqlite
    (default: hatpick.db)
  - RATE_LIMIT_RPS (-rate): per-IP request limit (default: 20)
  - ALLOW_ORIGIN (-origin): CORS origin (default: mirror request origin)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - namespace: secret-to-key derivation
  - validate: item well-formedness checks
  - store: per-key atomic persistence (optimistic CAS)
  - space: the service owning all space mutations
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, rate limiting, logging, JSON helpers
  - models: Request/response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

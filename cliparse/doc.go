// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3419)
  - DatabaseURL: PostgreSQL connection string, or file path for sqlite
    (default: hatpick.db)
  - DatabaseType: "sqlite" (default) or "postgres"
  - RateLimitRPS: Per-IP request rate limit (default: 20)
  - AllowOrigin: CORS allowed origin (default: mirror the request origin)

# CLI Flags

	-p       Server port
	-d       Database URL or sqlite file path
	-t       Database type (sqlite or postgres)
	-rate    Per-IP rate limit in requests/sec
	-origin  CORS allowed origin

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	RATE_LIMIT_RPS → -rate
	ALLOW_ORIGIN   → -origin

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided when the type is postgres
  - DATABASE_TYPE must be sqlite or postgres
  - PORT and RATE_LIMIT_RPS must parse as numbers

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg)
	// ...
	handler := router.NewRouter(svc, cfg)
*/
package cliparse

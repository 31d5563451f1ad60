// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv); real
environment variables take precedence over file values, and CLI flags take
precedence over both.

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - JWTSecret: Session token signing secret (required)
  - TokenTTL: Session token lifetime (default: 24h)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	--jwt-secret Session token secret
	--token-ttl  Session token lifetime

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	JWT_SECRET    → --jwt-secret
	TOKEN_TTL     → --token-ttl

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - JWT_SECRET must be provided
*/
package cliparse

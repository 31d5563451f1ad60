// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the alx-polly API server.

alx-polly is a poll service: authenticated users create polls, vote once per
poll, and manage their own polls.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3000 -d "file:polly.db" -t sqlite --jwt-secret dev-secret

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - JWT_SECRET (--jwt-secret): session token signing secret

Optional settings:

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL (--token-ttl): session token lifetime (default: 24h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, polls, voting)
  - actions: the action facade — identity, validation, ownership, and
    vote-integrity rules sequenced in front of single persistence calls
  - validation: pure poll-input normalization and bounds checks
  - store: row-level persistence for users, polls, and votes
  - router: route definitions using Go 1.22+ routing
  - middleware: identity resolution, rate limiting, CORS, logging, JSON helpers
  - auth: password hashing and session tokens
  - models: request/response/domain types
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver by configured type:

	conn, err := db.Open("postgres", cfg.DatabaseURL)
	conn, err := db.Open("sqlite", "file:polly.db")

PostgreSQL uses github.com/lib/pq; SQLite uses modernc.org/sqlite (pure Go,
no cgo). The same DDL and $n placeholders work on both.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: account records with bcrypt password hashes
  - polls: question plus a JSON-encoded ordered option list
  - votes: one row per (poll, user)

# Relationships

	users 1──* polls
	polls 1──* votes
	users 1──* votes

All foreign keys use ON DELETE CASCADE.

# Constraints

votes carries UNIQUE (poll_id, user_id). This constraint, not the
application's duplicate-vote check, is what closes the race between two
concurrent votes from the same user.
*/
package db

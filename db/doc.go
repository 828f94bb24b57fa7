/*
Package db handles database connection and schema creation.

# Drivers

Open selects the driver by database type:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite

All queries in this codebase use $1-style placeholders, which both dialects
accept, so the store code is driver-agnostic.

# Schema Creation

CreateSchema initializes the votes table:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Tables

  - votes: one row per (batch member, round) pair; candidate fields plus the
    round winner's fields, created_at, auto-incrementing surrogate key

# Indexes

  - votes.winner_number
  - votes.brand
  - votes.finish
*/
package db

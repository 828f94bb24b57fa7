package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the votes table and its indexes.
// Safe to call multiple times - uses IF NOT EXISTS.
// The surrogate key differs by dialect, everything else is shared.
func CreateSchema(db *sql.DB, databaseType string) error {
	var schema string
	switch databaseType {
	case "postgres":
		schema = fmt.Sprintf(schemaTemplate, "SERIAL PRIMARY KEY")
	case "sqlite":
		schema = fmt.Sprintf(schemaTemplate, "INTEGER PRIMARY KEY AUTOINCREMENT")
	default:
		return fmt.Errorf("unsupported database type: %q", databaseType)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaTemplate = `
-- Vote log: one row per batch member per round, append-only
CREATE TABLE IF NOT EXISTS votes (
    id %s,
    number TEXT,
    brand TEXT,
    shade_name TEXT,
    finish TEXT,
    collection TEXT,
    winner_number TEXT,
    winner_brand TEXT,
    winner_shade_name TEXT,
    winner_finish TEXT,
    winner_collection TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_votes_winner_number ON votes(winner_number);
CREATE INDEX IF NOT EXISTS idx_votes_brand ON votes(brand);
CREATE INDEX IF NOT EXISTS idx_votes_finish ON votes(finish);
`

package handlers

import (
	"database/sql"
	"testing"

	"github.com/katmcmillan/pick-me-randomly/models"
	"github.com/katmcmillan/pick-me-randomly/votes"
)

// newTestVoteStore seeds one recorded round (first polish wins over the
// first three) and returns the store.
func newTestVoteStore(t *testing.T, conn *sql.DB, polishes []models.Polish) *votes.Store {
	t.Helper()

	store := votes.New(conn)
	if _, err := store.Record(polishes[0], polishes[:3]); err != nil {
		t.Fatalf("Failed to seed votes: %v", err)
	}
	return store
}

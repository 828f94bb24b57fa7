package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/models"
	"github.com/katmcmillan/pick-me-randomly/testutil"
)

func historyFixture(t *testing.T) []models.HistoryEntry {
	t.Helper()
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	return []models.HistoryEntry{
		{Date: day("2026-01-01"), Number: "A1", Brand: "Essie", ShadeName: "Ballet Slippers"},
		{Date: day("2026-01-08"), Number: "B1", Brand: "OPI", ShadeName: "Bubble Bath"},
		{Date: day("2026-01-08"), Number: "D1", Brand: "Essie", ShadeName: "Wicked"},
	}
}

func TestGetHistory(t *testing.T) {
	cat := catalog.NewStore(nil, historyFixture(t), nil)
	handler := NewHistoryHandler(cat, testutil.GetTestConfig())

	tests := []struct {
		name          string
		query         string
		expectedLen   int
		expectedError int
	}{
		{name: "unfiltered", query: "", expectedLen: 3},
		{name: "brand filter", query: "?brand=Essie", expectedLen: 2},
		{name: "date filter", query: "?date=2026-01-08", expectedLen: 2},
		{name: "brand and date", query: "?brand=Essie&date=2026-01-08", expectedLen: 1},
		{name: "no matches", query: "?brand=ILNP", expectedLen: 0},
		{name: "bad date", query: "?date=January", expectedError: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/history"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetHistory(w, req)

			if tt.expectedError != 0 {
				testutil.AssertStatus(t, w, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, http.StatusOK)

			var entries []models.HistoryEntry
			testutil.AssertJSON(t, w, &entries)
			if len(entries) != tt.expectedLen {
				t.Errorf("Expected %d entries, got %d", tt.expectedLen, len(entries))
			}
		})
	}
}

func TestGetVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	polishes := testutil.TestPolishes()
	store := newTestVoteStore(t, conn, polishes)

	handler := NewDatabaseHandler(store, cfg)

	req := httptest.NewRequest("GET", "/votes", nil)
	w := httptest.NewRecorder()

	handler.GetVotes(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var records []models.VoteRecord
	testutil.AssertJSON(t, w, &records)
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	for i, r := range records {
		if r.WinnerNumber != "A1" {
			t.Errorf("Record %d: expected winner A1, got %s", i, r.WinnerNumber)
		}
		if r.CreatedAt.IsZero() {
			t.Errorf("Record %d: missing created_at", i)
		}
	}
}

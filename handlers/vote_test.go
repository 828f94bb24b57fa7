package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/models"
	"github.com/katmcmillan/pick-me-randomly/testutil"
	"github.com/katmcmillan/pick-me-randomly/votes"
)

func voteTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	cfg := testutil.GetTestConfig()
	cfg.SelectionsFile = filepath.Join(t.TempDir(), "NPS_Selections.xlsx")
	return cfg
}

func TestRecordVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := voteTestConfig(t)
	polishes := testutil.TestPolishes()
	cat := catalog.NewStore(polishes, nil, nil)
	store := votes.New(conn)
	handler := NewVoteHandler(store, cat, cfg)

	batch := polishes[:3]
	req := testutil.MakeRequest("POST", "/votes", models.RecordVoteRequest{
		Winner: batch[0],
		Batch:  batch,
	}, nil)
	w := httptest.NewRecorder()

	handler.RecordVote(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RecordVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Recorded != 3 {
		t.Errorf("Expected 3 recorded, got %d", resp.Recorded)
	}
	if resp.TotalVotes != 3 {
		t.Errorf("Expected 3 total votes, got %d", resp.TotalVotes)
	}

	// The batch's numbers must leave the sampling pool
	used := cat.Used()
	for _, p := range batch {
		if !used[p.Number] {
			t.Errorf("Expected %s marked used", p.Number)
		}
	}
	if used["D1"] {
		t.Error("D1 was not in the batch and must not be used")
	}

	// And the batch must be appended to the selections workbook
	fromFile, err := catalog.LoadUsedNumbers(cfg.SelectionsFile)
	if err != nil {
		t.Fatalf("Selections workbook unreadable after vote: %v", err)
	}
	for _, p := range batch {
		if !fromFile[p.Number] {
			t.Errorf("Expected %s persisted to selections workbook", p.Number)
		}
	}
}

func TestRecordVote_BadRequests(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := voteTestConfig(t)
	polishes := testutil.TestPolishes()
	cat := catalog.NewStore(polishes, nil, nil)
	store := votes.New(conn)
	handler := NewVoteHandler(store, cat, cfg)

	tests := []struct {
		name string
		body interface{}
		raw  []byte
	}{
		{
			name: "invalid JSON",
			raw:  []byte("{nope"),
		},
		{
			name: "empty batch",
			body: models.RecordVoteRequest{Winner: polishes[0]},
		},
		{
			name: "winner not in batch",
			body: models.RecordVoteRequest{Winner: polishes[4], Batch: polishes[:2]},
		},
		{
			name: "batch member without number",
			body: models.RecordVoteRequest{
				Winner: polishes[0],
				Batch:  []models.Polish{polishes[0], {Brand: "Mystery"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.raw != nil {
				req = httptest.NewRequest("POST", "/votes", bytes.NewReader(tt.raw))
			} else {
				req = testutil.MakeRequest("POST", "/votes", tt.body, nil)
			}
			w := httptest.NewRecorder()

			handler.RecordVote(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	// No rejected request may have persisted anything
	count, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Expected 0 rows after rejected requests, got %d", count)
	}
	if len(cat.Used()) != 0 {
		t.Errorf("Rejected requests must not consume polishes: %v", cat.Used())
	}
}

func TestRecordVote_RetryAppendsAgain(t *testing.T) {
	// Re-submitting the same round is a second round by design, not a
	// deduplicated retry
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := voteTestConfig(t)
	polishes := testutil.TestPolishes()
	cat := catalog.NewStore(polishes, nil, nil)
	store := votes.New(conn)
	handler := NewVoteHandler(store, cat, cfg)

	body := models.RecordVoteRequest{Winner: polishes[0], Batch: polishes[:2]}
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.RecordVote(w, testutil.MakeRequest("POST", "/votes", body, nil))
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("Expected 4 rows after two submissions, got %d", count)
	}
}

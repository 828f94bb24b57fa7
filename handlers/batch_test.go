package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/models"
	"github.com/katmcmillan/pick-me-randomly/testutil"
)

func TestGetBatch(t *testing.T) {
	cfg := testutil.GetTestConfig()
	polishes := testutil.TestPolishes()

	tests := []struct {
		name          string
		used          map[string]bool
		query         string
		expectedLen   int
		expectedLeft  int
		expectedError int
	}{
		{
			name:         "default count over fresh catalog",
			used:         nil,
			query:        "",
			expectedLen:  5,
			expectedLeft: 5,
		},
		{
			name:         "explicit count",
			used:         nil,
			query:        "?count=2",
			expectedLen:  2,
			expectedLeft: 5,
		},
		{
			name:         "nearly exhausted pool returns what remains",
			used:         map[string]bool{"A1": true, "B1": true, "C1": true},
			query:        "?count=5",
			expectedLen:  2,
			expectedLeft: 2,
		},
		{
			name:         "exhausted pool returns empty batch",
			used:         map[string]bool{"A1": true, "B1": true, "C1": true, "D1": true, "E1": true},
			query:        "",
			expectedLen:  0,
			expectedLeft: 0,
		},
		{
			name:          "invalid count",
			used:          nil,
			query:         "?count=zero",
			expectedError: http.StatusBadRequest,
		},
		{
			name:          "non-positive count",
			used:          nil,
			query:         "?count=0",
			expectedError: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := catalog.NewStore(polishes, nil, tt.used)
			handler := NewBatchHandler(cat, cfg)

			req := httptest.NewRequest("GET", "/batch"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetBatch(w, req)

			if tt.expectedError != 0 {
				testutil.AssertStatus(t, w, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.BatchResponse
			testutil.AssertJSON(t, w, &resp)

			if len(resp.Polishes) != tt.expectedLen {
				t.Errorf("Expected %d polishes, got %d", tt.expectedLen, len(resp.Polishes))
			}
			if resp.Remaining != tt.expectedLeft {
				t.Errorf("Expected %d remaining, got %d", tt.expectedLeft, resp.Remaining)
			}

			seen := make(map[string]bool)
			for _, p := range resp.Polishes {
				if tt.used[p.Number] {
					t.Errorf("Used polish %s in batch", p.Number)
				}
				if seen[p.Number] {
					t.Errorf("Duplicate polish %s in batch", p.Number)
				}
				seen[p.Number] = true
			}
		})
	}
}

func TestGetBatch_EmptyCatalog(t *testing.T) {
	cat := catalog.NewStore(nil, nil, nil)
	handler := NewBatchHandler(cat, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/batch", nil)
	w := httptest.NewRecorder()

	handler.GetBatch(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.BatchResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Polishes) != 0 || resp.Remaining != 0 {
		t.Errorf("Expected empty batch from empty catalog, got %+v", resp)
	}
}

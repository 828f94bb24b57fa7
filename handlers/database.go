package handlers

import (
	"log/slog"
	"net/http"

	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/middleware"
	"github.com/katmcmillan/pick-me-randomly/votes"
)

type DatabaseHandler struct {
	store *votes.Store
	cfg   cliparse.Config
}

func NewDatabaseHandler(store *votes.Store, cfg cliparse.Config) *DatabaseHandler {
	return &DatabaseHandler{store: store, cfg: cfg}
}

// GetVotes handles GET /votes
// Returns the raw vote log in insertion order.
func (h *DatabaseHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.All()
	if err != nil {
		slog.Error("failed to read vote log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

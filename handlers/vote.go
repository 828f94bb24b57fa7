package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/middleware"
	"github.com/katmcmillan/pick-me-randomly/models"
	"github.com/katmcmillan/pick-me-randomly/votes"
)

type VoteHandler struct {
	store   *votes.Store
	catalog *catalog.Store
	cfg     cliparse.Config
}

func NewVoteHandler(store *votes.Store, cat *catalog.Store, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{store: store, catalog: cat, cfg: cfg}
}

// RecordVote handles POST /votes
// Persists one round: the chosen polish plus every other batch member, all
// in one transaction. On success the batch's numbers leave the sampling
// pool and are appended to the selections workbook. A failed record changes
// nothing; the client simply re-submits.
func (h *VoteHandler) RecordVote(w http.ResponseWriter, r *http.Request) {
	var req models.RecordVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	n, err := h.store.Record(req.Winner, req.Batch)
	if err != nil {
		switch {
		case errors.Is(err, votes.ErrEmptyBatch),
			errors.Is(err, votes.ErrWinnerNotInBatch),
			errors.Is(err, votes.ErrMissingNumber):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to record vote", "error", err, "winner", req.Winner.Number)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote. Please try again.")
		}
		return
	}

	// The whole batch counts as presented, not just the winner
	numbers := make([]string, len(req.Batch))
	for i, p := range req.Batch {
		numbers[i] = p.Number
	}
	h.catalog.MarkUsed(numbers...)

	// Best-effort write-back; the vote itself is already durable
	if err := catalog.AppendSelections(h.cfg.SelectionsFile, req.Batch); err != nil {
		slog.Warn("failed to append selections", "error", err, "file", h.cfg.SelectionsFile)
	}

	total, err := h.store.Count()
	if err != nil {
		slog.Warn("failed to count votes after record", "error", err)
	}

	slog.Info("vote recorded", "winner", req.Winner.Number, "batch_size", n, "total_votes", total)

	middleware.JSONResponse(w, http.StatusCreated, models.RecordVoteResponse{
		Recorded:   n,
		TotalVotes: total,
		Message:    fmt.Sprintf("Vote recorded! Total votes: %d", total),
	})
}

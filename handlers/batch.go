package handlers

import (
	"net/http"
	"strconv"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/middleware"
	"github.com/katmcmillan/pick-me-randomly/models"
	"github.com/katmcmillan/pick-me-randomly/sampler"
)

type BatchHandler struct {
	catalog *catalog.Store
	cfg     cliparse.Config
}

func NewBatchHandler(cat *catalog.Store, cfg cliparse.Config) *BatchHandler {
	return &BatchHandler{catalog: cat, cfg: cfg}
}

// GetBatch handles GET /batch
// Returns a fresh random batch of not-yet-presented polishes. A nearly
// exhausted collection returns whatever remains; an exhausted one returns
// an empty batch.
func (h *BatchHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	count := h.cfg.SampleSize
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = n
	}

	used := h.catalog.Used()
	collection := h.catalog.Collection()

	batch := sampler.Sample(collection, used, count)
	remaining := len(sampler.Available(collection, used))

	middleware.JSONResponse(w, http.StatusOK, models.BatchResponse{
		Polishes:  batch,
		Remaining: remaining,
	})
}

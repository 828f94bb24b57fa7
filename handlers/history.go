package handlers

import (
	"net/http"
	"time"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/middleware"
	"github.com/katmcmillan/pick-me-randomly/models"
)

type HistoryHandler struct {
	catalog *catalog.Store
	cfg     cliparse.Config
}

func NewHistoryHandler(cat *catalog.Store, cfg cliparse.Config) *HistoryHandler {
	return &HistoryHandler{catalog: cat, cfg: cfg}
}

// GetHistory handles GET /history
// Optional filters: ?brand=Essie and ?date=2026-01-05 (a single day).
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")

	var day time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	entries := []models.HistoryEntry{}
	for _, e := range h.catalog.History() {
		if brand != "" && e.Brand != brand {
			continue
		}
		if !day.IsZero() {
			y1, m1, d1 := e.Date.Date()
			y2, m2, d2 := day.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		entries = append(entries, e)
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/middleware"
	"github.com/katmcmillan/pick-me-randomly/models"
	"github.com/katmcmillan/pick-me-randomly/votes"
)

type StatsHandler struct {
	store   *votes.Store
	catalog *catalog.Store
	cfg     cliparse.Config
}

func NewStatsHandler(store *votes.Store, cat *catalog.Store, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{store: store, catalog: cat, cfg: cfg}
}

// GetFavorites handles GET /stats/favorites
// Returns the most-popular polishes plus brand and finish win rates,
// computed fresh from the committed vote log.
func (h *StatsHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.Aggregate()
	if err != nil {
		slog.Error("failed to aggregate votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to calculate statistics")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetOverview handles GET /stats/overview
// Returns the collection usage journey: how much of the collection has been
// worn and the pace implied by the wear history.
func (h *StatsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, overview(h.catalog.Collection(), h.catalog.History()))
}

func overview(collection []models.Polish, history []models.HistoryEntry) models.OverviewResponse {
	resp := models.OverviewResponse{
		TotalPolishes: len(collection),
	}

	worn := make(map[string]bool)
	var first, last time.Time
	for _, e := range history {
		worn[e.Number] = true
		if first.IsZero() || e.Date.Before(first) {
			first = e.Date
		}
		if e.Date.After(last) {
			last = e.Date
		}
	}
	resp.WornPolishes = len(worn)

	if resp.TotalPolishes > 0 {
		resp.PercentWorn = float64(resp.WornPolishes) / float64(resp.TotalPolishes) * 100
	}

	if !first.IsZero() {
		resp.TotalDays = int(last.Sub(first).Hours() / 24)
	}
	if resp.TotalDays > 0 {
		resp.PolishesPerWeek = float64(resp.WornPolishes) / (float64(resp.TotalDays) / 7)
	}
	if resp.PolishesPerWeek > 0 {
		resp.WeeksToWearCollection = float64(resp.TotalPolishes) / resp.PolishesPerWeek
		resp.YearsToWearCollection = resp.WeeksToWearCollection / 52
	}

	return resp
}

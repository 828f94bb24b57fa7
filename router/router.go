package router

import (
	"database/sql"
	"net/http"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/handlers"
	"github.com/katmcmillan/pick-me-randomly/middleware"
	"github.com/katmcmillan/pick-me-randomly/votes"
)

func NewRouter(db *sql.DB, cat *catalog.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	store := votes.New(db)

	// Initialize handlers
	batchHandler := handlers.NewBatchHandler(cat, cfg)
	voteHandler := handlers.NewVoteHandler(store, cat, cfg)
	statsHandler := handlers.NewStatsHandler(store, cat, cfg)
	historyHandler := handlers.NewHistoryHandler(cat, cfg)
	databaseHandler := handlers.NewDatabaseHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting round
	mux.HandleFunc("GET /batch", middleware.WithLogging(batchHandler.GetBatch))
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.RecordVote))

	// Statistics
	mux.HandleFunc("GET /stats/favorites", middleware.WithLogging(statsHandler.GetFavorites))
	mux.HandleFunc("GET /stats/overview", middleware.WithLogging(statsHandler.GetOverview))

	// History and raw data
	mux.HandleFunc("GET /history", middleware.WithLogging(historyHandler.GetHistory))
	mux.HandleFunc("GET /votes", middleware.WithLogging(databaseHandler.GetVotes))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pick-me-randomly API v1"))
	})

	return mux
}

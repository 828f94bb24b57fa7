package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/katmcmillan/pick-me-randomly/catalog"
	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/db"
	"github.com/katmcmillan/pick-me-randomly/middleware"
	"github.com/katmcmillan/pick-me-randomly/router"
	"github.com/katmcmillan/pick-me-randomly/votes"
)

func main() {
	// Local .env for development; real environment wins
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the vote database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (votes table)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Prove the write path works before serving, then sweep the sentinel
	// rows it leaves behind
	store := votes.New(dbConn)
	if err := store.Verify(); err != nil {
		slog.Error("database verification failed", "error", err)
		os.Exit(1)
	}
	if deleted, err := store.CleanupSentinel(); err != nil {
		slog.Warn("sentinel cleanup failed", "error", err)
	} else if deleted > 0 {
		slog.Info("sentinel rows cleaned", "deleted", deleted)
	}

	// Load the collection; missing workbooks degrade to empty data
	cat, err := catalog.Load(cfg.CollectionFile, cfg.SelectionsFile)
	if err != nil {
		slog.Warn("catalog sources unavailable, continuing with empty data", "error", err)
	}
	slog.Info("Catalog loaded",
		"polishes", len(cat.Collection()),
		"history_entries", len(cat.History()),
		"used_numbers", len(cat.Used()),
	)

	// Create router
	mux := router.NewRouter(dbConn, cat, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

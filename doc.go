/*
Package main provides the entry point for the Pick Me Randomly API server.

Pick Me Randomly tracks a personal nail-polish collection: it deals random
batches of not-yet-presented polishes, records which one was picked, and
derives favorites and usage statistics from the accumulated picks.

# Starting the Server

The server takes configuration from environment variables or CLI flags:

	DATABASE_URL="file:votes.db" go run .

Or with flags:

	go run . -p 8501 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): database DSN

Optional settings:

  - PORT (-p): server port (default: 8501)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - COLLECTION_FILE (-collection): collection workbook (default: NPS.xlsx)
  - SELECTIONS_FILE (-selections): selections workbook (default: NPS_Selections.xlsx)
  - SAMPLE_SIZE (-n): polishes per batch (default: 5)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (batch, vote, stats, history, database)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - sampler: random batch selection
  - votes: vote persistence and aggregation
  - catalog: spreadsheet-backed collection, history and used-set
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

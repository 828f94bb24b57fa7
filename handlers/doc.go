/*
Package handlers contains the HTTP request handlers.

# Handler Types

Each handler is a struct holding its dependencies (vote store, catalog
store, config), constructed once in the router:

  - BatchHandler: GET /batch - random batch of unpresented polishes
  - VoteHandler: POST /votes - record one round's pick
  - StatsHandler: GET /stats/favorites, GET /stats/overview
  - HistoryHandler: GET /history with brand/date filters
  - DatabaseHandler: GET /votes - raw vote log

# Error Mapping

Bad input (empty batch, winner outside the batch, missing numbers) maps to
400; store failures map to 500 with a retry-friendly message. Failures are
logged and answered, never allowed to take the process down.
*/
package handlers

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Polish: one swatch from the collection workbook
  - VoteRecord: one persisted row of the vote log
  - HistoryEntry: one row of the personal wear history
  - TopWinner: a winner combination and its vote count
  - AttributeStats: appearances/wins/win percentage for a brand or finish

# Request Types

  - RecordVoteRequest: winner + the batch it was chosen from

# Response Types

  - BatchResponse: sampled polishes + remaining pool size
  - RecordVoteResponse: recorded row count, total votes, message
  - FavoritesResponse: top winners, brand stats, finish stats
  - OverviewResponse: collection usage journey numbers
  - ErrorResponse: error, message

# Constants

	Sentinel     = "TEST"    // startup self-check marker value
	UnknownBrand = "Unknown" // empty-brand fallback in history rows
*/
package models

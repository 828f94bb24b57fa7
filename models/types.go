package models

import "time"

// Sentinel is the reserved marker value used by the startup write-path
// self-check. Rows whose candidate and winner identity fields all equal this
// value are test rows and are removed on startup.
const Sentinel = "TEST"

// UnknownBrand is substituted for an empty brand in history rows.
const UnknownBrand = "Unknown"

// Domain types

// Polish is one swatch from the collection workbook. Number is the stable
// catalog identifier; everything else is display data. Optional columns
// missing from the workbook load as empty strings.
type Polish struct {
	Number      string `json:"number"`
	Brand       string `json:"brand"`
	ShadeName   string `json:"shade_name"`
	Description string `json:"description"`
	Finish      string `json:"finish"`
	Collection  string `json:"collection"`
	Notes       string `json:"notes"`
}

// VoteRecord is one persisted row of the vote log: a batch member's fields
// alongside the fields of the polish that won the round. Rows are append-only.
type VoteRecord struct {
	ID               int64     `json:"id"`
	Number           string    `json:"number"`
	Brand            string    `json:"brand"`
	ShadeName        string    `json:"shade_name"`
	Finish           string    `json:"finish"`
	Collection       string    `json:"collection"`
	WinnerNumber     string    `json:"winner_number"`
	WinnerBrand      string    `json:"winner_brand"`
	WinnerShadeName  string    `json:"winner_shade_name"`
	WinnerFinish     string    `json:"winner_finish"`
	WinnerCollection string    `json:"winner_collection"`
	CreatedAt        time.Time `json:"created_at"`
}

// HistoryEntry is one row of the personal wear history sheet.
type HistoryEntry struct {
	Date        time.Time `json:"date"`
	Number      string    `json:"number"`
	Brand       string    `json:"brand"`
	ShadeName   string    `json:"shade_name"`
	Description string    `json:"description"`
	Finish      string    `json:"finish"`
	Notes       string    `json:"notes"`
}

// TopWinner is one entry of the most-popular list: a distinct winner
// combination and how many rounds it won.
type TopWinner struct {
	Number    string `json:"number"`
	Brand     string `json:"brand"`
	ShadeName string `json:"shade_name"`
	Finish    string `json:"finish"`
	Votes     int    `json:"votes"`
}

// AttributeStats aggregates candidate rows sharing one attribute value
// (a brand or a finish): how often the value appeared in a presented batch
// and how often it won the round.
type AttributeStats struct {
	Value         string  `json:"value"`
	Appearances   int     `json:"appearances"`
	Wins          int     `json:"wins"`
	WinPercentage float64 `json:"win_percentage"`
}

// Request types

type RecordVoteRequest struct {
	Winner Polish   `json:"winner"`
	Batch  []Polish `json:"batch"`
}

// Response types

type BatchResponse struct {
	Polishes  []Polish `json:"polishes"`
	Remaining int      `json:"remaining"`
}

type RecordVoteResponse struct {
	Recorded   int    `json:"recorded"`
	TotalVotes int    `json:"total_votes"`
	Message    string `json:"message"`
}

type FavoritesResponse struct {
	TopWinners  []TopWinner      `json:"top_winners"`
	BrandStats  []AttributeStats `json:"brand_stats"`
	FinishStats []AttributeStats `json:"finish_stats"`
}

type OverviewResponse struct {
	TotalPolishes         int     `json:"total_polishes"`
	WornPolishes          int     `json:"worn_polishes"`
	PercentWorn           float64 `json:"percent_worn"`
	TotalDays             int     `json:"total_days"`
	PolishesPerWeek       float64 `json:"polishes_per_week"`
	WeeksToWearCollection float64 `json:"weeks_to_wear_collection"`
	YearsToWearCollection float64 `json:"years_to_wear_collection"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package votes

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katmcmillan/pick-me-randomly/models"
)

var (
	// ErrRecordingFailed marks write-path failures. No rows are visible
	// after a failed Record.
	ErrRecordingFailed = errors.New("recording failed")

	// ErrAggregationFailed marks read-path failures. No partial aggregate
	// is returned.
	ErrAggregationFailed = errors.New("aggregation failed")

	// ErrEmptyBatch is returned when Record is called with no batch.
	ErrEmptyBatch = errors.New("batch is empty")

	// ErrWinnerNotInBatch is returned when the winner's number does not
	// match any batch member.
	ErrWinnerNotInBatch = errors.New("winner is not a member of the batch")

	// ErrMissingNumber is returned when a batch member or the winner has no
	// catalog number.
	ErrMissingNumber = errors.New("polish is missing its number")
)

// Store persists and aggregates vote records. All methods are safe for
// concurrent use; the database serializes conflicting writes.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record appends one row per batch member, each carrying the winner's
// fields, in a single transaction. Either all |batch| rows become visible or
// none do. The winner must be field-present in the batch (matched by
// number); every member must carry a number. Returns the number of rows
// written.
//
// Record is deliberately not idempotent: retrying the same batch appends a
// fresh set of rows. That mirrors how rounds work - each presentation of a
// batch is its own event.
func (s *Store) Record(winner models.Polish, batch []models.Polish) (int, error) {
	if len(batch) == 0 {
		return 0, ErrEmptyBatch
	}
	if winner.Number == "" {
		return 0, fmt.Errorf("%w: winner", ErrMissingNumber)
	}

	inBatch := false
	for _, p := range batch {
		if p.Number == "" {
			return 0, fmt.Errorf("%w: batch member %q %q", ErrMissingNumber, p.Brand, p.ShadeName)
		}
		if p.Number == winner.Number {
			inBatch = true
		}
	}
	if !inBatch {
		return 0, fmt.Errorf("%w: %s", ErrWinnerNotInBatch, winner.Number)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: begin transaction: %v", ErrRecordingFailed, err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, p := range batch {
		_, err := tx.Exec(`
			INSERT INTO votes (number, brand, shade_name, finish, collection,
			                   winner_number, winner_brand, winner_shade_name,
			                   winner_finish, winner_collection, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, p.Number, p.Brand, p.ShadeName, p.Finish, p.Collection,
			winner.Number, winner.Brand, winner.ShadeName, winner.Finish,
			winner.Collection, now)
		if err != nil {
			return 0, fmt.Errorf("%w: insert vote for %s: %v", ErrRecordingFailed, p.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit: %v", ErrRecordingFailed, err)
	}

	return len(batch), nil
}

// Count returns the total number of vote rows.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count votes: %v", ErrAggregationFailed, err)
	}
	return count, nil
}

// Aggregate computes the three statistics views over the full vote log.
// It always reads the committed state at call time; nothing is cached.
func (s *Store) Aggregate() (models.FavoritesResponse, error) {
	var result models.FavoritesResponse

	winners, err := s.topWinners()
	if err != nil {
		return models.FavoritesResponse{}, err
	}
	result.TopWinners = winners

	result.BrandStats, err = s.attributeStats("brand")
	if err != nil {
		return models.FavoritesResponse{}, err
	}

	result.FinishStats, err = s.attributeStats("finish")
	if err != nil {
		return models.FavoritesResponse{}, err
	}

	return result, nil
}

// topWinners returns the 10 winner combinations with the most round wins.
// Ties break toward the combination seen first (smallest row id), so the
// ordering is stable across calls.
func (s *Store) topWinners() ([]models.TopWinner, error) {
	rows, err := s.db.Query(`
		SELECT winner_number, winner_brand, winner_shade_name, winner_finish,
		       COUNT(*) AS votes, MIN(id) AS first_id
		FROM votes
		WHERE number = winner_number
		GROUP BY winner_number, winner_brand, winner_shade_name, winner_finish
		ORDER BY votes DESC, first_id ASC
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query top winners: %v", ErrAggregationFailed, err)
	}
	defer rows.Close()

	winners := []models.TopWinner{}
	for rows.Next() {
		var w models.TopWinner
		var firstID int64
		if err := rows.Scan(&w.Number, &w.Brand, &w.ShadeName, &w.Finish, &w.Votes, &firstID); err != nil {
			return nil, fmt.Errorf("%w: scan top winner: %v", ErrAggregationFailed, err)
		}
		winners = append(winners, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: top winners: %v", ErrAggregationFailed, err)
	}

	return winners, nil
}

// attributeStats groups candidate rows by the given column and counts
// appearances and wins. A row is a win when its candidate number equals the
// round's winner number. column is one of the fixed identifiers "brand" or
// "finish", never user input.
func (s *Store) attributeStats(column string) ([]models.AttributeStats, error) {
	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS appearances,
		       SUM(CASE WHEN number = winner_number THEN 1 ELSE 0 END) AS wins
		FROM votes
		GROUP BY %[1]s
		ORDER BY appearances DESC, %[1]s ASC
	`, column)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s stats: %v", ErrAggregationFailed, column, err)
	}
	defer rows.Close()

	stats := []models.AttributeStats{}
	for rows.Next() {
		var st models.AttributeStats
		if err := rows.Scan(&st.Value, &st.Appearances, &st.Wins); err != nil {
			return nil, fmt.Errorf("%w: scan %s stats: %v", ErrAggregationFailed, column, err)
		}
		// Appearances can't be zero for a grouped value, but guard anyway
		if st.Appearances > 0 {
			st.WinPercentage = float64(st.Wins) / float64(st.Appearances) * 100
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s stats: %v", ErrAggregationFailed, column, err)
	}

	return stats, nil
}

// All returns every vote row in insertion order.
func (s *Store) All() ([]models.VoteRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, number, brand, shade_name, finish, collection,
		       winner_number, winner_brand, winner_shade_name, winner_finish,
		       winner_collection, created_at
		FROM votes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query votes: %v", ErrAggregationFailed, err)
	}
	defer rows.Close()

	records := []models.VoteRecord{}
	for rows.Next() {
		var r models.VoteRecord
		if err := rows.Scan(&r.ID, &r.Number, &r.Brand, &r.ShadeName, &r.Finish,
			&r.Collection, &r.WinnerNumber, &r.WinnerBrand, &r.WinnerShadeName,
			&r.WinnerFinish, &r.WinnerCollection, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan vote: %v", ErrAggregationFailed, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: votes: %v", ErrAggregationFailed, err)
	}

	return records, nil
}

// Verify performs the startup write-path self-check: it inserts a sentinel
// row, reads it back by id, and reports whether the round trip worked. The
// caller should run CleanupSentinel afterwards.
func (s *Store) Verify() error {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO votes (number, brand, shade_name, finish, collection,
		                   winner_number, winner_brand, winner_shade_name,
		                   winner_finish, winner_collection, created_at)
		VALUES ($1, $1, $1, $1, $1, $1, $1, $1, $1, $1, $2)
		RETURNING id
	`, models.Sentinel, time.Now()).Scan(&id)
	if err != nil {
		return fmt.Errorf("verify insert: %w", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM votes WHERE id = $1`, id).Scan(&count); err != nil {
		return fmt.Errorf("verify read-back: %w", err)
	}
	if count != 1 {
		return fmt.Errorf("verify read-back: inserted row %d not found", id)
	}

	return nil
}

// CleanupSentinel deletes self-check rows: rows whose candidate and winner
// identity fields all equal the sentinel value. A real polish would need
// "TEST" for its number, brand and shade at once to be caught, which is an
// accepted residual risk. Running with zero sentinel rows is a no-op.
func (s *Store) CleanupSentinel() (int64, error) {
	res, err := s.db.Exec(`
		DELETE FROM votes
		WHERE number = $1 AND brand = $1 AND shade_name = $1
		  AND winner_number = $1 AND winner_brand = $1 AND winner_shade_name = $1
	`, models.Sentinel)
	if err != nil {
		return 0, fmt.Errorf("cleanup sentinel rows: %w", err)
	}

	deleted, _ := res.RowsAffected()
	return deleted, nil
}

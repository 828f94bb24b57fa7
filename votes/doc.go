/*
Package votes persists picks and derives usage statistics from them.

# Write Path

Record appends one row per batch member inside a single transaction; every
row carries the winner's fields. A failure anywhere rolls the whole batch
back, so readers never observe a partial round. The winner must be a member
of the presented batch, matched by catalog number.

# Read Path

Aggregate computes, over the full log:

  - TopWinners: the 10 winner combinations with the most wins, ties broken
    by first-seen row id
  - BrandStats / FinishStats: appearances, wins and win percentage per
    distinct candidate brand/finish

Aggregate reads committed state at call time; there is no result caching.

# Error Kinds

  - ErrRecordingFailed: the write path could not complete (rolled back)
  - ErrAggregationFailed: a read query failed (no partial results)
  - ErrEmptyBatch, ErrWinnerNotInBatch, ErrMissingNumber: bad input,
    reported before anything touches the database

# Housekeeping

Verify inserts a "TEST" sentinel row and reads it back, proving the write
path works at startup. CleanupSentinel removes such rows.
*/
package votes

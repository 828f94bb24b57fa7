package catalog

import (
	"errors"
	"sync"

	"github.com/katmcmillan/pick-me-randomly/models"
)

// Store holds the loaded catalog data for the lifetime of the process:
// the read-only collection and history, and the mutex-guarded used set,
// which grows as batches are presented. Constructed once at startup and
// passed to the handlers; there is no package-level state.
type Store struct {
	collection []models.Polish
	history    []models.HistoryEntry

	mu   sync.RWMutex
	used map[string]bool
}

// Load reads all three spreadsheet sources. Each source degrades to empty
// on failure; the joined ErrDataUnavailable errors are returned alongside a
// usable Store so the caller can log and keep going.
func Load(collectionPath, selectionsPath string) (*Store, error) {
	var errs []error

	collection, err := LoadCollection(collectionPath)
	if err != nil {
		errs = append(errs, err)
	}
	history, err := LoadHistory(collectionPath)
	if err != nil {
		errs = append(errs, err)
	}
	used, err := LoadUsedNumbers(selectionsPath)
	if err != nil {
		errs = append(errs, err)
	}
	return NewStore(collection, history, used), errors.Join(errs...)
}

// NewStore builds a Store from already-loaded data. The used set may be nil.
func NewStore(collection []models.Polish, history []models.HistoryEntry, used map[string]bool) *Store {
	if used == nil {
		used = map[string]bool{}
	}
	return &Store{
		collection: collection,
		history:    history,
		used:       used,
	}
}

// Collection returns the full catalog. Callers treat it as read-only.
func (s *Store) Collection() []models.Polish {
	return s.collection
}

// History returns the wear history. Callers treat it as read-only.
func (s *Store) History() []models.HistoryEntry {
	return s.history
}

// Used returns a copy of the used set, safe to hand to the sampler while
// other requests mark numbers used.
func (s *Store) Used() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	used := make(map[string]bool, len(s.used))
	for num := range s.used {
		used[num] = true
	}
	return used
}

// MarkUsed adds numbers to the used set.
func (s *Store) MarkUsed(numbers ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, num := range numbers {
		if num != "" {
			s.used[num] = true
		}
	}
}

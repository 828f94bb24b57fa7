package sampler

import (
	"math/rand/v2"

	"github.com/katmcmillan/pick-me-randomly/models"
)

// Available returns the polishes whose numbers are not in the used set,
// in catalog order. The inputs are never mutated.
func Available(catalog []models.Polish, used map[string]bool) []models.Polish {
	available := make([]models.Polish, 0, len(catalog))
	for _, p := range catalog {
		if !used[p.Number] {
			available = append(available, p)
		}
	}
	return available
}

// Sample returns up to count distinct polishes drawn uniformly at random,
// without replacement, from the catalog entries not in the used set.
// When fewer than count polishes remain it returns all of them rather than
// erroring, so a nearly exhausted catalog still yields a batch. Order of the
// result is not stable across calls.
func Sample(catalog []models.Polish, used map[string]bool, count int) []models.Polish {
	if count <= 0 {
		return nil
	}

	available := Available(catalog, used)
	if len(available) <= count {
		return available
	}

	// Partial Fisher-Yates: only the first count positions matter.
	for i := 0; i < count; i++ {
		j := i + rand.IntN(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}
	return available[:count]
}

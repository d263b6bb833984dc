package match

import (
	"math"
	"sort"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/profile"
)

// Result pairs a program with its match score. Results are ephemeral:
// recomputed on every query, never persisted.
type Result struct {
	Program catalog.Program `json:"program"`
	Score   int             `json:"score"`
}

// Summary reports how much of the catalog matched a profile.
type Summary struct {
	Total   int `json:"total"`
	Matched int `json:"matched"`
}

// Percent returns the matched share as a rounded percentage, 0 for an
// empty catalog.
func (s Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Matched) / float64(s.Total) * 100))
}

// Rank filters the catalog for the user, scores every eligible program
// and returns the results ordered by score descending. Ties keep catalog
// order.
func Rank(programs []catalog.Program, user profile.UserProfile, facets FacetFilters, matcher FacetMatcher, scorer Scorer) ([]Result, Summary, error) {
	filtered, err := Filter(programs, user, facets, matcher)
	if err != nil {
		return nil, Summary{}, err
	}

	results := make([]Result, 0, len(filtered))
	for i := range filtered {
		results = append(results, Result{
			Program: filtered[i],
			Score:   scorer.Score(&filtered[i], user),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, Summary{Total: len(programs), Matched: len(filtered)}, nil
}

// Paginate returns the given page of results (1-based). Pages past the
// end are empty; a size of zero or less returns everything.
func Paginate(results []Result, page, size int) []Result {
	if size <= 0 {
		return results
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(results) {
		return nil
	}
	end := start + size
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

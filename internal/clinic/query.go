package clinic

import (
	"sort"
	"strings"
)

// Sort selects the result ordering of a search.
type Sort int

const (
	// SortInsertion keeps the store's original order.
	SortInsertion Sort = iota
	// SortTopRated orders by rating descending, review count descending,
	// then name ascending for full determinism.
	SortTopRated
)

// Criteria are the optional filter/sort parameters of a single query.
// Every field is optional; the zero value matches the whole store.
type Criteria struct {
	// Location matches records whose location or area contains this
	// substring (case-insensitive).
	Location string
	// Category must equal the record's category exactly. An unknown
	// value is a *ValidationError, not an empty result.
	Category Category
	// Keyword matches a substring of the name, any service entry, the
	// location/area or the description (case-insensitive).
	Keyword string
	// MinRating keeps records with rating >= the threshold.
	MinRating *float64
	// MaxResults truncates the final ordered sequence; 0 means unbounded.
	MaxResults int
	Sort       Sort
}

// Search filters and orders the store's snapshot. All constraints are
// AND-combined. An empty store yields an empty result, never an error.
func Search(s *Store, c Criteria) ([]Record, error) {
	if c.Category != "" && !c.Category.Valid() {
		return nil, &ValidationError{Field: "category", Value: string(c.Category)}
	}

	location := strings.ToLower(strings.TrimSpace(c.Location))
	keyword := strings.ToLower(strings.TrimSpace(c.Keyword))

	var out []Record
	for _, rec := range s.All() {
		if location != "" && !matchesLocation(&rec, location) {
			continue
		}
		if c.Category != "" && rec.Category != c.Category {
			continue
		}
		if keyword != "" && !matchesKeyword(&rec, keyword) {
			continue
		}
		if c.MinRating != nil && rec.Rating < *c.MinRating {
			continue
		}
		out = append(out, rec)
	}

	if c.Sort == SortTopRated {
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			if out[i].ReviewCount != out[j].ReviewCount {
				return out[i].ReviewCount > out[j].ReviewCount
			}
			return out[i].Name < out[j].Name
		})
	}

	if c.MaxResults > 0 && len(out) > c.MaxResults {
		out = out[:c.MaxResults]
	}
	return out, nil
}

func matchesLocation(rec *Record, location string) bool {
	return strings.Contains(strings.ToLower(rec.Location), location) ||
		strings.Contains(strings.ToLower(rec.Area), location)
}

func matchesKeyword(rec *Record, keyword string) bool {
	if strings.Contains(strings.ToLower(rec.Name), keyword) {
		return true
	}
	for _, svc := range rec.Services {
		if strings.Contains(strings.ToLower(svc), keyword) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(rec.Location), keyword) ||
		strings.Contains(strings.ToLower(rec.Area), keyword) ||
		strings.Contains(strings.ToLower(rec.Description), keyword)
}

package clinic

import "math"

// Stats summarizes a store snapshot.
type Stats struct {
	Total      int            `json:"total_clinics"`
	MeanRating float64        `json:"average_rating"`
	Categories map[string]int `json:"categories"`
	Locations  map[string]int `json:"locations"`
}

// Aggregate walks the store once and accumulates counts keyed by the
// literal category and location strings. Zero-rating and zero-review
// records are counted like any other; the mean rating of an empty store is
// 0.0, not NaN, so serialized output stays well-formed.
func Aggregate(s *Store) Stats {
	stats := Stats{
		Categories: make(map[string]int),
		Locations:  make(map[string]int),
	}

	var ratingSum float64
	for _, rec := range s.All() {
		stats.Total++
		ratingSum += rec.Rating
		stats.Categories[string(rec.Category)]++
		stats.Locations[rec.Location]++
	}

	if stats.Total > 0 {
		stats.MeanRating = math.Round(ratingSum/float64(stats.Total)*100) / 100
	}
	return stats
}

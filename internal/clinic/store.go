package clinic

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Store holds the in-memory, read-only collection of clinic records.
// The snapshot is immutable after load; Reload swaps it wholesale, so
// concurrent readers never need to coordinate with each other.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

// NewStore builds a store from pre-validated records. Duplicate IDs are
// collapsed with the later record winning, keeping the position of the
// first occurrence.
func NewStore(records []Record) *Store {
	return &Store{records: dedupe(records)}
}

// Load reads every path, parses its JSON array of clinic records and
// concatenates the results. A file that is not valid JSON, or that holds an
// object missing a required field (name, category, location, rating),
// contributes no records and a *FormatError; the remaining files still
// load. The returned error joins all per-file failures, so callers decide
// whether a partial load is acceptable.
//
// Duplicate IDs across files keep the later file's record (last file wins).
func Load(paths ...string) (*Store, error) {
	var (
		records []Record
		errs    []error
	)
	for _, path := range paths {
		recs, err := loadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, recs...)
	}
	return NewStore(records), errors.Join(errs...)
}

// All returns a copied snapshot in insertion order.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Reload replaces the whole snapshot. This is the only mutation the store
// supports; individual records are never updated in place.
func (s *Store) Reload(records []Record) {
	deduped := dedupe(records)
	s.mu.Lock()
	s.records = deduped
	s.mu.Unlock()
}

func loadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}

	// Required fields are modeled as pointers so a missing key can be
	// told apart from a zero value.
	type rawRecord struct {
		ID          string   `json:"id"`
		Name        *string  `json:"name"`
		Category    *string  `json:"category"`
		Location    *string  `json:"location"`
		Area        string   `json:"area"`
		PriceMin    int      `json:"price_min"`
		PriceMax    int      `json:"price_max"`
		Rating      *float64 `json:"rating"`
		ReviewCount int      `json:"review_count"`
		Services    []string `json:"services"`
		Phone       string   `json:"phone"`
		Website     string   `json:"url"`
		SourceURL   string   `json:"source_url"`
		Description string   `json:"description"`
		Features    []string `json:"features"`
		Access      string   `json:"access"`
	}

	var raws []rawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}

	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		if raw.Name == nil || raw.Category == nil || raw.Location == nil || raw.Rating == nil {
			return nil, &FormatError{
				Path: path,
				Err:  fmt.Errorf("record %d: missing required field", i),
			}
		}
		cat, err := ParseCategory(*raw.Category)
		if err != nil {
			return nil, &FormatError{Path: path, Err: fmt.Errorf("record %d: %w", i, err)}
		}
		rec := Record{
			ID:          raw.ID,
			Name:        *raw.Name,
			Category:    cat,
			Location:    *raw.Location,
			Area:        raw.Area,
			PriceMin:    raw.PriceMin,
			PriceMax:    raw.PriceMax,
			Rating:      *raw.Rating,
			ReviewCount: raw.ReviewCount,
			Services:    raw.Services,
			Phone:       raw.Phone,
			Website:     raw.Website,
			SourceURL:   raw.SourceURL,
			Description: raw.Description,
			Features:    raw.Features,
			Access:      raw.Access,
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if err := rec.Validate(); err != nil {
			return nil, &FormatError{Path: path, Err: fmt.Errorf("record %d: %w", i, err)}
		}
		records = append(records, rec)
	}
	return records, nil
}

func dedupe(records []Record) []Record {
	index := make(map[string]int, len(records))
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if pos, ok := index[rec.ID]; ok {
			out[pos] = rec
			continue
		}
		index[rec.ID] = len(out)
		out = append(out, rec)
	}
	return out
}

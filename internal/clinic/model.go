package clinic

import (
	"fmt"
	"strings"
)

// Category is the closed set of service categories a clinic can belong to.
// The scraped source treats this as a free string; keeping it closed here
// prevents a typo from silently producing empty result sets.
type Category string

const (
	CategorySalon    Category = "salon"
	CategoryNail     Category = "nail"
	CategoryEyelash  Category = "eyelash"
	CategoryEsthetic Category = "esthetic"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategorySalon, CategoryNail, CategoryEyelash, CategoryEsthetic}
}

// ParseCategory normalizes and validates a category string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", &ValidationError{Field: "category", Value: s}
	}
	return c, nil
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategorySalon, CategoryNail, CategoryEyelash, CategoryEsthetic:
		return true
	}
	return false
}

// Title returns the category with its first letter upper-cased for display.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Record is one beauty-service provider entry. Records are immutable once
// loaded into a Store; updates replace the whole store snapshot.
type Record struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Location    string   `json:"location"`
	Area        string   `json:"area,omitempty"`
	PriceMin    int      `json:"price_min"`
	PriceMax    int      `json:"price_max"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Services    []string `json:"services"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"url,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Access      string   `json:"access,omitempty"`
}

// Validate checks the record invariants.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Value: r.Name}
	}
	if !r.Category.Valid() {
		return &ValidationError{Field: "category", Value: string(r.Category)}
	}
	if strings.TrimSpace(r.Location) == "" {
		return &ValidationError{Field: "location", Value: r.Location}
	}
	if r.Rating < 0 || r.Rating > 5 {
		return &ValidationError{Field: "rating", Value: fmt.Sprintf("%g", r.Rating)}
	}
	if r.ReviewCount < 0 {
		return &ValidationError{Field: "review_count", Value: fmt.Sprintf("%d", r.ReviewCount)}
	}
	if r.PriceMin > r.PriceMax {
		return &ValidationError{Field: "price_range", Value: fmt.Sprintf("%d-%d", r.PriceMin, r.PriceMax)}
	}
	return nil
}

// PriceRange renders the price pair for display, e.g. "¥3000 - ¥8000".
func (r *Record) PriceRange() string {
	if r.PriceMin == 0 && r.PriceMax == 0 {
		return "N/A"
	}
	return fmt.Sprintf("¥%d - ¥%d", r.PriceMin, r.PriceMax)
}

// FullLocation joins area and location for display ("Shibuya, Tokyo").
func (r *Record) FullLocation() string {
	if r.Location == "" {
		return r.Area
	}
	loc := strings.ToUpper(r.Location[:1]) + r.Location[1:]
	if r.Area == "" {
		return loc
	}
	return r.Area + ", " + loc
}

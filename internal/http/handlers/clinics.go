package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
	"github.com/wolfman30/beauty-advisor/pkg/logging"
)

const (
	maxListResults   = 50
	maxSearchResults = 20
	defaultTopLimit  = 10
)

// ClinicConfig holds the clinic handler's dependencies.
type ClinicConfig struct {
	Store  *clinic.Store
	Logger *logging.Logger
}

// ClinicHandler serves the read-only clinic endpoints.
type ClinicHandler struct {
	store  *clinic.Store
	logger *logging.Logger
}

func NewClinicHandler(cfg ClinicConfig) *ClinicHandler {
	if cfg.Store == nil {
		panic("handlers: clinic store cannot be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &ClinicHandler{store: cfg.Store, logger: cfg.Logger}
}

type clinicListResponse struct {
	Clinics []clinic.Record `json:"clinics"`
	Count   int             `json:"count"`
}

// List returns the loaded clinics, optionally filtered by location and
// category query parameters.
// Route: GET /api/clinics
func (h *ClinicHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := clinic.Criteria{
		Location:   r.URL.Query().Get("location"),
		MaxResults: maxListResults,
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		category, err := clinic.ParseCategory(raw)
		if err != nil {
			http.Error(w, "unknown category: "+raw, http.StatusBadRequest)
			return
		}
		criteria.Category = category
	}

	records, err := clinic.Search(h.store, criteria)
	if err != nil {
		h.logger.Error("clinic list failed", "error", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, clinicListResponse{Clinics: emptyIfNil(records), Count: len(records)})
}

// Search performs a keyword search over the clinic corpus.
// Route: GET /api/clinics/search?q=...
func (h *ClinicHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}

	records, err := clinic.Search(h.store, clinic.Criteria{
		Keyword:    q,
		MaxResults: maxSearchResults,
	})
	if err != nil {
		h.logger.Error("clinic search failed", "error", err, "q", q)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, clinicListResponse{Clinics: emptyIfNil(records), Count: len(records)})
}

// TopRated returns the highest-rated clinics.
// Route: GET /api/clinics/top?limit=N
func (h *ClinicHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}
	if limit > maxListResults {
		limit = maxListResults
	}

	records, err := clinic.Search(h.store, clinic.Criteria{
		Sort:       clinic.SortTopRated,
		MaxResults: limit,
	})
	if err != nil {
		h.logger.Error("top rated lookup failed", "error", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, clinicListResponse{Clinics: emptyIfNil(records), Count: len(records)})
}

// Stats returns aggregate statistics over the loaded clinics.
// Route: GET /api/stats
func (h *ClinicHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, clinic.Aggregate(h.store))
}

func emptyIfNil(records []clinic.Record) []clinic.Record {
	if records == nil {
		return []clinic.Record{}
	}
	return records
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HealthHandler reports liveness and how much data is loaded.
type HealthHandler struct {
	store *clinic.Store
}

func NewHealthHandler(store *clinic.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

type healthResponse struct {
	Status  string `json:"status"`
	Clinics int    `json:"clinics_loaded"`
}

// Health is the liveness probe.
// Route: GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	clinics := 0
	if h.store != nil {
		clinics = h.store.Len()
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Clinics: clinics})
}

// Home describes the API surface for anyone hitting the root path.
// Route: GET /
func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "beauty-advisor",
		"endpoints": map[string]string{
			"POST /api/chat":          "ask the advisor a question",
			"GET /api/clinics":        "list clinics (location, category filters)",
			"GET /api/clinics/search": "keyword search (q parameter)",
			"GET /api/clinics/top":    "top rated clinics (limit parameter)",
			"GET /api/stats":          "aggregate statistics",
			"GET /health":             "health check",
		},
	})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
)

func handlerStore(t *testing.T) *clinic.Store {
	t.Helper()
	records := make([]clinic.Record, 0, 60)
	for i := 0; i < 60; i++ {
		records = append(records, clinic.Record{
			ID:          "salon_tokyo_" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Name:        "Tokyo Salon " + string(rune('A'+i%26)),
			Category:    clinic.CategorySalon,
			Location:    "tokyo",
			Area:        "Shibuya",
			Rating:      4.0,
			ReviewCount: i,
			Services:    []string{"Hair Cut"},
		})
	}
	records = append(records, clinic.Record{
		ID:          "nail_osaka_1",
		Name:        "Osaka Nail Studio 1",
		Category:    clinic.CategoryNail,
		Location:    "osaka",
		Area:        "Umeda",
		Rating:      4.9,
		ReviewCount: 300,
		Services:    []string{"Gel Nails"},
	})
	return clinic.NewStore(records)
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) clinicListResponse {
	t.Helper()
	var resp clinicListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, rr.Body.String())
	}
	return resp
}

func TestClinicListCapsResults(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: handlerStore(t)})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/clinics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	resp := decodeList(t, rr)
	if resp.Count != 50 || len(resp.Clinics) != 50 {
		t.Errorf("count = %d with %d clinics, want the 50 cap", resp.Count, len(resp.Clinics))
	}
}

func TestClinicListFiltersByCategory(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: handlerStore(t)})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/clinics?category=nail", nil))

	resp := decodeList(t, rr)
	if resp.Count != 1 || resp.Clinics[0].ID != "nail_osaka_1" {
		t.Errorf("unexpected filtered result: %+v", resp)
	}
}

func TestClinicListRejectsUnknownCategory(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: handlerStore(t)})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/clinics?category=barber", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestClinicSearchRequiresQuery(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: handlerStore(t)})

	rr := httptest.NewRecorder()
	h.Search(rr, httptest.NewRequest(http.MethodGet, "/api/clinics/search", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when q is missing", rr.Code)
	}
}

func TestClinicSearchCapsResults(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: handlerStore(t)})

	rr := httptest.NewRecorder()
	h.Search(rr, httptest.NewRequest(http.MethodGet, "/api/clinics/search?q=hair", nil))

	resp := decodeList(t, rr)
	if resp.Count != 20 {
		t.Errorf("count = %d, want the 20 cap", resp.Count)
	}
}

func TestClinicSearchEmptyResultIsAnArray(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: clinic.NewStore(nil)})

	rr := httptest.NewRecorder()
	h.Search(rr, httptest.NewRequest(http.MethodGet, "/api/clinics/search?q=anything", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !json.Valid([]byte(body)) || !containsJSONArray(body) {
		t.Errorf("empty result should serialize as [], got %s", body)
	}
}

func containsJSONArray(body string) bool {
	var resp struct {
		Clinics []clinic.Record `json:"clinics"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return false
	}
	return resp.Clinics != nil
}

func TestClinicTopRated(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: handlerStore(t)})

	rr := httptest.NewRecorder()
	h.TopRated(rr, httptest.NewRequest(http.MethodGet, "/api/clinics/top?limit=2", nil))

	resp := decodeList(t, rr)
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	if resp.Clinics[0].ID != "nail_osaka_1" {
		t.Errorf("first clinic = %s, want the highest rated", resp.Clinics[0].ID)
	}
}

func TestClinicTopRatedLimitValidation(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: handlerStore(t)})

	rr := httptest.NewRecorder()
	h.TopRated(rr, httptest.NewRequest(http.MethodGet, "/api/clinics/top?limit=abc", nil))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a bad limit", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.TopRated(rr, httptest.NewRequest(http.MethodGet, "/api/clinics/top?limit=500", nil))
	resp := decodeList(t, rr)
	if resp.Count != 50 {
		t.Errorf("count = %d, want the 50 cap for oversized limits", resp.Count)
	}
}

func TestClinicStats(t *testing.T) {
	h := NewClinicHandler(ClinicConfig{Store: handlerStore(t)})

	rr := httptest.NewRecorder()
	h.Stats(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	var stats clinic.Stats
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if stats.Total != 61 {
		t.Errorf("total = %d, want 61", stats.Total)
	}
	if stats.Categories["salon"] != 60 || stats.Categories["nail"] != 1 {
		t.Errorf("unexpected category breakdown: %+v", stats.Categories)
	}
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler(handlerStore(t))

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp healthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "healthy" || resp.Clinics != 61 {
		t.Errorf("health = %+v", resp)
	}
}

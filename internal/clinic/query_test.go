package clinic

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func testStore() *Store {
	return NewStore([]Record{
		{
			ID: "salon_tokyo_1", Name: "Shibuya Beauty Salon", Category: CategorySalon,
			Location: "tokyo", Area: "Shibuya", PriceMin: 3000, PriceMax: 8000,
			Rating: 4.8, ReviewCount: 150, Services: []string{"Hair Cut", "Head Spa"},
		},
		{
			ID: "nail_osaka_1", Name: "Umeda Nail Studio", Category: CategoryNail,
			Location: "osaka", Area: "Umeda", PriceMin: 4000, PriceMax: 9000,
			Rating: 4.6, ReviewCount: 125, Services: []string{"Gel Nails", "Nail Art"},
		},
		{
			ID: "nail_osaka_2", Name: "Namba Nail Atelier", Category: CategoryNail,
			Location: "osaka", Area: "Namba", PriceMin: 3500, PriceMax: 7000,
			Rating: 4.6, ReviewCount: 200, Services: []string{"Manicure", "Pedicure"},
		},
		{
			ID: "esthetic_kyoto_1", Name: "Gion Esthetic House", Category: CategoryEsthetic,
			Location: "kyoto", Area: "Gion", PriceMin: 6000, PriceMax: 15000,
			Rating: 3.0, ReviewCount: 10, Services: []string{"Facial", "Body Treatment"},
		},
	})
}

func TestSearchNoCriteriaReturnsAllInOrder(t *testing.T) {
	store := testStore()
	got, err := Search(store, Criteria{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != store.Len() {
		t.Fatalf("len = %d, want %d", len(got), store.Len())
	}
	for i, rec := range store.All() {
		if got[i].ID != rec.ID {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, rec.ID)
		}
	}
}

func TestSearchConstraintsAreSatisfied(t *testing.T) {
	store := testStore()
	minRating := 4.5
	criteria := Criteria{
		Location:  "osaka",
		Category:  CategoryNail,
		Keyword:   "nail",
		MinRating: &minRating,
	}

	got, err := Search(store, criteria)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected matches")
	}
	for _, rec := range got {
		if !strings.Contains(strings.ToLower(rec.Location), "osaka") &&
			!strings.Contains(strings.ToLower(rec.Area), "osaka") {
			t.Errorf("%s violates location constraint", rec.ID)
		}
		if rec.Category != CategoryNail {
			t.Errorf("%s violates category constraint", rec.ID)
		}
		if rec.Rating < minRating {
			t.Errorf("%s violates rating constraint", rec.ID)
		}
	}
}

func TestSearchKeywordMatchesServices(t *testing.T) {
	got, err := Search(testStore(), Criteria{Keyword: "head spa"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "salon_tokyo_1" {
		t.Fatalf("keyword over services failed: %v", got)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	got, err := Search(testStore(), Criteria{Location: "OSAKA", Keyword: "NAIL"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestSearchTopRatedOrdering(t *testing.T) {
	// Ratings [4.8, 4.6, 4.6, 3.0], review counts [150, 125, 200, 10]:
	// the 200-review 4.6 must come before the 125-review 4.6.
	got, err := Search(testStore(), Criteria{Sort: SortTopRated})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	want := []string{"salon_tokyo_1", "nail_osaka_2", "nail_osaka_1", "esthetic_kyoto_1"}
	var ids []string
	for _, rec := range got {
		ids = append(ids, rec.ID)
	}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}

func TestSearchTopRatedNameTieBreak(t *testing.T) {
	store := NewStore([]Record{
		{ID: "b", Name: "Bravo", Category: CategorySalon, Location: "tokyo", Rating: 4.0, ReviewCount: 10},
		{ID: "a", Name: "Alpha", Category: CategorySalon, Location: "tokyo", Rating: 4.0, ReviewCount: 10},
	})
	got, err := Search(store, Criteria{Sort: SortTopRated})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if got[0].Name != "Alpha" {
		t.Errorf("equal rating and reviews must tie-break by name, got %q first", got[0].Name)
	}
}

func TestSearchMaxResults(t *testing.T) {
	got, err := Search(testStore(), Criteria{Sort: SortTopRated, MaxResults: 2})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "salon_tokyo_1" {
		t.Errorf("truncation must happen after ordering")
	}
}

func TestSearchResultNeverExceedsStore(t *testing.T) {
	store := testStore()
	criterias := []Criteria{
		{},
		{Keyword: "beauty"},
		{Location: "tokyo"},
		{Sort: SortTopRated},
	}
	for _, c := range criterias {
		got, err := Search(store, c)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) > store.Len() {
			t.Errorf("criteria %+v returned more records than the store holds", c)
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	store := testStore()
	c := Criteria{Location: "osaka", Sort: SortTopRated}
	first, err := Search(store, c)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	second, err := Search(store, c)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical criteria must return identical ordered sequences")
	}
}

func TestSearchEmptyStore(t *testing.T) {
	got, err := Search(NewStore(nil), Criteria{Keyword: "anything"})
	if err != nil {
		t.Fatalf("empty store is not an error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSearchUnknownCategory(t *testing.T) {
	_, err := Search(testStore(), Criteria{Category: "barber"})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("unknown category must be a ValidationError, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"salon", CategorySalon, false},
		{" Nail ", CategoryNail, false},
		{"EYELASH", CategoryEyelash, false},
		{"esthetic", CategoryEsthetic, false},
		{"barber", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

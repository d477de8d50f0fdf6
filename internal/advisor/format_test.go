package advisor

import (
	"strings"
	"testing"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
)

func TestRenderStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{4.6, "★★★★"},
		{5.0, "★★★★★"},
		{0.9, ""},
		{-1, ""},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		if got := renderStars(tt.rating); got != tt.want {
			t.Errorf("renderStars(%g) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestFormatRecord(t *testing.T) {
	rec := clinic.Record{
		Name:        "Osaka Nail Studio 1",
		Category:    clinic.CategoryNail,
		Location:    "osaka",
		Area:        "Umeda",
		PriceMin:    4000,
		PriceMax:    10000,
		Rating:      4.6,
		ReviewCount: 200,
		Services:    []string{"Gel Nails", "Nail Art"},
		Phone:       "06-1234-5678",
		Website:     "https://example.com",
	}

	out := formatRecord(&rec)
	for _, want := range []string{
		"Osaka Nail Studio 1",
		"Category: Nail",
		"Location: Umeda, Osaka",
		"★★★★ 4.6/5 (200 reviews)",
		"Gel Nails, Nail Art",
		"¥4000 - ¥10000",
		"Phone: 06-1234-5678",
		"Website: https://example.com",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("formatRecord missing %q:\n%s", want, out)
		}
	}
}

func TestFormatRecordOmitsEmptyOptionalFields(t *testing.T) {
	rec := clinic.Record{
		Name:     "Bare Clinic",
		Category: clinic.CategorySalon,
		Location: "tokyo",
		Rating:   4.0,
	}

	out := formatRecord(&rec)
	if strings.Contains(out, "Phone:") || strings.Contains(out, "Website:") || strings.Contains(out, "Services:") {
		t.Errorf("formatRecord rendered empty optional fields:\n%s", out)
	}
	if !strings.Contains(out, "Price Range: N/A") {
		t.Errorf("formatRecord missing N/A price range:\n%s", out)
	}
}

func TestFormatTopRatedEmpty(t *testing.T) {
	if got := formatTopRated(nil); !strings.Contains(got, "No clinics") {
		t.Errorf("formatTopRated(nil) = %q", got)
	}
}

func TestFormatStats(t *testing.T) {
	stats := clinic.Stats{
		Total:      3,
		MeanRating: 4.13,
		Categories: map[string]int{"salon": 2, "nail": 1},
		Locations:  map[string]int{"tokyo": 3},
	}

	out := formatStats(stats)
	for _, want := range []string{
		"Total Clinics: 3",
		"Average Rating: 4.13/5",
		"- Nail: 1",
		"- Salon: 2",
		"- Tokyo: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("formatStats missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Nail") > strings.Index(out, "Salon") {
		t.Errorf("category keys not sorted:\n%s", out)
	}
}

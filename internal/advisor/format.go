package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
)

const helpMessage = `I can help you:
- Find beauty clinics by location or service
- Show the top-rated clinics ("/top" or "top rated")
- Show clinic statistics ("/stats" or "statistics")

Try asking me something like:
- "Find me a salon in Shibuya"
- "What are the best rated clinics?"
- "I'm looking for facial treatments"`

const fallbackMessage = `I'm here to help you find the perfect beauty clinic in Japan, ` +
	`but I didn't recognize a location or service in that. ` +
	`Try mentioning a city (Tokyo, Osaka, Kyoto) or a service (nails, hair, facial), ` +
	`or use /help, /top or /stats.`

// renderStars draws one filled star per whole rating point, e.g. 4.6 -> ★★★★.
func renderStars(rating float64) string {
	n := int(rating)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n)
}

// formatRecord renders one clinic as a structured text block.
func formatRecord(rec *clinic.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", rec.Name)
	fmt.Fprintf(&sb, "   Category: %s\n", rec.Category.Title())
	fmt.Fprintf(&sb, "   Location: %s\n", rec.FullLocation())
	fmt.Fprintf(&sb, "   Rating: %s %.1f/5 (%d reviews)\n", renderStars(rec.Rating), rec.Rating, rec.ReviewCount)
	if len(rec.Services) > 0 {
		fmt.Fprintf(&sb, "   Services: %s\n", strings.Join(rec.Services, ", "))
	}
	fmt.Fprintf(&sb, "   Price Range: %s\n", rec.PriceRange())
	if rec.Phone != "" {
		fmt.Fprintf(&sb, "   Phone: %s\n", rec.Phone)
	}
	if rec.Website != "" {
		fmt.Fprintf(&sb, "   Website: %s\n", rec.Website)
	}
	return sb.String()
}

func formatRecords(records []clinic.Record) string {
	blocks := make([]string, len(records))
	for i := range records {
		blocks[i] = formatRecord(&records[i])
	}
	return strings.Join(blocks, "\n")
}

func formatTopRated(records []clinic.Record) string {
	if len(records) == 0 {
		return "No clinics are loaded yet."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Top %d Rated Clinics:\n\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(&sb, "%d. %s - %.1f/5 %s\n", i+1, rec.Name, rec.Rating, renderStars(rec.Rating))
		fmt.Fprintf(&sb, "   %s\n", rec.FullLocation())
		fmt.Fprintf(&sb, "   %s\n", rec.PriceRange())
	}
	return sb.String()
}

func formatStats(stats clinic.Stats) string {
	var sb strings.Builder
	sb.WriteString("Clinic Statistics:\n\n")
	fmt.Fprintf(&sb, "Total Clinics: %d\n", stats.Total)
	fmt.Fprintf(&sb, "Average Rating: %.2f/5\n", stats.MeanRating)

	sb.WriteString("\nCategories:\n")
	for _, key := range sortedKeys(stats.Categories) {
		fmt.Fprintf(&sb, "  - %s: %d\n", titleCase(key), stats.Categories[key])
	}
	sb.WriteString("\nLocations:\n")
	for _, key := range sortedKeys(stats.Locations) {
		fmt.Fprintf(&sb, "  - %s: %d\n", titleCase(key), stats.Locations[key])
	}
	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

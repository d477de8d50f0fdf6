package advisor

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
)

// Vocabulary is the fixed set of location and category tokens the advisor
// recognizes in free text. It can be overridden from a YAML file so new
// cities ship without a rebuild.
type Vocabulary struct {
	// Locations maps a canonical location to the area names inside it.
	// Matching any area implies the location.
	Locations map[string][]string `yaml:"locations"`
	// Categories maps a spoken synonym to its canonical category.
	Categories map[string]string `yaml:"categories"`
}

// DefaultVocabulary covers the cities and synonyms of the bundled sample
// data.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Locations: map[string][]string{
			"tokyo": {"Shibuya", "Shinjuku", "Ginza", "Harajuku", "Roppongi"},
			"osaka": {"Umeda", "Namba", "Shinsaibashi", "Tennoji", "Kyobashi"},
			"kyoto": {"Kawaramachi", "Gion", "Arashiyama", "Kyoto Station", "Sanjo"},
		},
		Categories: map[string]string{
			"salon":    "salon",
			"hair":     "salon",
			"nail":     "nail",
			"nails":    "nail",
			"manicure": "nail",
			"eyelash":  "eyelash",
			"lash":     "eyelash",
			"lashes":   "eyelash",
			"esthetic": "esthetic",
			"facial":   "esthetic",
			"spa":      "esthetic",
		},
	}
}

// LoadVocabulary reads a vocabulary override from a YAML file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("advisor: read vocabulary: %w", err)
	}
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("advisor: parse vocabulary: %w", err)
	}
	if len(v.Locations) == 0 && len(v.Categories) == 0 {
		return nil, fmt.Errorf("advisor: vocabulary %s is empty", path)
	}
	return &v, nil
}

// ExtractCriteria scans the utterance for known tokens and builds query
// criteria from whatever was found. The second return value reports
// whether any token was recognized at all.
//
// When several category synonyms occur, the one appearing earliest in the
// utterance wins ("nail salons" is a nail query, not a salon query); ties
// on position go to the longer synonym.
func (v *Vocabulary) ExtractCriteria(utterance string) (clinic.Criteria, bool) {
	lower := strings.ToLower(utterance)
	var criteria clinic.Criteria
	found := false

	// Sorted iteration keeps extraction deterministic when an utterance
	// mentions more than one known place.
	locations := make([]string, 0, len(v.Locations))
	for location := range v.Locations {
		locations = append(locations, location)
	}
	sort.Strings(locations)

scan:
	for _, location := range locations {
		if strings.Contains(lower, strings.ToLower(location)) {
			criteria.Location = location
			found = true
			break
		}
		for _, area := range v.Locations[location] {
			if strings.Contains(lower, strings.ToLower(area)) {
				criteria.Location = area
				found = true
				break scan
			}
		}
	}

	bestPos := -1
	bestLen := 0
	for synonym, category := range v.Categories {
		pos := strings.Index(lower, synonym)
		if pos < 0 {
			continue
		}
		if bestPos == -1 || pos < bestPos || (pos == bestPos && len(synonym) > bestLen) {
			bestPos = pos
			bestLen = len(synonym)
			criteria.Category = clinic.Category(category)
		}
	}
	if bestPos >= 0 {
		found = true
	}

	if strings.Contains(lower, "best") || strings.Contains(lower, "top rated") {
		criteria.Sort = clinic.SortTopRated
		found = true
	}
	if strings.Contains(lower, "highly rated") || strings.Contains(lower, "high rating") {
		minRating := 4.0
		criteria.MinRating = &minRating
		criteria.Sort = clinic.SortTopRated
		found = true
	}

	return criteria, found
}

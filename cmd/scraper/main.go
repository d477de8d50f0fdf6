package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
	"github.com/wolfman30/beauty-advisor/internal/scrape"
	"github.com/wolfman30/beauty-advisor/pkg/logging"
)

func main() {
	var (
		location = flag.String("location", "", "city to generate data for (tokyo, osaka, kyoto); empty means all")
		category = flag.String("category", "", "category to generate (salon, nail, eyelash, esthetic); empty means all")
		count    = flag.Int("count", 5, "records per city/category pair")
		output   = flag.String("output", "data/clinics.json", "output JSON file")
	)
	flag.Parse()

	logger := logging.NewText("info", os.Stderr)

	records, err := generate(*location, *category, *count)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := scrape.SaveJSON(*output, records); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info("dataset written", "file", *output, "clinics", len(records))
}

func generate(location, category string, count int) ([]clinic.Record, error) {
	if location == "" && category == "" {
		return scrape.GenerateAll(count)
	}

	locations := scrape.Locations()
	if location != "" {
		locations = []string{strings.ToLower(location)}
	}
	categories := clinic.Categories()
	if category != "" {
		parsed, err := clinic.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("scraper: %w", err)
		}
		categories = []clinic.Category{parsed}
	}

	var all []clinic.Record
	for _, loc := range locations {
		for _, cat := range categories {
			records, err := scrape.Generate(loc, cat, count)
			if err != nil {
				return nil, err
			}
			all = append(all, records...)
		}
	}
	return all, nil
}

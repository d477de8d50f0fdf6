package semantic

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/vecgo"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
)

// Searcher is the optional semantic-search seam. The query engine never
// depends on it; implementations that are unavailable return no results.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]clinic.Record, error)
}

// Disabled is the no-op searcher used when semantic search is off.
type Disabled struct{}

func (Disabled) Search(context.Context, string, int) ([]clinic.Record, error) {
	return nil, nil
}

// VectorSearcher answers queries with cosine similarity over TF-IDF
// embeddings of the clinic corpus, held in an embedded vecgo flat index.
// The index is built once from a store snapshot and is immutable after.
type VectorSearcher struct {
	db       *vecgo.Vecgo[string]
	embedder *tfidfEmbedder
	byID     map[string]clinic.Record
}

// NewVectorSearcher indexes the store's current snapshot.
func NewVectorSearcher(ctx context.Context, store *clinic.Store) (*VectorSearcher, error) {
	records := store.All()
	if len(records) == 0 {
		return nil, fmt.Errorf("semantic: nothing to index")
	}

	corpus := make([]string, len(records))
	for i, rec := range records {
		corpus[i] = documentText(&rec)
	}

	embedder, err := newTFIDFEmbedder(corpus)
	if err != nil {
		return nil, err
	}

	db, err := vecgo.Flat[string](embedder.dimension).Cosine().Build()
	if err != nil {
		return nil, fmt.Errorf("semantic: build index: %w", err)
	}

	byID := make(map[string]clinic.Record, len(records))
	for i, rec := range records {
		byID[rec.ID] = rec
		_, err := db.Insert(ctx, vecgo.VectorWithData[string]{
			Vector: embedder.Embed(corpus[i]),
			Data:   rec.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("semantic: index %s: %w", rec.ID, err)
		}
	}

	return &VectorSearcher{db: db, embedder: embedder, byID: byID}, nil
}

// Search returns up to topK records ranked by similarity to the query.
// A query sharing no vocabulary with the corpus yields no results.
func (s *VectorSearcher) Search(ctx context.Context, query string, topK int) ([]clinic.Record, error) {
	if topK <= 0 {
		topK = 5
	}
	if topK > len(s.byID) {
		topK = len(s.byID)
	}

	vec := s.embedder.Embed(query)
	var nonZero bool
	for _, v := range vec {
		if v != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		return nil, nil
	}

	results, err := s.db.KNNSearch(ctx, vec, topK)
	if err != nil {
		return nil, fmt.Errorf("semantic: search: %w", err)
	}

	records := make([]clinic.Record, 0, len(results))
	for _, res := range results {
		if rec, ok := s.byID[res.Data]; ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

func documentText(rec *clinic.Record) string {
	parts := []string{
		rec.Name,
		string(rec.Category),
		rec.Location,
		rec.Area,
		strings.Join(rec.Services, " "),
		rec.Description,
	}
	return strings.Join(parts, " ")
}

package semantic

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// tfidfEmbedder turns free text into TF-IDF vectors over a fixed corpus
// vocabulary. It stays fully offline, which keeps semantic search working
// without any embedding API.
type tfidfEmbedder struct {
	vocabulary map[string]int
	idf        []float32
	dimension  int
	tokenRe    *regexp.Regexp
}

var tokenPattern = regexp.MustCompile(`\p{L}+`)

// newTFIDFEmbedder builds the vocabulary and IDF weights from the corpus.
func newTFIDFEmbedder(corpus []string) (*tfidfEmbedder, error) {
	if len(corpus) == 0 {
		return nil, errors.New("semantic: empty corpus")
	}

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, errors.New("semantic: no tokens in corpus")
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	e := &tfidfEmbedder{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float32, len(terms)),
		dimension:  len(terms),
		tokenRe:    tokenPattern,
	}
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		// Smoothed IDF keeps terms present in every document non-zero.
		e.idf[i] = float32(math.Log((1+n)/(1+float64(df[term]))) + 1)
	}
	return e, nil
}

// Embed computes the L2-normalized TF-IDF vector for the text. Tokens
// outside the vocabulary contribute nothing; a fully unknown query embeds
// to the zero vector.
func (e *tfidfEmbedder) Embed(text string) []float32 {
	vec := make([]float32, e.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokenize(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float32(count) / float32(total) * e.idf[idx]
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

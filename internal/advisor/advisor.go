package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wolfman30/beauty-advisor/internal/clinic"
	"github.com/wolfman30/beauty-advisor/internal/llm"
	"github.com/wolfman30/beauty-advisor/internal/observability/metrics"
	"github.com/wolfman30/beauty-advisor/internal/semantic"
	"github.com/wolfman30/beauty-advisor/internal/translate"
)

const systemPrompt = `You are a knowledgeable beauty clinic advisor for Japan.
You help users find salons, nail studios, eyelash studios and esthetic clinics.
Answer from the clinic data provided below. When the data contains matching
clinics, mention them by name with their rating and location. When nothing
matches, say so honestly and suggest the user try a nearby city or another
service. Keep answers short and friendly. Never invent clinics.`

// Advisor turns user utterances into replies, combining the deterministic
// clinic store with optional LLM, translation and semantic-search providers.
// Every provider is best effort; the advisor always answers.
type Advisor struct {
	store      *clinic.Store
	llm        llm.Client
	translator translate.Translator
	semantic   semantic.Searcher
	cache      ReplyCache
	history    HistoryStore
	vocabulary *Vocabulary
	metrics    *metrics.AdvisorMetrics
	logger     *slog.Logger

	providerTimeout time.Duration
	maxResults      int
	sessionID       string
}

// Config carries the optional collaborators of an Advisor. Any nil field
// gets a working default.
type Config struct {
	LLM        llm.Client
	Translator translate.Translator
	Semantic   semantic.Searcher
	Cache      ReplyCache
	History    HistoryStore
	Vocabulary *Vocabulary
	Metrics    *metrics.AdvisorMetrics
	Logger     *slog.Logger

	// ProviderTimeout bounds each optional provider call (default 10s).
	ProviderTimeout time.Duration
	// MaxResults caps the clinics rendered in a reply (default 5).
	MaxResults int
}

// New creates an advisor over the given store. The store is required;
// everything else degrades to a deterministic default.
func New(store *clinic.Store, cfg Config) *Advisor {
	if store == nil {
		panic("advisor: store cannot be nil")
	}
	a := &Advisor{
		store:           store,
		llm:             cfg.LLM,
		translator:      cfg.Translator,
		semantic:        cfg.Semantic,
		cache:           cfg.Cache,
		history:         cfg.History,
		vocabulary:      cfg.Vocabulary,
		metrics:         cfg.Metrics,
		logger:          cfg.Logger,
		providerTimeout: cfg.ProviderTimeout,
		maxResults:      cfg.MaxResults,
		sessionID:       uuid.NewString(),
	}
	if a.translator == nil {
		a.translator = translate.Noop{}
	}
	if a.semantic == nil {
		a.semantic = semantic.Disabled{}
	}
	if a.cache == nil {
		a.cache = NewMemoryReplyCache(time.Hour)
	}
	if a.history == nil {
		a.history = NewMemoryHistory(0)
	}
	if a.vocabulary == nil {
		a.vocabulary = DefaultVocabulary()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.providerTimeout <= 0 {
		a.providerTimeout = 10 * time.Second
	}
	if a.maxResults <= 0 {
		a.maxResults = 5
	}
	return a
}

// Respond answers one utterance. It never fails: provider errors are logged
// and absorbed into the deterministic path, and the deterministic path
// bottoms out in a fixed fallback message.
func (a *Advisor) Respond(ctx context.Context, utterance string) string {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		a.metrics.ObserveRequest("fallback")
		return fallbackMessage
	}

	utterance = a.translated(ctx, utterance)

	// Slash commands stay deterministic even when an LLM is configured.
	if reply, ok := a.command(utterance); ok {
		a.metrics.ObserveRequest("command")
		a.remember(ctx, utterance, reply)
		return reply
	}

	if a.llm != nil {
		if reply, ok := a.generate(ctx, utterance); ok {
			a.metrics.ObserveRequest("llm")
			a.remember(ctx, utterance, reply)
			return reply
		}
	}

	reply := a.deterministic(ctx, utterance)
	a.remember(ctx, utterance, reply)
	return reply
}

// SessionID identifies this advisor's conversation in the history store.
func (a *Advisor) SessionID() string { return a.sessionID }

// command resolves slash commands and their spoken equivalents.
func (a *Advisor) command(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)
	switch {
	case lower == "/help" || lower == "help":
		return helpMessage, true
	case lower == "/top" || strings.Contains(lower, "top rated") || strings.Contains(lower, "best rated"):
		return a.topRated(), true
	case lower == "/stats" || strings.Contains(lower, "statistics"):
		return formatStats(clinic.Aggregate(a.store)), true
	}
	return "", false
}

func (a *Advisor) topRated() string {
	records, err := clinic.Search(a.store, clinic.Criteria{
		Sort:       clinic.SortTopRated,
		MaxResults: a.maxResults,
	})
	if err != nil {
		return fallbackMessage
	}
	return formatTopRated(records)
}

// deterministic answers from the store alone: cached reply, then vocabulary
// extraction and keyword search, then the fixed fallback.
func (a *Advisor) deterministic(ctx context.Context, utterance string) string {
	key := cacheKey(utterance)
	if reply, ok := a.cache.Get(ctx, key); ok {
		a.metrics.ObserveRequest("cached")
		return reply
	}

	criteria, found := a.vocabulary.ExtractCriteria(utterance)
	if !found {
		if records := a.semanticMatches(ctx, utterance); len(records) > 0 {
			a.metrics.ObserveRequest("search")
			reply := formatRecords(records)
			a.cache.Set(ctx, key, reply)
			return reply
		}
		a.metrics.ObserveRequest("fallback")
		return fallbackMessage
	}

	criteria.MaxResults = a.maxResults
	start := time.Now()
	records, err := clinic.Search(a.store, criteria)
	a.metrics.ObserveSearchDuration(time.Since(start).Seconds())
	if err != nil {
		a.logger.Warn("clinic search rejected criteria", "error", err)
		a.metrics.ObserveRequest("fallback")
		return fallbackMessage
	}
	records = mergeRecords(a.semanticMatches(ctx, utterance), records, a.maxResults)
	if len(records) == 0 {
		a.metrics.ObserveRequest("fallback")
		return fmt.Sprintf("I couldn't find any clinics matching that. %s", fallbackMessage)
	}

	a.metrics.ObserveRequest("search")
	reply := formatRecords(records)
	a.cache.Set(ctx, key, reply)
	return reply
}

// generate asks the LLM for a reply grounded in matching clinic data.
// Any provider failure, timeout or empty completion reports not-ok so the
// caller falls back to the deterministic path.
func (a *Advisor) generate(ctx context.Context, utterance string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, a.providerTimeout)
	defer cancel()

	history, err := a.history.Load(ctx, a.sessionID)
	if err != nil {
		a.logger.Warn("failed to load conversation history", "error", err)
		history = nil
	}
	if len(history) > 10 {
		history = history[len(history)-10:]
	}

	messages := append(history, llm.ChatMessage{Role: llm.ChatRoleUser, Content: utterance})
	resp, err := a.llm.Complete(ctx, llm.Request{
		System:      []string{systemPrompt, a.clinicContext(ctx, utterance)},
		Messages:    messages,
		MaxTokens:   512,
		Temperature: 0.7,
	})
	if err != nil {
		perr := &ProviderError{Provider: "llm", Err: err}
		a.logger.Warn("llm provider failed, using deterministic reply", "error", perr)
		a.metrics.ObserveProviderFailure("llm")
		return "", false
	}
	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		a.metrics.ObserveProviderFailure("llm")
		return "", false
	}
	return reply, true
}

// clinicContext renders the clinics most relevant to the utterance as grounding
// data for the LLM prompt.
func (a *Advisor) clinicContext(ctx context.Context, utterance string) string {
	records := a.semanticMatches(ctx, utterance)
	if len(records) == 0 {
		if criteria, ok := a.vocabulary.ExtractCriteria(utterance); ok {
			criteria.MaxResults = a.maxResults
			records, _ = clinic.Search(a.store, criteria)
		}
	}
	if len(records) == 0 {
		records, _ = clinic.Search(a.store, clinic.Criteria{
			Sort:       clinic.SortTopRated,
			MaxResults: a.maxResults,
		})
	}
	if len(records) == 0 {
		return "Clinic data: no clinics are loaded."
	}
	return "Clinic data:\n" + formatRecords(records)
}

// mergeRecords puts semantic matches ahead of keyword matches, dropping
// duplicates by ID and capping the total.
func mergeRecords(ranked, keyword []clinic.Record, limit int) []clinic.Record {
	seen := make(map[string]bool, len(ranked)+len(keyword))
	out := make([]clinic.Record, 0, limit)
	for _, rec := range append(ranked, keyword...) {
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (a *Advisor) semanticMatches(ctx context.Context, utterance string) []clinic.Record {
	ctx, cancel := context.WithTimeout(ctx, a.providerTimeout)
	defer cancel()

	records, err := a.semantic.Search(ctx, utterance, a.maxResults)
	if err != nil {
		perr := &ProviderError{Provider: "semantic", Err: err}
		a.logger.Warn("semantic search failed", "error", perr)
		a.metrics.ObserveProviderFailure("semantic")
		return nil
	}
	return records
}

// translated runs the ja->en translation seam. On any failure the original
// utterance is used unchanged.
func (a *Advisor) translated(ctx context.Context, utterance string) string {
	ctx, cancel := context.WithTimeout(ctx, a.providerTimeout)
	defer cancel()

	out, err := a.translator.TranslateToEnglish(ctx, utterance)
	if err != nil {
		perr := &ProviderError{Provider: "translate", Err: err}
		a.logger.Warn("translation failed, using original text", "error", perr)
		a.metrics.ObserveProviderFailure("translate")
		return utterance
	}
	if strings.TrimSpace(out) == "" {
		return utterance
	}
	return out
}

func (a *Advisor) remember(ctx context.Context, utterance, reply string) {
	err := a.history.Append(ctx, a.sessionID,
		llm.ChatMessage{Role: llm.ChatRoleUser, Content: utterance},
		llm.ChatMessage{Role: llm.ChatRoleAssistant, Content: reply},
	)
	if err != nil {
		a.logger.Warn("failed to persist conversation history", "error", err)
	}
}

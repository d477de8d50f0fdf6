package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Translator is the narrow seam for Japanese -> English translation. The
// core never requires it; the identity translator is the offline default.
type Translator interface {
	TranslateToEnglish(ctx context.Context, text string) (string, error)
}

// Noop returns the input unchanged. Used when no translation provider is
// configured so the advisor keeps working fully offline.
type Noop struct{}

func (Noop) TranslateToEnglish(_ context.Context, text string) (string, error) {
	return text, nil
}

const defaultBaseURL = "https://translate.googleapis.com"

// GoogleTranslator translates text through the public Google Translate
// endpoint. No credentials are required; failures surface as errors so the
// caller can fall back to the untranslated text.
type GoogleTranslator struct {
	baseURL    string
	httpClient *http.Client
}

// NewGoogleTranslator creates a translator against the given base URL.
// An empty baseURL selects the public endpoint.
func NewGoogleTranslator(baseURL string) *GoogleTranslator {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &GoogleTranslator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// TranslateToEnglish translates Japanese text to English. Empty input is
// returned as-is without a network call.
func (t *GoogleTranslator) TranslateToEnglish(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "ja")
	params.Set("tl", "en")
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := t.baseURL + "/translate_a/single?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("translate: build request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: unexpected status %d", resp.StatusCode)
	}

	// The endpoint answers with nested arrays:
	// [[["translated","original",...], ...], ...]
	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("translate: decode response: %w", err)
	}

	translated, ok := extractSegments(payload)
	if !ok || translated == "" {
		return "", fmt.Errorf("translate: empty translation for %q", text)
	}
	return translated, nil
}

func extractSegments(payload []any) (string, bool) {
	if len(payload) == 0 {
		return "", false
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", false
	}
	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}
	return sb.String(), sb.Len() > 0
}

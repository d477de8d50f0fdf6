package advisor

import "fmt"

// ProviderError wraps a failed optional-provider call (LLM, translation,
// semantic search). It is always caught inside the façade and converted
// into the deterministic fallback, never propagated to callers.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("advisor: provider %s failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/beauty-advisor/internal/llm"
)

// HistoryStore keeps per-session conversation history so the LLM provider
// sees recent context. Sessions expire; history is advisory and losing it
// only degrades reply quality.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, msgs ...llm.ChatMessage) error
	Load(ctx context.Context, sessionID string) ([]llm.ChatMessage, error)
}

// MemoryHistory is the default single-process history store.
type MemoryHistory struct {
	mu       sync.RWMutex
	sessions map[string][]llm.ChatMessage
	limit    int
}

// NewMemoryHistory creates an in-memory history keeping at most limit
// messages per session (0 means 20).
func NewMemoryHistory(limit int) *MemoryHistory {
	if limit <= 0 {
		limit = 20
	}
	return &MemoryHistory{sessions: make(map[string][]llm.ChatMessage), limit: limit}
}

func (h *MemoryHistory) Append(_ context.Context, sessionID string, msgs ...llm.ChatMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	history := append(h.sessions[sessionID], msgs...)
	if len(history) > h.limit {
		history = history[len(history)-h.limit:]
	}
	h.sessions[sessionID] = history
	return nil
}

func (h *MemoryHistory) Load(_ context.Context, sessionID string) ([]llm.ChatMessage, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	history := h.sessions[sessionID]
	out := make([]llm.ChatMessage, len(history))
	copy(out, history)
	return out, nil
}

// RedisHistory persists session history in Redis with a TTL, so a restart
// of the API server does not drop ongoing conversations.
type RedisHistory struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewRedisHistory creates a Redis-backed history store.
func NewRedisHistory(client *redis.Client, ttl time.Duration, tracer trace.Tracer) *RedisHistory {
	if client == nil {
		panic("advisor: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if tracer == nil {
		tracer = otel.Tracer("beauty.internal.advisor.history")
	}
	return &RedisHistory{redis: client, ttl: ttl, tracer: tracer}
}

func (h *RedisHistory) Append(ctx context.Context, sessionID string, msgs ...llm.ChatMessage) error {
	ctx, span := h.tracer.Start(ctx, "advisor.append_history")
	defer span.End()

	history, err := h.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	history = append(history, msgs...)

	data, err := json.Marshal(history)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("advisor: failed to marshal history: %w", err)
	}
	if err := h.redis.Set(ctx, historyKey(sessionID), data, h.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("advisor: failed to persist history: %w", err)
	}
	return nil
}

func (h *RedisHistory) Load(ctx context.Context, sessionID string) ([]llm.ChatMessage, error) {
	ctx, span := h.tracer.Start(ctx, "advisor.load_history")
	defer span.End()

	data, err := h.redis.Get(ctx, historyKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("advisor: failed to load history: %w", err)
	}

	var history []llm.ChatMessage
	if err := json.Unmarshal(data, &history); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("advisor: failed to decode history: %w", err)
	}
	return history, nil
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("advisor:history:%s", sessionID)
}

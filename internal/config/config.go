package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Clinic data files, loaded at startup. Comma separated in the
	// CLINIC_DATA_PATHS environment variable.
	DataPaths []string

	// Optional vocabulary override for the advisor (YAML).
	VocabularyPath string

	// Maximum number of clinics the advisor formats into one reply.
	MaxChatResults int

	// Optional LLM providers. Absence of both keys means the advisor
	// runs fully offline on its deterministic path.
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	// Upper bound for any optional provider call (LLM, translation,
	// semantic search). On expiry the advisor degrades to its
	// deterministic path.
	ProviderTimeout time.Duration

	// Translation provider (Japanese -> English). Disabled by default;
	// the identity translator is used when off.
	TranslateEnabled bool
	TranslateBaseURL string

	// Semantic search over the clinic corpus.
	SemanticSearch bool

	// Optional Redis for the reply cache and conversation history.
	// Empty address means in-memory implementations.
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	ReplyCacheTTL time.Duration
	HistoryTTL    time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DataPaths:        getEnvAsList("CLINIC_DATA_PATHS", []string{"data/clinics.json"}),
		VocabularyPath:   getEnv("ADVISOR_VOCABULARY_PATH", ""),
		MaxChatResults:   getEnvAsInt("ADVISOR_MAX_RESULTS", 5),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ProviderTimeout:  getEnvAsDuration("PROVIDER_TIMEOUT", 10*time.Second),
		TranslateEnabled: getEnvAsBool("TRANSLATE_ENABLED", false),
		TranslateBaseURL: getEnv("TRANSLATE_BASE_URL", ""),
		SemanticSearch:   getEnvAsBool("SEMANTIC_SEARCH", true),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisTLS:         getEnvAsBool("REDIS_TLS", false),
		ReplyCacheTTL:    getEnvAsDuration("REPLY_CACHE_TTL", time.Hour),
		HistoryTTL:       getEnvAsDuration("HISTORY_TTL", 24*time.Hour),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/wolfman30/beauty-advisor/internal/advisor"
	"github.com/wolfman30/beauty-advisor/internal/api/router"
	"github.com/wolfman30/beauty-advisor/internal/clinic"
	appconfig "github.com/wolfman30/beauty-advisor/internal/config"
	"github.com/wolfman30/beauty-advisor/internal/http/handlers"
	"github.com/wolfman30/beauty-advisor/internal/llm"
	"github.com/wolfman30/beauty-advisor/internal/observability/metrics"
	"github.com/wolfman30/beauty-advisor/internal/semantic"
	"github.com/wolfman30/beauty-advisor/internal/translate"
	"github.com/wolfman30/beauty-advisor/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting beauty-advisor API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	store, err := clinic.Load(cfg.DataPaths...)
	if err != nil {
		// Partial loads still return a usable store; log what was skipped.
		logger.Warn("some clinic data files were skipped", "error", err)
	}
	if store == nil || store.Len() == 0 {
		logger.Error("no clinic data loaded", "paths", cfg.DataPaths)
		os.Exit(1)
	}
	logger.Info("clinic data loaded", "clinics", store.Len(), "files", len(cfg.DataPaths))

	advisorCfg := advisor.Config{
		Logger:          logger.WithComponent("advisor").Logger,
		Metrics:         metrics.NewAdvisorMetrics(nil),
		ProviderTimeout: cfg.ProviderTimeout,
		MaxResults:      cfg.MaxChatResults,
	}

	ctx := context.Background()
	advisorCfg.LLM = buildLLM(ctx, cfg, logger)

	if cfg.TranslateEnabled {
		advisorCfg.Translator = translate.NewGoogleTranslator(cfg.TranslateBaseURL)
		logger.Info("translation enabled")
	}

	if cfg.SemanticSearch {
		searcher, err := semantic.NewVectorSearcher(ctx, store)
		if err != nil {
			logger.Warn("semantic search unavailable", "error", err)
		} else {
			advisorCfg.Semantic = searcher
			logger.Info("semantic index built", "clinics", store.Len())
		}
	}

	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, using in-memory cache and history", "error", err)
		} else {
			advisorCfg.Cache = advisor.NewRedisReplyCache(client, cfg.ReplyCacheTTL)
			advisorCfg.History = advisor.NewRedisHistory(client, cfg.HistoryTTL, nil)
			logger.Info("redis connected", "addr", cfg.RedisAddr)
		}
	}

	if cfg.VocabularyPath != "" {
		vocabulary, err := advisor.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			logger.Error("failed to load vocabulary", "error", err, "path", cfg.VocabularyPath)
			os.Exit(1)
		}
		advisorCfg.Vocabulary = vocabulary
	}

	adv := advisor.New(store, advisorCfg)

	routerCfg := &router.Config{
		Logger:         logger,
		ChatHandler:    handlers.NewChatHandler(handlers.ChatConfig{Advisor: adv, Logger: logger}),
		ClinicHandler:  handlers.NewClinicHandler(handlers.ClinicConfig{Store: store, Logger: logger}),
		HealthHandler:  handlers.NewHealthHandler(store),
		MetricsHandler: promhttp.Handler(),
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildLLM assembles the LLM provider chain from configuration. Gemini is
// primary when both keys are present, with OpenAI as fallback. A nil return
// keeps the advisor fully deterministic.
func buildLLM(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) llm.Client {
	var gemini, openai llm.Client

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini client unavailable", "error", err)
		} else {
			gemini = client
		}
	}
	if cfg.OpenAIAPIKey != "" {
		client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			logger.Warn("openai client unavailable", "error", err)
		} else {
			openai = client
		}
	}

	switch {
	case gemini != nil && openai != nil:
		logger.Info("llm configured", "primary", "gemini", "fallback", "openai")
		return llm.NewFallbackClient(gemini, openai, logger.Logger)
	case gemini != nil:
		logger.Info("llm configured", "provider", "gemini")
		return gemini
	case openai != nil:
		logger.Info("llm configured", "provider", "openai")
		return openai
	}
	logger.Info("no llm configured, advisor runs deterministically")
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/wolfman30/beauty-advisor/internal/advisor"
	"github.com/wolfman30/beauty-advisor/internal/clinic"
	appconfig "github.com/wolfman30/beauty-advisor/internal/config"
	"github.com/wolfman30/beauty-advisor/internal/semantic"
	"github.com/wolfman30/beauty-advisor/internal/translate"
	"github.com/wolfman30/beauty-advisor/internal/tui"
	"github.com/wolfman30/beauty-advisor/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	// Text logs to stderr keep the chat view clean.
	logger := logging.NewText(cfg.LogLevel, os.Stderr)

	store, err := clinic.Load(cfg.DataPaths...)
	if err != nil {
		logger.Warn("some clinic data files were skipped", "error", err)
	}
	if store == nil || store.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no clinic data loaded; run the scraper first or set CLINIC_DATA_PATHS")
		os.Exit(1)
	}

	advisorCfg := advisor.Config{
		Logger:          logger.WithComponent("advisor").Logger,
		ProviderTimeout: cfg.ProviderTimeout,
		MaxResults:      cfg.MaxChatResults,
	}
	if cfg.TranslateEnabled {
		advisorCfg.Translator = translate.NewGoogleTranslator(cfg.TranslateBaseURL)
	}
	if cfg.SemanticSearch {
		if searcher, err := semantic.NewVectorSearcher(context.Background(), store); err == nil {
			advisorCfg.Semantic = searcher
		} else {
			logger.Warn("semantic search unavailable", "error", err)
		}
	}
	if cfg.VocabularyPath != "" {
		vocabulary, err := advisor.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load vocabulary:", err)
			os.Exit(1)
		}
		advisorCfg.Vocabulary = vocabulary
	}

	adv := advisor.New(store, advisorCfg)

	p := tea.NewProgram(tui.New(adv), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "advisor client error:", err)
		os.Exit(1)
	}
}

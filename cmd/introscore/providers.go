package main

import (
	"fmt"

	"ai-intro-scoring-service/internal/capability/grammar"
	"ai-intro-scoring-service/internal/capability/grammar/languagetool"
	grammarmock "ai-intro-scoring-service/internal/capability/grammar/mock"
	"ai-intro-scoring-service/internal/capability/sentiment"
	sentimentmock "ai-intro-scoring-service/internal/capability/sentiment/mock"
	"ai-intro-scoring-service/internal/capability/sentiment/vader"
	"ai-intro-scoring-service/internal/config"
	"ai-intro-scoring-service/internal/rubric"
)

// loadRubric resolves the rubric configuration: defaults, optionally
// overridden by a YAML file. Validation failures are fatal at startup.
func loadRubric(cfg *config.Configuration) (*rubric.Config, error) {
	rc := rubric.Default()
	if cfg.Rubric.ConfigPath != "" {
		loaded, err := rubric.LoadFile(cfg.Rubric.ConfigPath)
		if err != nil {
			return nil, err
		}
		rc = loaded
	}
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

func newGrammarChecker(cfg *config.Configuration) (grammar.Checker, error) {
	switch cfg.Grammar.Provider {
	case "languagetool":
		return languagetool.New(cfg.Grammar.Endpoint, cfg.Grammar.Language, cfg.Grammar.Timeout), nil
	case "mock":
		return grammarmock.New(0), nil
	default:
		return nil, fmt.Errorf("unknown grammar provider %q", cfg.Grammar.Provider)
	}
}

func newSentimentAnalyzer(cfg *config.Configuration) (sentiment.Analyzer, error) {
	switch cfg.Sentiment.Provider {
	case "vader":
		return vader.New(), nil
	case "mock":
		return sentimentmock.New(0.9), nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", cfg.Sentiment.Provider)
	}
}

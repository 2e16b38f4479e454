package rubric

import "ai-intro-scoring-service/internal/models"

// scoreLanguage combines grammar-error density and lexical diversity into
// the Language & Grammar category. The grammar error count comes from the
// external checker; ttr is computed locally.
func (e *Engine) scoreLanguage(t transcript, grammarErrors int, ttr float64) models.CategoryScore {
	cfg := e.cfg

	// Errors per 100 words, folded into a quality ratio in [0, 1].
	density := float64(grammarErrors) / float64(t.wordCount()) * 100
	ratio := 1 - minF(density/10, 1)

	grammarTier := mapTiers(cfg.GrammarTiers, ratio)
	vocabTier := mapTiers(cfg.VocabularyTiers, ttr)

	grammarPts := clamp(grammarTier.Points, 0, cfg.GrammarMax)
	vocabPts := clamp(vocabTier.Points, 0, cfg.VocabularyMax)

	return models.CategoryScore{
		Name:    CategoryLanguage,
		Awarded: clamp(grammarPts+vocabPts, 0, cfg.Maxima.Language),
		Maximum: cfg.Maxima.Language,
		Explanation: []models.ExplanationEntry{
			{Signal: "grammar_" + grammarTier.Name, Points: grammarPts},
			{Signal: "vocabulary_" + vocabTier.Name, Points: vocabPts},
		},
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

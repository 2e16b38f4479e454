package rubric

import (
	"strings"

	"ai-intro-scoring-service/internal/models"
)

// countFillers counts filler occurrences. Single-word fillers match whole
// tokens (punctuation trimmed); multi-word fillers match boundary-delimited
// phrases, so "like" in "likely" or "i mean" in "i meant" never count.
func (e *Engine) countFillers(t transcript) int {
	single := make(map[string]struct{})
	var phrases []string
	for _, f := range e.cfg.FillerWords {
		if strings.ContainsRune(f, ' ') {
			phrases = append(phrases, f)
		} else {
			single[f] = struct{}{}
		}
	}

	count := 0
	for _, tok := range t.tokens {
		if _, ok := single[trimToken(tok)]; ok {
			count++
		}
	}
	for _, p := range phrases {
		count += phraseCount(t.lower, p)
	}
	return count
}

// scoreClarity maps filler percentage through the clarity bands. Zero
// fillers land in the top band and keep the full allocation.
func (e *Engine) scoreClarity(t transcript, fillerCount int) (models.CategoryScore, float64) {
	cfg := e.cfg

	pct := 0.0
	if t.wordCount() > 0 {
		pct = float64(fillerCount) / float64(t.wordCount()) * 100
	}

	band := mapBands(cfg.ClarityBands, pct)
	score := models.CategoryScore{
		Name:    CategoryClarity,
		Awarded: clamp(band.Points, 0, cfg.Maxima.Clarity),
		Maximum: cfg.Maxima.Clarity,
		Explanation: []models.ExplanationEntry{
			{Signal: "filler_band_" + band.Name, Points: band.Points},
		},
	}
	return score, pct
}

package rubric

import "ai-intro-scoring-service/internal/models"

// wordsPerMinute derives WPM from the token count under the rubric's fixed
// duration assumption. Duration is never measured from audio.
func (e *Engine) wordsPerMinute(wordCount int) float64 {
	minutes := e.cfg.DurationSeconds / 60
	if minutes <= 0 {
		return 0
	}
	return float64(wordCount) / minutes
}

// scoreRate maps WPM through the ordered rate bands. The band table is
// total: every WPM value, including 0, resolves to exactly one band.
func (e *Engine) scoreRate(wpm float64) models.CategoryScore {
	band := mapBands(e.cfg.RateBands, wpm)
	return models.CategoryScore{
		Name:    CategorySpeechRate,
		Awarded: clamp(band.Points, 0, e.cfg.Maxima.SpeechRate),
		Maximum: e.cfg.Maxima.SpeechRate,
		Explanation: []models.ExplanationEntry{
			{Signal: "wpm_band_" + band.Name, Points: band.Points},
		},
	}
}

package rubric

import "ai-intro-scoring-service/internal/models"

// scoreEngagement maps the compound sentiment value in [-1, 1] onto the
// engagement tiers via a positivity scale p = (compound+1)/2. Strongly
// negative sentiment can never outscore neutral or positive sentiment
// because the tiers are monotonic in p.
func (e *Engine) scoreEngagement(compound float64) models.CategoryScore {
	cfg := e.cfg

	p := (clamp(compound, -1, 1) + 1) / 2
	tier := mapTiers(cfg.EngagementTiers, p)

	return models.CategoryScore{
		Name:    CategoryEngagement,
		Awarded: clamp(tier.Points, 0, cfg.Maxima.Engagement),
		Maximum: cfg.Maxima.Engagement,
		Explanation: []models.ExplanationEntry{
			{Signal: "sentiment_" + tier.Name, Points: tier.Points},
		},
	}
}

// Package vader implements sentiment.Analyzer with the VADER lexicon.
package vader

import (
	"context"
	"sync"

	"github.com/jonreiter/govader"
)

// Analyzer wraps the govader sentiment intensity analyzer. The underlying
// lexicon is loaded once on first use and shared across calls; it is
// read-only after initialization, so concurrent Analyze calls are safe.
type Analyzer struct {
	once  sync.Once
	inner *govader.SentimentIntensityAnalyzer
}

// New creates an Analyzer. Lexicon loading is deferred to the first call.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze returns the VADER compound polarity in [-1, 1].
func (a *Analyzer) Analyze(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	a.once.Do(func() {
		a.inner = govader.NewSentimentIntensityAnalyzer()
	})
	return a.inner.PolarityScores(text).Compound, nil
}

// Package mock provides a deterministic sentiment analyzer for tests.
package mock

import "context"

// Analyzer implements sentiment.Analyzer with a scripted compound value.
type Analyzer struct {
	Compound float64
	// Err, when set, simulates an analyzer failure.
	Err error
}

// New creates a mock analyzer that always returns compound.
func New(compound float64) *Analyzer {
	return &Analyzer{Compound: compound}
}

// Analyze returns the scripted compound value.
func (a *Analyzer) Analyze(ctx context.Context, _ string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if a.Err != nil {
		return 0, a.Err
	}
	return a.Compound, nil
}

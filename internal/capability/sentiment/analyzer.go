// Package sentiment defines the interface for sentiment-analysis capabilities.
package sentiment

import "context"

// Analyzer produces a compound sentiment value in [-1, 1] for a transcript.
// The in-process VADER implementation never fails, but callers must still
// handle errors defensively and fall back to a neutral value.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (float64, error)
}

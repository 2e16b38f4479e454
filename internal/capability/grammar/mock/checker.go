// Package mock provides a deterministic grammar checker for tests and for
// running the service without a LanguageTool deployment.
package mock

import "context"

// Checker implements grammar.Checker with scripted responses.
// The zero value reports zero errors and never fails.
type Checker struct {
	// Errors is the error count returned for every transcript.
	Errors int
	// Err, when set, is returned instead of a count, simulating an outage.
	Err error
}

// New creates a mock checker that reports n errors for any transcript.
func New(n int) *Checker {
	return &Checker{Errors: n}
}

// Check returns the scripted error count, or the scripted failure.
func (c *Checker) Check(ctx context.Context, _ string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.Err != nil {
		return 0, c.Err
	}
	return c.Errors, nil
}

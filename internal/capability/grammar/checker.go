// Package grammar defines the interface for grammar-checking capabilities.
package grammar

import "context"

// Checker counts grammar errors in a transcript.
// Implementations may be network-bound (LanguageTool) and are expected to
// honor context cancellation; callers treat any error as a recoverable
// capability outage, never as a scoring failure.
type Checker interface {
	// Check returns the number of grammar errors found in text.
	Check(ctx context.Context, text string) (int, error)
}

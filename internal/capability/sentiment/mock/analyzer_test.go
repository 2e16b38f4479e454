package mock

import (
	"context"
	"errors"
	"testing"
)

func TestAnalyze_ScriptedCompound(t *testing.T) {
	a := New(0.75)
	compound, err := a.Analyze(context.Background(), "any transcript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if compound != 0.75 {
		t.Errorf("expected compound 0.75, got %v", compound)
	}
}

func TestAnalyze_ScriptedFailure(t *testing.T) {
	a := &Analyzer{Err: errors.New("outage")}
	if _, err := a.Analyze(context.Background(), "any transcript"); err == nil {
		t.Error("expected scripted error")
	}
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	a := New(0.5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.Analyze(ctx, "any transcript"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

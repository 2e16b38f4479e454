// Package models defines the data structures for scoring reports and events.
package models

// ExplanationEntry is a single (signal, contribution) line in a category
// breakdown, kept so consumers can show where points came from.
type ExplanationEntry struct {
	Signal string  `json:"signal"`
	Points float64 `json:"points"`
}

// CategoryScore is the awarded score for one rubric category.
// Invariant: 0 <= Awarded <= Maximum.
type CategoryScore struct {
	Name        string             `json:"name"`
	Awarded     float64            `json:"awarded"`
	Maximum     float64            `json:"maximum"`
	Explanation []ExplanationEntry `json:"explanation"`
}

// DerivedSignals carries the raw measurements behind the category scores,
// exported for transparency and downstream charting.
type DerivedSignals struct {
	WPM              float64  `json:"wpm"`
	FillerCount      int      `json:"filler_count"`
	FillerPercentage float64  `json:"filler_percentage"`
	TTR              float64  `json:"ttr"`
	GrammarErrors    int      `json:"grammar_error_count"`
	SentimentValue   float64  `json:"sentiment_value"`
	Degraded         []string `json:"degraded,omitempty"`
	EmptyTranscript  bool     `json:"empty_transcript,omitempty"`
}

// Report is the engine's sole externally visible artifact. It is built once
// per scoring call and never mutated afterwards. It intentionally carries no
// identifier or timestamp so that identical transcripts produce identical
// JSON; request-scoped identity lives on ReportEvent.
type Report struct {
	TotalScore     float64         `json:"total_score"`
	Categories     []CategoryScore `json:"categories"`
	DerivedSignals DerivedSignals  `json:"derived_signals"`
	Strengths      []string        `json:"strengths"`
	Improvements   []string        `json:"improvements"`
	Feedback       []string        `json:"feedback"`
}

// ReportEvent is the Kafka payload published after a scoring call completes.
type ReportEvent struct {
	EventType  string             `json:"eventType"`
	ReportID   string             `json:"reportId"`
	Timestamp  int64              `json:"timestamp"`
	TotalScore float64            `json:"totalScore"`
	Categories map[string]float64 `json:"categories"`
	Degraded   []string           `json:"degraded,omitempty"`
	Empty      bool               `json:"empty,omitempty"`
}

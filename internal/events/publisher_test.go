package events

import (
	"context"
	"testing"

	"ai-intro-scoring-service/internal/models"
)

func TestNew_DisabledMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"disabled", &Config{Enabled: false, Brokers: []string{"localhost:9092"}}},
		{"no brokers", &Config{Enabled: true, Brokers: []string{}}},
		{"empty brokers", &Config{Enabled: true, Brokers: nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.cfg)
			if p == nil {
				t.Fatal("expected non-nil publisher")
			}
			if p.enabled {
				t.Error("expected publisher to be disabled")
			}
			if p.writer != nil {
				t.Error("expected nil writer when disabled")
			}
		})
	}
}

func TestNew_ConfigValues(t *testing.T) {
	cfg := &Config{
		Enabled:   false,
		Brokers:   []string{"localhost:9092"},
		Topic:     "test.reports",
		Principal: "test-principal",
	}

	p := New(cfg)

	if p.principal != "test-principal" {
		t.Errorf("expected principal 'test-principal', got %s", p.principal)
	}
	if p.topic != "test.reports" {
		t.Errorf("expected topic 'test.reports', got %s", p.topic)
	}
}

func TestPublisher_PublishReport_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false, Topic: "test.reports"})

	event := models.ReportEvent{
		EventType:  "report.scored",
		ReportID:   "rep-123",
		TotalScore: 87.5,
	}
	if err := p.PublishReport(context.Background(), "rep-123", event); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestPublisher_PublishReport_InvalidJSON(t *testing.T) {
	p := New(&Config{Enabled: false})

	// Channels are not JSON-marshalable
	event := make(chan int)
	if err := p.PublishReport(context.Background(), "rep-123", event); err == nil {
		t.Error("expected error for unmarshalable event")
	}
}

func TestPublisher_Close_NoWriter(t *testing.T) {
	p := New(&Config{Enabled: false})

	if err := p.Close(); err != nil {
		t.Errorf("expected no error closing disabled publisher, got %v", err)
	}
}

func TestPublisher_Close_NilWriter(t *testing.T) {
	p := &Publisher{writer: nil}

	if err := p.Close(); err != nil {
		t.Errorf("expected no error closing publisher with nil writer, got %v", err)
	}
}

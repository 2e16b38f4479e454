// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Service holds identity and listener settings.
type Service struct {
	Principal   string
	HTTPPort    string
	MetricsPort string
}

// Rubric holds scoring-engine settings.
type Rubric struct {
	// ConfigPath optionally points at a YAML file overriding rubric
	// tunables (band cut-points, marker tables). Empty means defaults.
	ConfigPath string
}

// Grammar holds grammar-checker capability settings.
type Grammar struct {
	Provider string // languagetool or mock
	Endpoint string
	Language string
	Timeout  time.Duration
}

// Sentiment holds sentiment-analyzer capability settings.
type Sentiment struct {
	Provider string // vader or mock
}

// Kafka holds event publishing settings.
type Kafka struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// Observability holds logging settings.
type Observability struct {
	LogLevel  string
	LogFormat string
}

// Configuration is the root service configuration.
type Configuration struct {
	Service       Service
	Rubric        Rubric
	Grammar       Grammar
	Sentiment     Sentiment
	Kafka         Kafka
	Observability Observability
}

// Load reads configuration from the environment with defaults.
func Load() *Configuration {
	return &Configuration{
		Service: Service{
			Principal:   envOrDefault("SERVICE_PRINCIPAL", "svc-intro-scoring"),
			HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
			MetricsPort: envOrDefault("METRICS_PORT", "9090"),
		},
		Rubric: Rubric{
			ConfigPath: envOrDefault("RUBRIC_CONFIG_PATH", ""),
		},
		Grammar: Grammar{
			Provider: envOrDefault("GRAMMAR_PROVIDER", "mock"),
			Endpoint: envOrDefault("GRAMMAR_ENDPOINT", "http://localhost:8010"),
			Language: envOrDefault("GRAMMAR_LANGUAGE", "en-US"),
			Timeout:  envDuration("GRAMMAR_TIMEOUT", 10*time.Second),
		},
		Sentiment: Sentiment{
			Provider: envOrDefault("SENTIMENT_PROVIDER", "vader"),
		},
		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			Brokers: envList("KAFKA_BROKERS", nil),
			Topic:   envOrDefault("KAFKA_TOPIC", "intro-scoring.reports"),
		},
		Observability: Observability{
			LogLevel:  envOrDefault("LOG_LEVEL", "info"),
			LogFormat: envOrDefault("LOG_FORMAT", "json"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpapi "ai-intro-scoring-service/internal/api/http"
	"ai-intro-scoring-service/internal/app"
	"ai-intro-scoring-service/internal/config"
	"ai-intro-scoring-service/internal/events"
	"ai-intro-scoring-service/internal/observability"
	"ai-intro-scoring-service/internal/rubric"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scoring HTTP service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	application := app.New(cfg)
	application.Start()

	rubricCfg, err := loadRubric(cfg)
	if err != nil {
		return err
	}
	checker, err := newGrammarChecker(cfg)
	if err != nil {
		return err
	}
	analyzer, err := newSentimentAnalyzer(cfg)
	if err != nil {
		return err
	}

	engine := rubric.New(rubricCfg, checker, analyzer,
		rubric.WithCapabilityTimeout(cfg.Grammar.Timeout))

	publisher := events.New(&events.Config{
		Enabled:   cfg.Kafka.Enabled,
		Brokers:   cfg.Kafka.Brokers,
		Topic:     cfg.Kafka.Topic,
		Principal: cfg.Service.Principal,
	})
	defer publisher.Close()

	// Ready once the scoring listener is up; flipped off during shutdown
	// so load balancers drain before connections are closed.
	var ready atomic.Bool
	obs := observability.NewServer(":"+cfg.Service.MetricsPort, func() error {
		if !ready.Load() {
			return errors.New("scoring server not accepting requests")
		}
		return nil
	})
	obs.Start()

	handler := httpapi.NewHandler(engine, publisher)
	srv := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		application.Logger.Info().Str("addr", srv.Addr).Msg("Scoring HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			application.Logger.Fatal().Err(err).Msg("HTTP serve failed")
		}
	}()
	ready.Store(true)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error().Err(err).Msg("HTTP server shutdown error")
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error().Err(err).Msg("Observability server shutdown error")
	}
	application.Shutdown()
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ai-intro-scoring-service/internal/config"
	"ai-intro-scoring-service/internal/observability/logging"
	"ai-intro-scoring-service/internal/rubric"
)

var scoreCmd = &cobra.Command{
	Use:   "score <transcript.txt>",
	Short: "Score a transcript file and print the report JSON",
	Long:  "Reads a UTF-8 transcript from the given file (or stdin when the path is -) and prints the scoring report.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	// Keep stdout clean for the report JSON.
	logging.Init(logging.Config{Level: "error", Format: "json", TimeFormat: time.RFC3339})

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	cfg := config.Load()
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

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	report, err := engine.Score(ctx, string(data))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// Package main provides the entry point for the intro scoring service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "introscore",
	Short: "Spoken self-introduction scoring service",
	Long: "introscore evaluates spoken self-introduction transcripts against a fixed rubric " +
		"and produces an explainable 0-100 score across five weighted categories.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

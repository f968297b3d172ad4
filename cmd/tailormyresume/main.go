// Package main provides the entry point for the TailorMyResume
// optimizer: an HTTP API server and a one-shot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailormyresume",
	Short: "Resume analysis and optimization engine",
	Long:  "TailorMyResume rewrites a resume to better match a job description and reports skill-match, ATS, and keyword metrics alongside a changelog.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

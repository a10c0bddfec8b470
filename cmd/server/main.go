// Package main is the entry point for the hero API server
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hero-api",
	Short: "Hero API server",
	Long:  `Hero API derives complete starting characters from an identity key and serves them over HTTP.`,
}

func main() {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(seedCmd)
}

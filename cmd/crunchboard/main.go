// Package main is the entry point for the crunchboard CLI.
//
// CrunchBoard can be run either as a library (SDK) or as a standalone
// binary. This CLI provides the standalone binary approach.
//
// Usage:
//
//	crunchboard serve                  # Start the demo server with defaults
//	crunchboard serve -c config.yaml   # Start with a config file
//	crunchboard run                    # Execute the workload once, no server
//	crunchboard validate -c config.yaml
//	crunchboard version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "crunchboard",
	Short: "A CPU-workload performance demonstration server",
	Long: `CrunchBoard serves a single demonstration page. Pressing the button
POSTs back to the page, which finds every prime up to a bound by trial
division and multiplies two dense square matrices, both fork-join
parallel across workers, then reports the elapsed time and statistics.

Quick start:
  1. Run: crunchboard serve
  2. Open http://127.0.0.1:8080 in your browser
  3. Click "Run Heavy Computation"

Recent runs are available as JSON at /api/runs.`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this crunchboard binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("crunchboard %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}

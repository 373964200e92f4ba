package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/crunchboard/config"
)

// validateCmd validates a config file without starting the server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a CrunchBoard configuration file without starting the server.

This command parses the YAML, expands environment variables, and
validates all fields. It's useful for CI/CD pipelines or pre-deployment
checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  crunchboard validate -c config.yaml
  crunchboard validate --config /etc/crunchboard/config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	workers := "per-CPU"
	if cfg.Workers > 0 {
		workers = fmt.Sprintf("%d", cfg.Workers)
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Listen address: %s\n", cfg.ListenAddr)
	fmt.Printf("  Prime bound:    %d\n", cfg.PrimeBound)
	fmt.Printf("  Matrix size:    %dx%d\n", cfg.MatrixSize, cfg.MatrixSize)
	fmt.Printf("  Workers:        %s\n", workers)
	fmt.Printf("  History size:   %d\n", cfg.HistorySize)

	return nil
}

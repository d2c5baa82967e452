package main

import (
	"fmt"

	"github.com/jpalmerr/bpdiag/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without running the pipeline.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a bpdiag configuration file without parsing any input.

This command parses the YAML, expands environment variables, and validates
all fields, including that the configured parser can actually be built
(e.g. the regex pattern compiles). It's useful for CI/CD pipelines or
pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  bpdiag validate -c config.yaml
  bpdiag validate --config /etc/bpdiag/config.yaml`,
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

	// building the parser catches errors validation alone cannot,
	// like a pattern that does not compile
	if _, err := config.BuildParser(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	exports := 0
	for _, path := range []string{cfg.Export.Values, cfg.Export.Objects, cfg.Export.Stats} {
		if path != "" {
			exports++
		}
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Parser:     %s\n", cfg.Parser.Type)
	fmt.Printf("  Sources:    %d\n", len(cfg.Sources))
	fmt.Printf("  Thresholds: %v\n", cfg.Thresholds != nil)
	fmt.Printf("  Exports:    %d\n", exports)
	fmt.Printf("  Chart:      %v\n", cfg.Chart.File != "")

	return nil
}

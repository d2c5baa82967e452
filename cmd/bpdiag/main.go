// Package main is the entry point for the bpdiag CLI.
//
// bpdiag can be used either as a library (SDK) or as a standalone binary.
// This CLI provides the standalone binary approach.
//
// Usage:
//
//	bpdiag run data.txt              # Parse files and print statistics
//	bpdiag run -c config.yaml        # Run with a config file
//	bpdiag validate -c config.yaml   # Validate configuration
//	bpdiag version                   # Show version info
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
	Use:   "bpdiag",
	Short: "Parse blood pressure logs and report statistics",
	Long: `bpdiag parses blood pressure readings from plaintext logs, derives
per-channel statistics (min, max, avg for sys, dia and pulse), and can
export the data to JSON or render an SVG chart.

Quick start:
  1. Keep a log file with sys/dia/pulse readings, e.g.:
       136/83/65, 132/82/70
       144/82/86, -, 143/80/68
  2. Run: bpdiag run mylog.txt
  3. Statistics are printed to stderr; add --json for stdout export.

Per-entry parse failures never abort a run: malformed entries are
dropped and everything readable is used.`,
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
	Long:  `Print the version, commit hash, and build date of this bpdiag binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bpdiag %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jpalmerr/bpdiag"
	"github.com/jpalmerr/bpdiag/config"
	"github.com/jpalmerr/bpdiag/internal/chart"
	"github.com/jpalmerr/bpdiag/internal/export"
	"github.com/jpalmerr/bpdiag/internal/report"
	"github.com/jpalmerr/bpdiag/internal/source"
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// runCmd parses input files and reports statistics.
var runCmd = &cobra.Command{
	Use:   "run [flags] [FILENAME...]",
	Short: "Parse input files and report statistics",
	Long: `Parse blood pressure readings from the given files and print
per-channel statistics (min, max, avg) to stderr.

Input files may also come from a config file's sources list; filenames
given on the command line take precedence. An unreadable file is skipped
with a warning; the run fails only if no file can be read at all.

Flags override the corresponding config file settings.

Examples:
  bpdiag run data.txt
  bpdiag run --separator ':' --skip x data.txt
  bpdiag run --json --indent 2 data.txt > readings.json
  bpdiag run --chart bp.svg --light data.txt
  bpdiag run -c bpdiag.yaml`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to config file")

	// parser selection and tuning
	runCmd.Flags().String("parser", "", "parser variant: plain, csv, regex, json")
	runCmd.Flags().String("pattern", "", "match pattern (regex parser)")
	runCmd.Flags().String("delimiter", "", "splits multiple entries on one line (plain parser)")
	runCmd.Flags().String("separator", "", "splits an entry into sys/dia/pulse values")
	runCmd.Flags().String("skip", "", "token denoting a skipped reading")
	runCmd.Flags().String("comma", "", "field separator character (csv parser)")
	runCmd.Flags().IntP("entries", "e", 0, "fixed number of entries per line; 0 = variable")

	// classification
	runCmd.Flags().Bool("classify", false, "classify readings against the default thresholds")

	// JSON export
	runCmd.Flags().BoolP("json", "j", false, "export entries to stdout as an array of [sys, dia, pulse] arrays")
	runCmd.Flags().BoolP("json-obj", "J", false, "export entries to stdout as an array of objects")
	runCmd.Flags().Bool("json-stats", false, "export statistics to stdout as an object")
	runCmd.Flags().Int("indent", 0, "number of spaces used as JSON indent; 0 = compact")

	// chart
	runCmd.Flags().StringP("chart", "f", "", "render an SVG chart to this file")
	runCmd.Flags().Bool("light", false, "render the chart on a light background")
	runCmd.Flags().Bool("no-dots", false, "don't draw dots")
	runCmd.Flags().Bool("no-lines", false, "don't draw lines")
	runCmd.Flags().Bool("fill", false, "fill the area under the lines")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	sources := cfg.Sources
	if len(args) > 0 {
		sources = args
	}
	if len(sources) == 0 {
		return fmt.Errorf("no input files (pass filenames or configure sources)")
	}

	lines, readable := gatherLines(logger, sources)
	if readable == 0 {
		return fmt.Errorf("none of the %d input file(s) could be read", len(sources))
	}

	parser, err := config.BuildParser(cfg, bpdiag.WithTruncationHandler(func(line string, dropped int) {
		logger.Warn("entries truncated to fixed line width", "dropped", dropped, "line", line)
	}))
	if err != nil {
		return fmt.Errorf("failed to build parser: %w", err)
	}

	opts := []bpdiag.Option{
		bpdiag.WithParser(parser),
		bpdiag.WithLogger(logger),
	}
	if t, ok := config.BuildThresholds(cfg); ok {
		opts = append(opts, bpdiag.WithThresholds(t))
	} else if classify, _ := cmd.Flags().GetBool("classify"); classify {
		opts = append(opts, bpdiag.WithThresholds(bpdiag.DefaultThresholds()))
	}

	p, err := bpdiag.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	res, err := p.RunLines(lines)
	if err != nil {
		return err
	}

	logger.Info("run complete",
		"run_id", uuid.NewString(),
		"files", readable,
		"entries", len(res.Entries),
		"values", res.Values,
	)

	fmt.Fprintf(os.Stderr, "Read %d value(s) from %d file(s)...\n", res.Values, readable)
	report.Write(os.Stderr, res)

	return writeOutputs(cmd, cfg, res)
}

// loadRunConfig loads the config file if one was given, otherwise starts
// from defaults, then applies flag overrides.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = &config.Config{Parser: config.ParserConfig{Type: "plain"}}
	}

	applyFlagOverrides(cmd, cfg)
	return cfg, nil
}

// applyFlagOverrides copies explicitly set flags over the config values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("parser") {
		cfg.Parser.Type, _ = flags.GetString("parser")
	}
	if flags.Changed("pattern") {
		cfg.Parser.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("delimiter") {
		cfg.Parser.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Changed("separator") {
		cfg.Parser.Separator, _ = flags.GetString("separator")
	}
	if flags.Changed("skip") {
		cfg.Parser.Skip, _ = flags.GetString("skip")
	}
	if flags.Changed("comma") {
		cfg.Parser.Comma, _ = flags.GetString("comma")
	}
	if flags.Changed("entries") {
		cfg.Parser.EntriesPerLine, _ = flags.GetInt("entries")
	}
	if flags.Changed("indent") {
		cfg.Export.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("chart") {
		cfg.Chart.File, _ = flags.GetString("chart")
	}
	if flags.Changed("light") {
		cfg.Chart.Light, _ = flags.GetBool("light")
	}
	if flags.Changed("no-dots") {
		cfg.Chart.NoDots, _ = flags.GetBool("no-dots")
	}
	if flags.Changed("no-lines") {
		cfg.Chart.NoLines, _ = flags.GetBool("no-lines")
	}
	if flags.Changed("fill") {
		cfg.Chart.Fill, _ = flags.GetBool("fill")
	}
}

// gatherLines reads all readable sources in order, warning about and
// skipping the rest. Returns the combined lines and how many sources
// were readable.
func gatherLines(logger *slog.Logger, sources []string) ([]string, int) {
	var lines []string
	readable := 0

	for _, path := range sources {
		fileLines, err := source.FromFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", path, "error", err.Error())
			continue
		}
		lines = append(lines, fileLines...)
		readable++
	}

	return lines, readable
}

// writeOutputs produces the JSON exports and the chart, as requested by
// flags and config.
func writeOutputs(cmd *cobra.Command, cfg *config.Config, res bpdiag.Result) error {
	flags := cmd.Flags()
	opt := export.Options{Indent: cfg.Export.Indent}

	if on, _ := flags.GetBool("json"); on {
		if err := export.Values(os.Stdout, res.Entries, opt); err != nil {
			return fmt.Errorf("json export: %w", err)
		}
	} else if cfg.Export.Values != "" {
		if err := exportTo(cfg.Export.Values, func(w io.Writer) error {
			return export.Values(w, res.Entries, opt)
		}); err != nil {
			return err
		}
	}

	if on, _ := flags.GetBool("json-obj"); on {
		if err := export.Objects(os.Stdout, res.Entries, opt); err != nil {
			return fmt.Errorf("json object export: %w", err)
		}
	} else if cfg.Export.Objects != "" {
		if err := exportTo(cfg.Export.Objects, func(w io.Writer) error {
			return export.Objects(w, res.Entries, opt)
		}); err != nil {
			return err
		}
	}

	if on, _ := flags.GetBool("json-stats"); on {
		if err := export.Stats(os.Stdout, res, opt); err != nil {
			return fmt.Errorf("json stats export: %w", err)
		}
	} else if cfg.Export.Stats != "" {
		if err := exportTo(cfg.Export.Stats, func(w io.Writer) error {
			return export.Stats(w, res, opt)
		}); err != nil {
			return err
		}
	}

	if cfg.Chart.File != "" {
		chartOpts := chart.DefaultOptions()
		chartOpts.Light = cfg.Chart.Light
		chartOpts.Dots = !cfg.Chart.NoDots
		chartOpts.Lines = !cfg.Chart.NoLines
		chartOpts.Fill = cfg.Chart.Fill

		if err := exportTo(cfg.Chart.File, func(w io.Writer) error {
			return chart.Render(w, res.Entries, chartOpts)
		}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Generated chart: '%s'\n", cfg.Chart.File)
	}

	return nil
}

// exportTo writes one document to a path, with "-" meaning stdout.
func exportTo(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

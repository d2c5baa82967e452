package bpdiag

import (
	"fmt"
	"log/slog"
)

// LineSource supplies raw input lines to a [Pipeline].
//
// Obtaining lines is the only place a whole-source failure can occur:
// a Lines error aborts the run, while individual malformed entries inside
// the returned lines are dropped by the parser without error.
//
// File-backed sources are provided by the CLI collaborator; for in-memory
// input use [StaticLines].
type LineSource interface {
	Lines() ([]string, error)
}

// StaticLines is an in-memory [LineSource] over a fixed slice of lines.
type StaticLines []string

// Lines implements the [LineSource] interface. It never fails.
func (s StaticLines) Lines() ([]string, error) {
	return s, nil
}

// Result is the outcome of one pipeline run.
//
// Entries preserves input order exactly (line-major, then within-line
// order, padding slots included), because exporters and charts key off
// positional alignment. Summary and Classification are derived from the
// same pass.
type Result struct {
	// Entries is the ordered sequence of parsed entries. A nil element is
	// an explicit skip or padding slot.
	Entries []*Measurement

	// Summary holds the per-channel min/max/avg/count statistics.
	Summary Summary

	// Classification tallies threshold classification per channel.
	// Nil unless thresholds were configured via [WithThresholds].
	Classification *ClassificationCounts

	// Values is the number of non-nil entries.
	Values int
}

// Pipeline wires a [Parser] into a statistics [Accumulator].
//
// A Pipeline is created with [New] and run with [Pipeline.Run] (or
// [Pipeline.RunLines] for in-memory input). Each run is an independent
// single-threaded, single-pass fold: the parser's ordered output is
// retained for export while every measurement is folded into a fresh
// accumulator, so a Pipeline may be reused across runs and configurations
// never leak between them.
//
// The typical lifecycle is:
//
//	p, err := bpdiag.New(bpdiag.WithThresholds(bpdiag.DefaultThresholds()))
//	if err != nil {
//	    slog.Error("failed to create pipeline", "error", err)
//	    os.Exit(1)
//	}
//
//	res, err := p.RunLines(lines)
type Pipeline struct {
	parser         Parser
	thresholds     *Thresholds
	logger         *slog.Logger
	entryCallbacks []func(*Measurement)
}

// New creates a [Pipeline] with the given options.
//
// Defaults: a [PlainParser] with default tokens, no thresholds, and
// [slog.Default] for logging. Returns an error if any option is invalid.
//
// Example:
//
//	p, err := bpdiag.New(
//	    bpdiag.WithParser(bpdiag.MustPlainParser(bpdiag.WithEntriesPerLine(4))),
//	    bpdiag.WithThresholds(bpdiag.DefaultThresholds()),
//	)
func New(opts ...Option) (*Pipeline, error) {
	cfg := &pipelineConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	parser := cfg.parser
	if parser == nil {
		parser = MustPlainParser()
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		parser:         parser,
		thresholds:     cfg.thresholds,
		logger:         logger,
		entryCallbacks: cfg.entryCallbacks,
	}, nil
}

// Run obtains lines from src, parses them and folds the result into
// statistics.
//
// A source that cannot produce lines at all is fatal and returns an error,
// as does a parser-level whole-source failure. Per-entry parse failures
// are dropped silently, per the [Parser] contract.
func (p *Pipeline) Run(src LineSource) (Result, error) {
	lines, err := src.Lines()
	if err != nil {
		return Result{}, fmt.Errorf("read source: %w", err)
	}
	return p.RunLines(lines)
}

// RunLines is [Pipeline.Run] over an in-memory line slice.
func (p *Pipeline) RunLines(lines []string) (Result, error) {
	entries, err := p.parser.Parse(lines)
	if err != nil {
		return Result{}, fmt.Errorf("parse: %w", err)
	}

	acc := NewAccumulator()
	var counts *ClassificationCounts
	if p.thresholds != nil {
		counts = &ClassificationCounts{}
	}

	values := 0
	for _, m := range entries {
		acc.Add(m)
		if m != nil {
			values++
			if counts != nil {
				counts.Record(p.thresholds.Classify(*m))
			}
		}
		for _, cb := range p.entryCallbacks {
			invokeEntryCallbackSafe(cb, m, p.logger)
		}
	}

	p.logger.Debug("run complete",
		"lines", len(lines),
		"entries", len(entries),
		"values", values,
	)

	return Result{
		Entries:        entries,
		Summary:        acc.Summary(),
		Classification: counts,
		Values:         values,
	}, nil
}

// Parser returns the configured parser.
func (p *Pipeline) Parser() Parser {
	return p.parser
}

// Thresholds returns the configured classification thresholds and whether
// any were set.
func (p *Pipeline) Thresholds() (Thresholds, bool) {
	if p.thresholds == nil {
		return Thresholds{}, false
	}
	return *p.thresholds, true
}

// invokeEntryCallbackSafe calls an entry callback with panic recovery.
// Panics are logged but do not propagate.
func invokeEntryCallbackSafe(cb func(*Measurement), m *Measurement, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("entry callback panicked", "panic", r)
		}
	}()
	cb(m)
}

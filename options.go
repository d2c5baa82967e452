package bpdiag

import (
	"errors"
	"fmt"
	"log/slog"
)

// pipelineConfig holds mutable state during Pipeline construction.
type pipelineConfig struct {
	parser         Parser
	thresholds     *Thresholds
	logger         *slog.Logger
	entryCallbacks []func(*Measurement)
}

// Option is a function that configures a [Pipeline] instance during
// construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithParser], [WithThresholds], [WithLogger],
// [WithEntryCallback].
type Option func(*pipelineConfig) error

// WithParser selects the parser variant the pipeline feeds its input to.
//
// Any [Parser] implementation is accepted; built-in variants are
// [PlainParser], [CSVParser], [RegexParser] and [JSONParser]. Defaults to
// a [PlainParser] with default tokens.
//
// Example:
//
//	p, err := bpdiag.New(
//	    bpdiag.WithParser(bpdiag.MustRegexParser("")),
//	)
//
// Returns an error if the parser is nil.
func WithParser(parser Parser) Option {
	return func(cfg *pipelineConfig) error {
		if parser == nil {
			return errors.New("parser cannot be nil")
		}
		cfg.parser = parser
		return nil
	}
}

// WithThresholds enables per-channel threshold classification.
//
// When set, every retained measurement is classified as normal, high or
// very-high per channel and the tallies are exposed on
// [Result.Classification]. Use [DefaultThresholds] for the standard limits.
//
// Returns an error if any channel's high bound exceeds its very-high bound.
func WithThresholds(t Thresholds) Option {
	return func(cfg *pipelineConfig) error {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("invalid thresholds: %w", err)
		}
		cfg.thresholds = &t
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the pipeline.
//
// This allows SDK consumers to control where logs are written and in what
// format. If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *pipelineConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithEntryCallback registers a function called once per parsed entry
// during a run, in input order. The callback receives nil for skip and
// padding slots, so positional consumers can track alignment.
//
// Multiple callbacks may be registered by calling WithEntryCallback
// multiple times; they execute in registration order. Callbacks are invoked
// synchronously from the run's single pass; long-running work should be
// dispatched elsewhere. Panics within callbacks are recovered and logged;
// they do not abort the run.
//
// Nil callbacks are silently ignored.
func WithEntryCallback(cb func(*Measurement)) Option {
	return func(cfg *pipelineConfig) error {
		if cb == nil {
			return nil // no-op for nil callback (safe to call)
		}
		cfg.entryCallbacks = append(cfg.entryCallbacks, cb)
		return nil
	}
}

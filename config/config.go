// Package config provides YAML configuration parsing for bpdiag.
//
// This package enables running bpdiag as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	parser: plain
//	sources:
//	  - data/january.txt
//	  - data/february.txt
//
//	thresholds:
//	  sys: {high: 130, very_high: 140}
//	  dia: {high: 85, very_high: 90}
//	  pulse: {high: 90, very_high: 100}
//
//	export:
//	  stats: stats.json
//	  indent: 2
//
//	chart:
//	  file: bp.svg
//	  light: true
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for bpdiag.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Parser selects and configures the parser variant.
	// Can be shorthand ("plain", "csv", "json", "regex:<pattern>") or
	// structured. Defaults to the plain parser.
	Parser ParserConfig `yaml:"parser"`

	// Thresholds enables per-channel classification when present.
	Thresholds *ThresholdsConfig `yaml:"thresholds"`

	// Sources lists the input files, read in order.
	// Values support environment variable substitution: ${VAR} or ${VAR:-default}
	Sources []string `yaml:"sources"`

	// Export configures the JSON export documents.
	Export ExportConfig `yaml:"export"`

	// Chart configures SVG chart rendering.
	Chart ChartConfig `yaml:"chart"`
}

// ParserConfig selects a parser variant and its variant-specific settings.
//
// It supports two formats in YAML:
//
// Shorthand string:
//
//	parser: plain
//	parser: csv
//	parser: json
//	parser: regex:BP (\d+)/(\d+) at (\d+)
//
// Structured object:
//
//	parser:
//	  type: plain
//	  delimiter: ";"
//	  separator: ":"
//	  skip: "x"
//	  entries_per_line: 4
type ParserConfig struct {
	// Type is the parser variant: "plain", "csv", "regex" or "json".
	Type string

	// Delimiter splits one line into multiple entries (plain parser).
	Delimiter string

	// Separator splits one entry into sys/dia/pulse tokens (plain, csv).
	Separator string

	// Skip is the token meaning "no reading taken" (plain, csv).
	Skip string

	// EntriesPerLine fixes the slots emitted per line (plain parser).
	EntriesPerLine int

	// Pattern is the match pattern (regex parser). Empty selects the
	// default sys/dia/pulse pattern.
	Pattern string

	// Comma is the field separator character (csv parser).
	Comma string
}

// ThresholdsConfig holds per-channel classification limits.
type ThresholdsConfig struct {
	Sys   LimitConfig `yaml:"sys"`
	Dia   LimitConfig `yaml:"dia"`
	Pulse LimitConfig `yaml:"pulse"`
}

// LimitConfig holds the two bounds for one channel. Both are exclusive
// lower bounds: a value classifies as high only when strictly greater.
type LimitConfig struct {
	High     int `yaml:"high"`
	VeryHigh int `yaml:"very_high"`
}

// ExportConfig configures the JSON export documents. Each path is an
// output file; "-" writes to stdout; empty disables that document.
type ExportConfig struct {
	// Values exports the ordered entries as an array of [sys, dia, pulse]
	// triples, with null for skipped slots.
	Values string `yaml:"values"`

	// Objects exports the ordered entries as an array of objects.
	Objects string `yaml:"objects"`

	// Stats exports the statistics summary envelope.
	Stats string `yaml:"stats"`

	// Indent is the number of spaces used for indentation. Zero emits
	// compact output.
	Indent int `yaml:"indent"`
}

// ChartConfig configures SVG chart rendering. An empty File disables it.
type ChartConfig struct {
	// File is the chart output path.
	File string `yaml:"file"`

	// Light renders on a light background instead of the default dark one.
	Light bool `yaml:"light"`

	// NoDots suppresses the per-value dots.
	NoDots bool `yaml:"no_dots"`

	// NoLines suppresses the connecting lines.
	NoLines bool `yaml:"no_lines"`

	// Fill fills the area under each line.
	Fill bool `yaml:"fill"`
}

// UnmarshalYAML implements yaml.Unmarshaler for ParserConfig.
func (p *ParserConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		return p.parseShorthand(s)
	}

	if node.Kind == yaml.MappingNode {
		// temporary struct to avoid infinite recursion
		var raw struct {
			Type           string `yaml:"type"`
			Delimiter      string `yaml:"delimiter"`
			Separator      string `yaml:"separator"`
			Skip           string `yaml:"skip"`
			EntriesPerLine int    `yaml:"entries_per_line"`
			Pattern        string `yaml:"pattern"`
			Comma          string `yaml:"comma"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		p.Type = raw.Type
		p.Delimiter = raw.Delimiter
		p.Separator = raw.Separator
		p.Skip = raw.Skip
		p.EntriesPerLine = raw.EntriesPerLine
		p.Pattern = raw.Pattern
		p.Comma = raw.Comma
		return nil
	}

	return fmt.Errorf("parser must be a string or object, got %v", node.Kind)
}

// parseShorthand parses parser shorthand syntax.
//
// Supported formats:
//   - "plain", "csv", "json" → select that variant with defaults
//   - "regex:<pattern>" → regex variant with the given pattern
func (p *ParserConfig) parseShorthand(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if idx := strings.Index(s, ":"); idx != -1 {
		p.Type = s[:idx]
		value := s[idx+1:]

		if p.Type != "regex" {
			return fmt.Errorf("unknown parser shorthand %q", s)
		}
		p.Pattern = value
		return nil
	}

	switch s {
	case "plain", "csv", "json", "regex":
		p.Type = s
	default:
		return fmt.Errorf("unknown parser %q (expected 'plain', 'csv', 'json', or 'regex:pattern')", s)
	}
	return nil
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		// already have an error, skip processing
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in source paths are expanded before validation.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// The parser type defaults to "plain". Environment variables are expanded
// in source paths.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Parser.Type == "" {
		cfg.Parser.Type = "plain"
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	switch c.Parser.Type {
	case "plain", "csv", "regex", "json":
	default:
		return fmt.Errorf("parser: unknown type %q", c.Parser.Type)
	}

	if c.Parser.EntriesPerLine < 0 {
		return fmt.Errorf("parser: entries_per_line cannot be negative, got %d", c.Parser.EntriesPerLine)
	}

	if c.Parser.Type != "plain" && c.Parser.Delimiter != "" {
		return fmt.Errorf("parser: delimiter only applies to the plain parser")
	}
	if c.Parser.Type != "regex" && c.Parser.Pattern != "" {
		return fmt.Errorf("parser: pattern only applies to the regex parser")
	}
	if c.Parser.Type != "csv" && c.Parser.Comma != "" {
		return fmt.Errorf("parser: comma only applies to the csv parser")
	}

	if t := c.Thresholds; t != nil {
		for _, ch := range []struct {
			name  string
			limit LimitConfig
		}{
			{"sys", t.Sys},
			{"dia", t.Dia},
			{"pulse", t.Pulse},
		} {
			if ch.limit.High <= 0 || ch.limit.VeryHigh <= 0 {
				return fmt.Errorf("thresholds: %s: both bounds must be positive", ch.name)
			}
			if ch.limit.High > ch.limit.VeryHigh {
				return fmt.Errorf("thresholds: %s: high %d exceeds very_high %d",
					ch.name, ch.limit.High, ch.limit.VeryHigh)
			}
		}
	}

	for i, src := range c.Sources {
		expanded, err := expandEnvVars(src)
		if err != nil {
			return fmt.Errorf("sources[%d]: %w", i, err)
		}
		if strings.TrimSpace(expanded) == "" {
			return fmt.Errorf("sources[%d]: path is empty", i)
		}
		c.Sources[i] = expanded
	}

	if c.Export.Indent < 0 {
		return fmt.Errorf("export: indent cannot be negative, got %d", c.Export.Indent)
	}

	return nil
}

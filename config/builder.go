package config

import (
	"fmt"

	"github.com/jpalmerr/bpdiag"
)

// BuildParser converts the parser section of a parsed configuration into
// an SDK [bpdiag.Parser].
//
// The extra options apply only when the plain parser is selected; callers
// use them to attach behavior the config file cannot express, such as a
// truncation handler.
func BuildParser(cfg *Config, extra ...bpdiag.PlainOption) (bpdiag.Parser, error) {
	pc := cfg.Parser

	switch pc.Type {
	case "", "plain":
		return buildPlainParser(pc, extra)
	case "csv":
		return buildCSVParser(pc)
	case "regex":
		return bpdiag.NewRegexParser(pc.Pattern)
	case "json":
		return bpdiag.NewJSONParser(), nil
	default:
		return nil, fmt.Errorf("unknown parser type %q", pc.Type)
	}
}

func buildPlainParser(pc ParserConfig, extra []bpdiag.PlainOption) (*bpdiag.PlainParser, error) {
	var opts []bpdiag.PlainOption

	if pc.Delimiter != "" {
		opts = append(opts, bpdiag.WithDelimiter(pc.Delimiter))
	}
	if pc.Separator != "" {
		opts = append(opts, bpdiag.WithSeparator(pc.Separator))
	}
	if pc.Skip != "" {
		opts = append(opts, bpdiag.WithSkipToken(pc.Skip))
	}
	if pc.EntriesPerLine != 0 {
		opts = append(opts, bpdiag.WithEntriesPerLine(pc.EntriesPerLine))
	}
	opts = append(opts, extra...)

	return bpdiag.NewPlainParser(opts...)
}

func buildCSVParser(pc ParserConfig) (*bpdiag.CSVParser, error) {
	var opts []bpdiag.CSVOption

	if pc.Comma != "" {
		opts = append(opts, bpdiag.WithComma(pc.Comma))
	}
	if pc.Separator != "" {
		opts = append(opts, bpdiag.WithCSVSeparator(pc.Separator))
	}
	if pc.Skip != "" {
		opts = append(opts, bpdiag.WithCSVSkipToken(pc.Skip))
	}

	return bpdiag.NewCSVParser(opts...)
}

// BuildThresholds converts the thresholds section into SDK
// [bpdiag.Thresholds]. The second return value reports whether thresholds
// were configured at all.
func BuildThresholds(cfg *Config) (bpdiag.Thresholds, bool) {
	if cfg.Thresholds == nil {
		return bpdiag.Thresholds{}, false
	}
	t := cfg.Thresholds
	return bpdiag.Thresholds{
		Sys:   bpdiag.Limit{High: t.Sys.High, VeryHigh: t.Sys.VeryHigh},
		Dia:   bpdiag.Limit{High: t.Dia.High, VeryHigh: t.Dia.VeryHigh},
		Pulse: bpdiag.Limit{High: t.Pulse.High, VeryHigh: t.Pulse.VeryHigh},
	}, true
}

// BuildOptions converts parsed configuration into SDK pipeline options.
func BuildOptions(cfg *Config) ([]bpdiag.Option, error) {
	parser, err := BuildParser(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	opts := []bpdiag.Option{bpdiag.WithParser(parser)}

	if t, ok := BuildThresholds(cfg); ok {
		opts = append(opts, bpdiag.WithThresholds(t))
	}

	return opts, nil
}

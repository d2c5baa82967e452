package bpdiag

import "strings"

// PlainParser parses plaintext lines of delimiter-separated entries.
//
// Each line holds zero or more entries separated by the delimiter (default
// ","). Each entry holds exactly three integer tokens separated by the
// separator (default "/"): sys, dia, pulse. An entry equal to the skip
// token (default "-") yields an explicit nil slot. Entries that fail to
// parse are silently dropped, per the [Parser] error policy.
//
// With a fixed entries-per-line width configured, every line emits exactly
// that many slots: missing or dropped entries are padded with nil and
// excess entries are truncated. Truncation is silent by default; install a
// handler with [WithTruncationHandler] to observe it.
//
// PlainParser is immutable after construction via [NewPlainParser] and safe
// for concurrent use.
//
// Example input (delimiter ",", separator "/", skip "-"):
//
//	136/83/65, 132/82/70
//	144/82/86, -, 143/80/68
type PlainParser struct {
	delimiter  string
	separator  string
	skip       string
	entries    int
	onTruncate func(line string, dropped int)
}

// NewPlainParser creates a [PlainParser] with the given options.
//
// Defaults: delimiter ",", separator "/", skip token "-", variable entries
// per line. Returns an error if any option is invalid.
//
// Example:
//
//	p, err := bpdiag.NewPlainParser(
//	    bpdiag.WithSeparator(":"),
//	    bpdiag.WithEntriesPerLine(4),
//	)
func NewPlainParser(opts ...PlainOption) (*PlainParser, error) {
	p := &PlainParser{
		delimiter: DefaultDelimiter,
		separator: DefaultSeparator,
		skip:      DefaultSkipToken,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// MustPlainParser is like [NewPlainParser] but panics if an option is
// invalid. Use this for compile-time constant configuration where you want
// to fail fast; for runtime configuration use [NewPlainParser] instead.
func MustPlainParser(opts ...PlainOption) *PlainParser {
	p, err := NewPlainParser(opts...)
	if err != nil {
		panic("bpdiag: invalid plain parser option: " + err.Error())
	}
	return p
}

// Parse implements the [Parser] contract.
func (p *PlainParser) Parse(lines []string) ([]*Measurement, error) {
	var out []*Measurement

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tokens := strings.Split(line, p.delimiter)
		limit := len(tokens)
		if p.entries > 0 && limit > p.entries {
			if p.onTruncate != nil {
				p.onTruncate(line, limit-p.entries)
			}
			limit = p.entries
		}

		emitted := 0
		for i := 0; i < limit; i++ {
			token := strings.TrimSpace(tokens[i])
			if token == "" {
				// trailing delimiter or stray whitespace
				continue
			}
			if token == p.skip {
				out = append(out, nil)
				emitted++
				continue
			}
			if m, ok := parseEntry(token, p.separator); ok {
				out = append(out, m)
				emitted++
			}
			// malformed entries are dropped, not errors
		}

		// pad to the fixed width so positions stay aligned across lines
		for ; p.entries > 0 && emitted < p.entries; emitted++ {
			out = append(out, nil)
		}
	}

	return out, nil
}

// Delimiter returns the configured entry delimiter.
func (p *PlainParser) Delimiter() string {
	return p.delimiter
}

// Separator returns the configured value separator.
func (p *PlainParser) Separator() string {
	return p.separator
}

// SkipToken returns the configured skip token.
func (p *PlainParser) SkipToken() string {
	return p.skip
}

// EntriesPerLine returns the configured fixed entry count per line.
// Zero means variable.
func (p *PlainParser) EntriesPerLine() int {
	return p.entries
}

package bpdiag

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// CSVParser parses delimited-field records where every field is one entry.
//
// Lines are decoded with encoding/csv, so quoted fields containing the
// field separator work as expected. Each field holds either a
// sys/dia/pulse entry (split on the configured value separator), the skip
// token (yielding a nil slot), or garbage (silently dropped). Records are
// allowed to have varying field counts.
//
// A record that cannot be decoded as CSV at all is dropped as a whole; per
// the [Parser] error policy this is never an error.
type CSVParser struct {
	comma     rune
	separator string
	skip      string
}

// CSVOption configures a [CSVParser] during construction.
type CSVOption func(*CSVParser) error

// WithComma sets the CSV field separator rune. Defaults to ','.
// Returns an error if s is not exactly one rune.
func WithComma(s string) CSVOption {
	return func(p *CSVParser) error {
		if utf8.RuneCountInString(s) != 1 {
			return errors.New("csv comma must be a single character")
		}
		r, _ := utf8.DecodeRuneInString(s)
		p.comma = r
		return nil
	}
}

// WithCSVSeparator sets the string that splits one field into its sys, dia
// and pulse tokens. Defaults to "/". Returns an error if empty.
func WithCSVSeparator(s string) CSVOption {
	return func(p *CSVParser) error {
		if s == "" {
			return errors.New("separator cannot be empty")
		}
		p.separator = s
		return nil
	}
}

// WithCSVSkipToken sets the literal field value meaning "no reading taken".
// Defaults to "-". Returns an error if empty.
func WithCSVSkipToken(s string) CSVOption {
	return func(p *CSVParser) error {
		if s == "" {
			return errors.New("skip token cannot be empty")
		}
		p.skip = s
		return nil
	}
}

// NewCSVParser creates a [CSVParser] with the given options.
//
// Defaults: field separator ',', value separator "/", skip token "-".
// Returns an error if any option is invalid.
func NewCSVParser(opts ...CSVOption) (*CSVParser, error) {
	p := &CSVParser{
		comma:     ',',
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

// Parse implements the [Parser] contract.
func (p *CSVParser) Parse(lines []string) ([]*Measurement, error) {
	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.Comma = p.comma
	r.FieldsPerRecord = -1 // variable width records are fine
	r.TrimLeadingSpace = true

	var out []*Measurement
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// undecodable record, drop it and keep going
			continue
		}

		for _, field := range record {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			if field == p.skip {
				out = append(out, nil)
				continue
			}
			if m, ok := parseEntry(field, p.separator); ok {
				out = append(out, m)
			}
		}
	}

	return out, nil
}

package bpdiag

import "errors"

// PlainOption configures a [PlainParser] during construction.
//
// Options return an error if validation fails. Built-in options:
// [WithDelimiter], [WithSeparator], [WithSkipToken], [WithEntriesPerLine],
// [WithTruncationHandler].
type PlainOption func(*PlainParser) error

// WithDelimiter sets the string that splits one line into multiple entries.
// Defaults to ",". Returns an error if empty.
//
// Example:
//
//	p, err := bpdiag.NewPlainParser(bpdiag.WithDelimiter(";"))
func WithDelimiter(s string) PlainOption {
	return func(p *PlainParser) error {
		if s == "" {
			return errors.New("delimiter cannot be empty")
		}
		p.delimiter = s
		return nil
	}
}

// WithSeparator sets the string that splits one entry into its sys, dia and
// pulse tokens. Defaults to "/". Returns an error if empty.
func WithSeparator(s string) PlainOption {
	return func(p *PlainParser) error {
		if s == "" {
			return errors.New("separator cannot be empty")
		}
		p.separator = s
		return nil
	}
}

// WithSkipToken sets the literal token meaning "no reading taken". An entry
// equal to this token yields an explicit nil slot in the parsed output.
// Defaults to "-". Returns an error if empty.
func WithSkipToken(s string) PlainOption {
	return func(p *PlainParser) error {
		if s == "" {
			return errors.New("skip token cannot be empty")
		}
		p.skip = s
		return nil
	}
}

// WithEntriesPerLine fixes the number of slots emitted per input line.
//
// Lines with fewer entries are padded with nil slots; lines with more are
// truncated. This keeps positions aligned across lines, which matters for
// charting against a fixed-width time axis. Zero (the default) emits a
// variable number of slots per line. Returns an error if n is negative.
func WithEntriesPerLine(n int) PlainOption {
	return func(p *PlainParser) error {
		if n < 0 {
			return errors.New("entries per line cannot be negative")
		}
		p.entries = n
		return nil
	}
}

// WithTruncationHandler registers a function called whenever a fixed
// entries-per-line width causes well-formed entries to be dropped.
//
// The handler receives the offending line and the number of dropped
// entries. Handlers must not retain the line beyond the call. A nil handler
// is silently ignored.
func WithTruncationHandler(fn func(line string, dropped int)) PlainOption {
	return func(p *PlainParser) error {
		if fn == nil {
			return nil // no-op for nil handler (safe to call)
		}
		p.onTruncate = fn
		return nil
	}
}

package bpdiag

import (
	"strconv"
	"strings"
)

// Default tokens used by the plaintext and CSV parsers.
const (
	// DefaultDelimiter splits one input line into multiple entries.
	DefaultDelimiter = ","

	// DefaultSeparator splits one entry into its sys, dia and pulse tokens.
	DefaultSeparator = "/"

	// DefaultSkipToken marks an entry where no reading was taken.
	DefaultSkipToken = "-"
)

// Parser converts raw input lines into an ordered sequence of parsed entries.
//
// Each element of the returned slice is either a *Measurement or nil. A nil
// element is an explicit "no reading" slot: either the source contained a
// skip token, or a parser padded the line to a fixed width. The position of
// every element matches its position in the input (line order, then
// within-line order), which downstream exporters and charts rely on for
// temporal alignment.
//
// Parse is a pure transform over the provided lines: it performs no I/O,
// keeps no state between calls, and the same input always yields the same
// output. Re-invoke Parse to restart the sequence.
//
// Error policy: a failure to parse a single entry (wrong token count,
// non-numeric value) is never an error — the entry is silently dropped from
// the output. Only a whole-source failure, where the input cannot be
// interpreted at all (e.g. a malformed JSON document), returns an error.
//
// Built-in implementations: [PlainParser], [CSVParser], [RegexParser],
// [JSONParser]. Custom parsers only need to satisfy this contract to work
// with the [Pipeline].
type Parser interface {
	Parse(lines []string) ([]*Measurement, error)
}

// parseEntry splits a single entry token on sep and converts the three
// parts to a Measurement. Returns false if the token does not have exactly
// three integer parts.
func parseEntry(token, sep string) (*Measurement, bool) {
	parts := strings.Split(token, sep)
	if len(parts) != 3 {
		return nil, false
	}

	var vals [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		vals[i] = n
	}

	return &Measurement{
		Sys:   vals[0],
		Dia:   vals[1],
		Pulse: vals[2],
		Raw:   token,
	}, true
}

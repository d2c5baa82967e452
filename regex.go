package bpdiag

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultMeasurementPattern matches sys/dia/pulse triples with optional
// whitespace around the slashes. It is the pattern used by [NewRegexParser]
// when given an empty pattern.
const DefaultMeasurementPattern = `(\d{1,3})\s*/\s*(\d{1,3})\s*/\s*(\d{1,3})`

// RegexParser extracts measurements by pattern matching.
//
// The pattern must contain at least three capture groups; the first three
// are interpreted as sys, dia and pulse. Every non-overlapping match on a
// line yields one Measurement, in match order. Text that does not match is
// ignored, which makes this parser suitable for noisy input such as diary
// text with readings embedded mid-sentence.
//
// RegexParser emits no skip slots: unlike [PlainParser] it has no notion of
// an explicitly skipped reading, only of matching and non-matching text.
type RegexParser struct {
	re *regexp.Regexp
}

// NewRegexParser creates a [RegexParser] for the given pattern.
//
// An empty pattern selects [DefaultMeasurementPattern]. Returns an error if
// the pattern is invalid or has fewer than three capture groups.
//
// Example:
//
//	p, err := bpdiag.NewRegexParser(`BP (\d+) over (\d+), pulse (\d+)`)
func NewRegexParser(pattern string) (*RegexParser, error) {
	if pattern == "" {
		pattern = DefaultMeasurementPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	if re.NumSubexp() < 3 {
		return nil, fmt.Errorf("pattern needs 3 capture groups (sys, dia, pulse), got %d", re.NumSubexp())
	}

	return &RegexParser{re: re}, nil
}

// MustRegexParser is like [NewRegexParser] but panics on an invalid
// pattern. Use this for compile-time constant patterns where you want to
// fail fast; for runtime patterns use [NewRegexParser] instead.
func MustRegexParser(pattern string) *RegexParser {
	p, err := NewRegexParser(pattern)
	if err != nil {
		panic("bpdiag: invalid regex parser pattern: " + err.Error())
	}
	return p
}

// Parse implements the [Parser] contract.
func (p *RegexParser) Parse(lines []string) ([]*Measurement, error) {
	var out []*Measurement

	for _, line := range lines {
		for _, match := range p.re.FindAllStringSubmatch(line, -1) {
			m, ok := measurementFromMatch(match)
			if !ok {
				continue
			}
			out = append(out, m)
		}
	}

	return out, nil
}

// measurementFromMatch converts the first three capture groups of a match
// into a Measurement. Returns false if any group is not an integer, which
// can happen with patterns that capture non-numeric text.
func measurementFromMatch(match []string) (*Measurement, bool) {
	if len(match) < 4 {
		return nil, false
	}

	var vals [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(match[i+1])
		if err != nil {
			return nil, false
		}
		vals[i] = n
	}

	return &Measurement{
		Sys:   vals[0],
		Dia:   vals[1],
		Pulse: vals[2],
		Raw:   match[0],
	}, true
}

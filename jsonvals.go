package bpdiag

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JSONParser parses a structured JSON document of measurements.
//
// The whole input (all lines joined) must be a single JSON array. Two
// element shapes are accepted, and may be mixed:
//
//   - a 3-element integer array: [136, 83, 65] (sys, dia, pulse)
//   - an object: {"sys": 136, "dia": 83, "pulse": 65}
//
// A null element yields an explicit nil slot, so documents produced by the
// JSON exporter round-trip through this parser with positions intact.
// Elements of any other shape are silently dropped, per the [Parser] error
// policy.
//
// Unlike per-entry failures, a document that does not decode as a JSON
// array at all is a whole-source failure and returns an error.
type JSONParser struct{}

// NewJSONParser creates a [JSONParser]. It has no configuration.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements the [Parser] contract.
func (p *JSONParser) Parse(lines []string) ([]*Measurement, error) {
	doc := strings.TrimSpace(strings.Join(lines, "\n"))
	if doc == "" {
		return nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(doc), &elems); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}

	out := make([]*Measurement, 0, len(elems))
	for _, elem := range elems {
		if string(elem) == "null" {
			out = append(out, nil)
			continue
		}
		if m, ok := measurementFromJSON(elem); ok {
			out = append(out, m)
		}
	}

	return out, nil
}

// measurementFromJSON decodes one array element as either a 3-int array or
// a sys/dia/pulse object. Returns false for any other shape.
func measurementFromJSON(elem json.RawMessage) (*Measurement, bool) {
	var triple []int
	if err := json.Unmarshal(elem, &triple); err == nil {
		if len(triple) != 3 {
			return nil, false
		}
		return &Measurement{
			Sys:   triple[0],
			Dia:   triple[1],
			Pulse: triple[2],
			Raw:   string(elem),
		}, true
	}

	var obj struct {
		Sys   *int `json:"sys"`
		Dia   *int `json:"dia"`
		Pulse *int `json:"pulse"`
	}
	if err := json.Unmarshal(elem, &obj); err != nil {
		return nil, false
	}
	if obj.Sys == nil || obj.Dia == nil || obj.Pulse == nil {
		return nil, false
	}

	return &Measurement{
		Sys:   *obj.Sys,
		Dia:   *obj.Dia,
		Pulse: *obj.Pulse,
		Raw:   string(elem),
	}, true
}

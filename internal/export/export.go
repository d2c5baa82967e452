package export

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jpalmerr/bpdiag"
)

// Options controls JSON serialization across all document shapes.
type Options struct {
	// Indent is the number of spaces per indentation level.
	// Zero emits compact single-line output.
	Indent int
}

// Values writes the ordered entries as a JSON array of [sys, dia, pulse]
// triples. Skipped slots are written as null.
func Values(w io.Writer, entries []*bpdiag.Measurement, opt Options) error {
	doc := make([]*[3]int, len(entries))
	for i, m := range entries {
		if m != nil {
			doc[i] = &[3]int{m.Sys, m.Dia, m.Pulse}
		}
	}
	return encode(w, doc, opt)
}

// measurementDoc is the object form of one measurement.
type measurementDoc struct {
	Sys   int        `json:"sys"`
	Dia   int        `json:"dia"`
	Pulse int        `json:"pulse"`
	Taken *time.Time `json:"taken,omitempty"`
	Raw   string     `json:"raw,omitempty"`
}

// Objects writes the ordered entries as a JSON array of measurement
// objects. Skipped slots are written as null.
func Objects(w io.Writer, entries []*bpdiag.Measurement, opt Options) error {
	doc := make([]*measurementDoc, len(entries))
	for i, m := range entries {
		if m == nil {
			continue
		}
		d := &measurementDoc{
			Sys:   m.Sys,
			Dia:   m.Dia,
			Pulse: m.Pulse,
			Raw:   m.Raw,
		}
		if !m.Taken.IsZero() {
			taken := m.Taken
			d.Taken = &taken
		}
		doc[i] = d
	}
	return encode(w, doc, opt)
}

// ChannelDoc is the JSON form of one channel's statistics.
type ChannelDoc struct {
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// LevelCountsDoc is the JSON form of one channel's classification tallies.
type LevelCountsDoc struct {
	Normal   int `json:"normal"`
	High     int `json:"high"`
	VeryHigh int `json:"very_high"`
}

// ClassificationDoc is the JSON form of the per-channel classification
// tallies.
type ClassificationDoc struct {
	Sys   LevelCountsDoc `json:"sys"`
	Dia   LevelCountsDoc `json:"dia"`
	Pulse LevelCountsDoc `json:"pulse"`
}

// StatsDocument is the statistics envelope written by [Stats].
//
// A channel with no contributing measurements is written as null rather
// than a zeroed object, so consumers cannot mistake "no data" for real
// minima. ReportID uniquely identifies the export for correlation with
// logs.
type StatsDocument struct {
	ReportID       string             `json:"report_id"`
	GeneratedAt    time.Time          `json:"generated_at"`
	Values         int                `json:"values"`
	Sys            *ChannelDoc        `json:"sys"`
	Dia            *ChannelDoc        `json:"dia"`
	Pulse          *ChannelDoc        `json:"pulse"`
	Classification *ClassificationDoc `json:"classification,omitempty"`
}

// Stats writes the statistics envelope for a pipeline result.
func Stats(w io.Writer, res bpdiag.Result, opt Options) error {
	doc := StatsDocument{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Values:      res.Values,
		Sys:         channelDoc(res.Summary.Sys),
		Dia:         channelDoc(res.Summary.Dia),
		Pulse:       channelDoc(res.Summary.Pulse),
	}

	if c := res.Classification; c != nil {
		doc.Classification = &ClassificationDoc{
			Sys:   levelCountsDoc(c.Sys),
			Dia:   levelCountsDoc(c.Dia),
			Pulse: levelCountsDoc(c.Pulse),
		}
	}

	return encode(w, doc, opt)
}

func channelDoc(c bpdiag.ChannelSummary) *ChannelDoc {
	if !c.HasData() {
		return nil
	}
	return &ChannelDoc{Min: c.Min, Max: c.Max, Avg: c.Avg, Count: c.Count}
}

func levelCountsDoc(lc bpdiag.LevelCounts) LevelCountsDoc {
	return LevelCountsDoc{Normal: lc.Normal, High: lc.High, VeryHigh: lc.VeryHigh}
}

func encode(w io.Writer, v any, opt Options) error {
	enc := json.NewEncoder(w)
	if opt.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", opt.Indent))
	}
	return enc.Encode(v)
}

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jpalmerr/bpdiag"
)

func entries() []*bpdiag.Measurement {
	return []*bpdiag.Measurement{
		{Sys: 136, Dia: 83, Pulse: 65, Raw: "136/83/65"},
		nil,
		{Sys: 132, Dia: 82, Pulse: 70, Raw: "132/82/70"},
	}
}

func TestValues(t *testing.T) {
	var buf bytes.Buffer
	if err := Values(&buf, entries(), Options{}); err != nil {
		t.Fatalf("Values() error = %v", err)
	}

	want := "[[136,83,65],null,[132,82,70]]\n"
	if buf.String() != want {
		t.Errorf("Values() = %q, want %q", buf.String(), want)
	}
}

func TestValues_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Values(&buf, nil, Options{}); err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("Values() = %q, want %q", buf.String(), "[]\n")
	}
}

func TestValues_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := Values(&buf, entries()[:1], Options{Indent: 2}); err != nil {
		t.Fatalf("Values() error = %v", err)
	}

	want := "[\n  [\n    136,\n    83,\n    65\n  ]\n]\n"
	if buf.String() != want {
		t.Errorf("Values() = %q, want %q", buf.String(), want)
	}
}

func TestObjects(t *testing.T) {
	var buf bytes.Buffer
	if err := Objects(&buf, entries(), Options{}); err != nil {
		t.Fatalf("Objects() error = %v", err)
	}

	var doc []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc) != 3 {
		t.Fatalf("len(doc) = %d, want 3", len(doc))
	}
	if doc[1] != nil {
		t.Errorf("doc[1] = %v, want null", doc[1])
	}
	if doc[0]["sys"] != float64(136) || doc[0]["raw"] != "136/83/65" {
		t.Errorf("doc[0] = %v", doc[0])
	}
	if _, present := doc[0]["taken"]; present {
		t.Error("taken present despite zero timestamp")
	}
}

func TestObjects_Taken(t *testing.T) {
	taken := time.Date(2026, 8, 1, 7, 30, 0, 0, time.UTC)
	ms := []*bpdiag.Measurement{{Sys: 136, Dia: 83, Pulse: 65, Taken: taken}}

	var buf bytes.Buffer
	if err := Objects(&buf, ms, Options{}); err != nil {
		t.Fatalf("Objects() error = %v", err)
	}
	if !strings.Contains(buf.String(), "2026-08-01T07:30:00Z") {
		t.Errorf("output missing timestamp: %s", buf.String())
	}
}

func TestStats(t *testing.T) {
	p, err := bpdiag.New(bpdiag.WithThresholds(bpdiag.DefaultThresholds()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := p.RunLines([]string{"136/83/65, -, 144/92/105"})
	if err != nil {
		t.Fatalf("RunLines() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Stats(&buf, res, Options{}); err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	var doc StatsDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.ReportID == "" {
		t.Error("report_id is empty")
	}
	if doc.GeneratedAt.IsZero() {
		t.Error("generated_at is zero")
	}
	if doc.Values != 2 {
		t.Errorf("values = %d, want 2", doc.Values)
	}
	if doc.Sys == nil || doc.Sys.Min != 136 || doc.Sys.Max != 144 || doc.Sys.Avg != 140.0 {
		t.Errorf("sys = %+v", doc.Sys)
	}
	if doc.Classification == nil {
		t.Fatal("classification missing despite thresholds")
	}
	if doc.Classification.Sys.VeryHigh != 1 || doc.Classification.Sys.Normal != 0 {
		t.Errorf("sys classification = %+v", doc.Classification.Sys)
	}
}

func TestStats_NoData(t *testing.T) {
	p, err := bpdiag.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := p.RunLines(nil)
	if err != nil {
		t.Fatalf("RunLines() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Stats(&buf, res, Options{}); err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	// empty channels serialize as null, never as zeroed objects
	if !strings.Contains(buf.String(), `"sys":null`) {
		t.Errorf("output = %s, want sys null", buf.String())
	}
	if strings.Contains(buf.String(), "classification") {
		t.Errorf("output = %s, want no classification", buf.String())
	}
}

func TestStats_UniqueReportIDs(t *testing.T) {
	res := bpdiag.Result{}

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		if err := Stats(&buf, res, Options{}); err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		var doc StatsDocument
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if ids[doc.ReportID] {
			t.Fatalf("duplicate report_id %q", doc.ReportID)
		}
		ids[doc.ReportID] = true
	}
}

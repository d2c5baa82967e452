package bpdiag

import (
	"reflect"
	"testing"
)

func TestJSONParser_Arrays(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"no lines", []string{}, nil},
		{"blank input", []string{"  ", ""}, nil},
		{"empty array", []string{"[]"}, nil},
		{"single triple", []string{"[[136, 83, 65]]"}, []string{"136/83/65"}},
		{"multiple triples", []string{"[[136, 83, 65], [132, 82, 70]]"},
			[]string{"136/83/65", "132/82/70"}},
		{"null slot", []string{"[[144, 82, 86], null, [143, 80, 68]]"},
			[]string{"144/82/86", "-", "143/80/68"}},
		{"spread over lines", []string{"[", "  [136, 83, 65],", "  [132, 82, 70]", "]"},
			[]string{"136/83/65", "132/82/70"}},
		{"wrong arity dropped", []string{"[[136, 83], [132, 82, 70]]"}, []string{"132/82/70"}},
		{"non-numeric dropped", []string{`[["a", "b", "c"], [132, 82, 70]]`},
			[]string{"132/82/70"}},
	}

	p := NewJSONParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderEntries(t, mustParse(t, p, tt.lines))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestJSONParser_Objects(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"single object", []string{`[{"sys": 136, "dia": 83, "pulse": 65}]`},
			[]string{"136/83/65"}},
		{"mixed shapes", []string{`[[136, 83, 65], {"sys": 132, "dia": 82, "pulse": 70}]`},
			[]string{"136/83/65", "132/82/70"}},
		{"missing field dropped", []string{`[{"sys": 136, "dia": 83}, [132, 82, 70]]`},
			[]string{"132/82/70"}},
		{"extra fields tolerated",
			[]string{`[{"sys": 136, "dia": 83, "pulse": 65, "taken": "2026-08-01"}]`},
			[]string{"136/83/65"}},
	}

	p := NewJSONParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderEntries(t, mustParse(t, p, tt.lines))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestJSONParser_DocumentErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"not json", []string{"136/83/65"}},
		{"not an array", []string{`{"sys": 136, "dia": 83, "pulse": 65}`}},
		{"truncated document", []string{"[[136, 83, 65]"}},
	}

	p := NewJSONParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Parse(tt.lines); err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}

func TestJSONParser_RawIsElement(t *testing.T) {
	p := NewJSONParser()
	entries := mustParse(t, p, []string{"[[136,83,65]]"})

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Raw != "[136,83,65]" {
		t.Errorf("Raw = %q, want %q", entries[0].Raw, "[136,83,65]")
	}
}

package bpdiag

import (
	"reflect"
	"testing"
)

func TestRegexParser_DefaultPattern(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"no lines", []string{}, nil},
		{"plain triple", []string{"136/83/65"}, []string{"136/83/65"}},
		{"spaced slashes", []string{"136 / 83 / 65"}, []string{"136/83/65"}},
		{"multiple per line", []string{"136/83/65 and later 132/82/70"},
			[]string{"136/83/65", "132/82/70"}},
		{"embedded in prose", []string{"morning reading was 144/82/86, felt fine"},
			[]string{"144/82/86"}},
		{"no match", []string{"no readings today"}, nil},
		{"non-numeric ignored", []string{"abc/83/65"}, nil},
	}

	p := MustRegexParser("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderEntries(t, mustParse(t, p, tt.lines))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestRegexParser_CustomPattern(t *testing.T) {
	p, err := NewRegexParser(`BP (\d+) over (\d+), pulse (\d+)`)
	if err != nil {
		t.Fatalf("NewRegexParser() error = %v", err)
	}

	lines := []string{
		"BP 136 over 83, pulse 65",
		"skipped today",
		"BP 132 over 82, pulse 70",
	}
	got := renderEntries(t, mustParse(t, p, lines))
	want := []string{"136/83/65", "132/82/70"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestRegexParser_RawIsMatch(t *testing.T) {
	p := MustRegexParser("")
	entries := mustParse(t, p, []string{"reading: 136/83/65 (morning)"})

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Raw != "136/83/65" {
		t.Errorf("Raw = %q, want %q", entries[0].Raw, "136/83/65")
	}
}

func TestNewRegexParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"invalid regex", `(\d+`},
		{"too few groups", `(\d+)/(\d+)`},
		{"no groups", `\d+/\d+/\d+`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegexParser(tt.pattern); err == nil {
				t.Error("NewRegexParser() expected error, got nil")
			}
		})
	}
}

func TestMustRegexParser_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRegexParser() did not panic on invalid pattern")
		}
	}()
	MustRegexParser(`(\d+`)
}

package bpdiag

import (
	"io"
	"log/slog"
	"testing"
)

func TestWithParser_Nil(t *testing.T) {
	if _, err := New(WithParser(nil)); err == nil {
		t.Error("New(WithParser(nil)) expected error, got nil")
	}
}

func TestWithLogger(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(WithLogger(logger)); err != nil {
		t.Errorf("New(WithLogger) error = %v", err)
	}
	if _, err := New(WithLogger(nil)); err == nil {
		t.Error("New(WithLogger(nil)) expected error, got nil")
	}
}

func TestWithEntryCallback_NilIgnored(t *testing.T) {
	p, err := New(WithEntryCallback(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := p.RunLines([]string{"136/83/65"}); err != nil {
		t.Errorf("RunLines() error = %v", err)
	}
}

func TestWithEntryCallback_Multiple(t *testing.T) {
	var order []string
	p, err := New(
		WithEntryCallback(func(*Measurement) { order = append(order, "first") }),
		WithEntryCallback(func(*Measurement) { order = append(order, "second") }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := p.RunLines([]string{"136/83/65"}); err != nil {
		t.Fatalf("RunLines() error = %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("callbacks ran as %v, want [first second]", order)
	}
}

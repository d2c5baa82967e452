package bpdiag

import "testing"

func m(sys, dia, pulse int) *Measurement {
	return &Measurement{Sys: sys, Dia: dia, Pulse: pulse}
}

func TestAccumulator_Empty(t *testing.T) {
	acc := NewAccumulator()

	if acc.Count() != 0 {
		t.Errorf("Count() = %d, want 0", acc.Count())
	}

	sum := acc.Summary()
	for name, ch := range map[string]ChannelSummary{
		"sys": sum.Sys, "dia": sum.Dia, "pulse": sum.Pulse,
	} {
		if ch.HasData() {
			t.Errorf("%s.HasData() = true for empty accumulator", name)
		}
		if ch.Min != 0 || ch.Max != 0 || ch.Avg != 0 || ch.Count != 0 {
			t.Errorf("%s = %+v, want zero value", name, ch)
		}
	}
}

func TestAccumulator_SingleMeasurement(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(m(136, 83, 65))

	sum := acc.Summary()
	tests := []struct {
		name string
		ch   ChannelSummary
		val  int
	}{
		{"sys", sum.Sys, 136},
		{"dia", sum.Dia, 83},
		{"pulse", sum.Pulse, 65},
	}
	for _, tt := range tests {
		if tt.ch.Min != tt.val || tt.ch.Max != tt.val {
			t.Errorf("%s min/max = %d/%d, want %d/%d", tt.name, tt.ch.Min, tt.ch.Max, tt.val, tt.val)
		}
		if tt.ch.Avg != float64(tt.val) {
			t.Errorf("%s avg = %v, want %v", tt.name, tt.ch.Avg, float64(tt.val))
		}
		if tt.ch.Count != 1 {
			t.Errorf("%s count = %d, want 1", tt.name, tt.ch.Count)
		}
	}
}

func TestAccumulator_RunningStats(t *testing.T) {
	acc := NewAccumulator()
	for _, e := range []*Measurement{
		m(144, 83, 99),
		nil, // skip slots do not contribute
		m(127, 74, 60),
		m(137, 80, 66),
	} {
		acc.Add(e)
	}

	if acc.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", acc.Count())
	}

	sum := acc.Summary()
	if sum.Sys.Min != 127 || sum.Sys.Max != 144 || sum.Sys.Avg != 136.0 {
		t.Errorf("sys = %+v, want min 127, max 144, avg 136.0", sum.Sys)
	}
	if sum.Dia.Min != 74 || sum.Dia.Max != 83 || sum.Dia.Avg != 79.0 {
		t.Errorf("dia = %+v, want min 74, max 83, avg 79.0", sum.Dia)
	}
	if sum.Pulse.Min != 60 || sum.Pulse.Max != 99 || sum.Pulse.Avg != 75.0 {
		t.Errorf("pulse = %+v, want min 60, max 99, avg 75.0", sum.Pulse)
	}
}

func TestAccumulator_SummaryDoesNotFreeze(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(m(136, 83, 65))

	first := acc.Summary()
	acc.Add(m(144, 85, 71))
	second := acc.Summary()

	if first.Sys.Max != 136 {
		t.Errorf("first summary sys max = %d, want 136", first.Sys.Max)
	}
	if second.Sys.Max != 144 {
		t.Errorf("second summary sys max = %d, want 144", second.Sys.Max)
	}
	if second.Sys.Count != 2 {
		t.Errorf("second summary sys count = %d, want 2", second.Sys.Count)
	}
}

func TestAccumulator_Merge(t *testing.T) {
	values := []*Measurement{
		m(144, 83, 99), m(138, 81, 72), m(136, 79, 65),
		m(132, 76, 68), m(127, 74, 60), m(137, 80, 66),
	}

	// sequential fold
	whole := NewAccumulator()
	for _, v := range values {
		whole.Add(v)
	}

	// split fold, merged
	left, right := NewAccumulator(), NewAccumulator()
	for _, v := range values[:3] {
		left.Add(v)
	}
	for _, v := range values[3:] {
		right.Add(v)
	}
	left.Merge(right)

	if left.Summary() != whole.Summary() {
		t.Errorf("merged summary %+v != sequential summary %+v", left.Summary(), whole.Summary())
	}
	if left.Count() != whole.Count() {
		t.Errorf("merged count %d != sequential count %d", left.Count(), whole.Count())
	}
}

func TestAccumulator_MergeEmptyAndNil(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(m(136, 83, 65))
	before := acc.Summary()

	acc.Merge(NewAccumulator())
	acc.Merge(nil)

	if acc.Summary() != before {
		t.Errorf("summary changed after empty merges: %+v vs %+v", acc.Summary(), before)
	}

	// merging into an empty accumulator adopts the other's totals
	empty := NewAccumulator()
	empty.Merge(acc)
	if empty.Summary() != before {
		t.Errorf("empty.Merge = %+v, want %+v", empty.Summary(), before)
	}
}

func TestAccumulator_FractionalAverage(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(m(136, 83, 65))
	acc.Add(m(137, 84, 66))

	sum := acc.Summary()
	if sum.Sys.Avg != 136.5 {
		t.Errorf("sys avg = %v, want 136.5", sum.Sys.Avg)
	}
	if sum.Dia.Avg != 83.5 {
		t.Errorf("dia avg = %v, want 83.5", sum.Dia.Avg)
	}
	if sum.Pulse.Avg != 65.5 {
		t.Errorf("pulse avg = %v, want 65.5", sum.Pulse.Avg)
	}
}

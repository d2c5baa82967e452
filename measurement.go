package bpdiag

import (
	"fmt"
	"time"
)

// Measurement represents a single blood pressure reading.
//
// A Measurement holds the systolic and diastolic pressure (both in mm Hg)
// and the arterial pulse (beats per minute). It is immutable by convention:
// parsers construct one Measurement per successfully parsed entry and no
// component mutates it afterwards.
//
// Domain validity (0 < dia <= sys) is deliberately NOT enforced at parse
// time. Parsers only validate syntactic shape; out-of-range readings are
// accepted and surface through threshold classification instead of being
// rejected. See [Thresholds.Classify].
type Measurement struct {
	// Sys is the systolic (maximum) pressure in mm Hg.
	Sys int

	// Dia is the diastolic (minimum) pressure in mm Hg.
	Dia int

	// Pulse is the arterial pulse in beats per minute.
	Pulse int

	// Raw is the original source fragment the reading was parsed from.
	// Kept for diagnostics; may be empty for programmatically constructed
	// measurements.
	Raw string

	// Taken is the time the reading was recorded. The zero value means
	// unknown; parsers that have no timestamp information leave it unset.
	Taken time.Time
}

// Values returns the three channel values in sys, dia, pulse order.
func (m Measurement) Values() (sys, dia, pulse int) {
	return m.Sys, m.Dia, m.Pulse
}

// String formats the measurement as right-aligned "sys/dia/pulse" columns,
// e.g. "136/ 83/ 65". This implements the fmt.Stringer interface.
func (m Measurement) String() string {
	return fmt.Sprintf("%3d/%3d/%3d", m.Sys, m.Dia, m.Pulse)
}

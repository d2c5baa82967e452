package bpdiag

import "fmt"

// Level classifies a single channel value against configured thresholds.
//
// Level is a string type that can hold one of three predefined values:
// [LevelNormal], [LevelHigh] or [LevelVeryHigh]. Using a string type allows
// for easy JSON serialization and human-readable logging while maintaining
// type safety through the defined constants.
type Level string

const (
	// LevelNormal indicates the value is at or below the high threshold.
	LevelNormal Level = "normal"

	// LevelHigh indicates the value exceeds the high threshold but not
	// the very-high one.
	LevelHigh Level = "high"

	// LevelVeryHigh indicates the value exceeds the very-high threshold.
	LevelVeryHigh Level = "very-high"
)

// String returns the string representation of the level.
// This implements the fmt.Stringer interface.
func (l Level) String() string {
	return string(l)
}

// Limit holds the two classification bounds for one channel. Both bounds
// are exclusive: a value classifies as high only when strictly greater
// than High.
type Limit struct {
	High     int
	VeryHigh int
}

func (l Limit) classify(v int) Level {
	switch {
	case v > l.VeryHigh:
		return LevelVeryHigh
	case v > l.High:
		return LevelHigh
	default:
		return LevelNormal
	}
}

// Thresholds holds independent classification limits per channel.
//
// Classification is a pure function of a measurement's values and these
// limits; it never mutates the measurement. See [Thresholds.Classify].
type Thresholds struct {
	Sys   Limit
	Dia   Limit
	Pulse Limit
}

// DefaultThresholds returns the standard classification limits:
// sys 130/140, dia 85/90, pulse 90/100 (high / very-high).
func DefaultThresholds() Thresholds {
	return Thresholds{
		Sys:   Limit{High: 130, VeryHigh: 140},
		Dia:   Limit{High: 85, VeryHigh: 90},
		Pulse: Limit{High: 90, VeryHigh: 100},
	}
}

// Validate checks that every channel's high bound does not exceed its
// very-high bound.
func (t Thresholds) Validate() error {
	for _, ch := range []struct {
		name  string
		limit Limit
	}{
		{"sys", t.Sys},
		{"dia", t.Dia},
		{"pulse", t.Pulse},
	} {
		if ch.limit.High > ch.limit.VeryHigh {
			return fmt.Errorf("%s: high threshold %d exceeds very-high threshold %d",
				ch.name, ch.limit.High, ch.limit.VeryHigh)
		}
	}
	return nil
}

// ChannelLevels holds the classification of one measurement, per channel.
type ChannelLevels struct {
	Sys   Level
	Dia   Level
	Pulse Level
}

// Classify returns the per-channel classification of a measurement.
func (t Thresholds) Classify(m Measurement) ChannelLevels {
	return ChannelLevels{
		Sys:   t.Sys.classify(m.Sys),
		Dia:   t.Dia.classify(m.Dia),
		Pulse: t.Pulse.classify(m.Pulse),
	}
}

// LevelCounts tallies how many measurements fell into each level for one
// channel.
type LevelCounts struct {
	Normal   int
	High     int
	VeryHigh int
}

func (lc *LevelCounts) record(l Level) {
	switch l {
	case LevelHigh:
		lc.High++
	case LevelVeryHigh:
		lc.VeryHigh++
	default:
		lc.Normal++
	}
}

// ClassificationCounts tallies classification results across all retained
// measurements, per channel. The pipeline fills one in when thresholds are
// configured.
type ClassificationCounts struct {
	Sys   LevelCounts
	Dia   LevelCounts
	Pulse LevelCounts
}

// Record tallies one measurement's classification.
func (c *ClassificationCounts) Record(levels ChannelLevels) {
	c.Sys.record(levels.Sys)
	c.Dia.record(levels.Dia)
	c.Pulse.record(levels.Pulse)
}

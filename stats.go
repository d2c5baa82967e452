package bpdiag

// ChannelSummary holds finalized descriptive statistics for one channel
// (sys, dia or pulse).
//
// A channel nobody wrote to reports no data rather than zeros: check
// [ChannelSummary.HasData] before reading Min, Max or Avg, otherwise a
// false minimum of 0 would be easy to misreport.
type ChannelSummary struct {
	// Min is the smallest value seen. Meaningless when Count is 0.
	Min int

	// Max is the largest value seen. Meaningless when Count is 0.
	Max int

	// Avg is the arithmetic mean of all values seen.
	Avg float64

	// Count is the number of measurements that contributed. Skip slots do
	// not count.
	Count int
}

// HasData reports whether any measurement contributed to this channel.
func (c ChannelSummary) HasData() bool {
	return c.Count > 0
}

// Summary holds finalized statistics for all three channels.
type Summary struct {
	Sys   ChannelSummary
	Dia   ChannelSummary
	Pulse ChannelSummary
}

// channelTotals is the running state for one channel. All four fields are
// updated together on every add, keeping min <= sum/count <= max as an
// invariant whenever count > 0.
type channelTotals struct {
	min   int
	max   int
	sum   int
	count int
}

func (c *channelTotals) add(v int) {
	if c.count == 0 || v < c.min {
		c.min = v
	}
	if c.count == 0 || v > c.max {
		c.max = v
	}
	c.sum += v
	c.count++
}

func (c *channelTotals) merge(o channelTotals) {
	if o.count == 0 {
		return
	}
	if c.count == 0 || o.min < c.min {
		c.min = o.min
	}
	if c.count == 0 || o.max > c.max {
		c.max = o.max
	}
	c.sum += o.sum
	c.count += o.count
}

func (c channelTotals) summary() ChannelSummary {
	if c.count == 0 {
		return ChannelSummary{}
	}
	return ChannelSummary{
		Min:   c.min,
		Max:   c.max,
		Avg:   float64(c.sum) / float64(c.count),
		Count: c.count,
	}
}

// Accumulator maintains running statistics over a stream of measurements.
//
// Accumulator supports incremental single-pass use: each [Accumulator.Add]
// is O(1) in time and memory, so arbitrarily long inputs can be folded
// without retaining them. The finalized [Summary] is computed lazily on
// read and never cached, so an Accumulator can keep receiving values after
// a summary has been taken.
//
// Accumulator is not safe for concurrent use. To parallelize, give each
// producer its own Accumulator and combine them with [Accumulator.Merge];
// the merge is associative and commutative, so the result is deterministic
// regardless of merge order.
type Accumulator struct {
	sys   channelTotals
	dia   channelTotals
	pulse channelTotals
}

// NewAccumulator creates an empty [Accumulator], ready for use.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add folds one measurement into the running totals. A nil measurement
// (a skip or padding slot) is ignored.
func (a *Accumulator) Add(m *Measurement) {
	if m == nil {
		return
	}
	a.sys.add(m.Sys)
	a.dia.add(m.Dia)
	a.pulse.add(m.Pulse)
}

// Merge folds another accumulator's totals into this one. The other
// accumulator is not modified. Merging an empty accumulator is a no-op.
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil {
		return
	}
	a.sys.merge(other.sys)
	a.dia.merge(other.dia)
	a.pulse.merge(other.pulse)
}

// Summary computes the finalized per-channel statistics from the current
// running totals.
func (a *Accumulator) Summary() Summary {
	return Summary{
		Sys:   a.sys.summary(),
		Dia:   a.dia.summary(),
		Pulse: a.pulse.summary(),
	}
}

// Count returns the number of measurements added so far.
func (a *Accumulator) Count() int {
	return a.sys.count
}

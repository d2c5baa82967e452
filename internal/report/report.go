package report

import (
	"fmt"
	"io"

	"github.com/jpalmerr/bpdiag"
)

// Write renders the statistics block for a pipeline result.
func Write(w io.Writer, res bpdiag.Result) {
	fmt.Fprintln(w, "Statistics (min, max, avg):")
	writeChannel(w, "SYS...", res.Summary.Sys)
	writeChannel(w, "DIA...", res.Summary.Dia)
	writeChannel(w, "PULSE.", res.Summary.Pulse)

	if c := res.Classification; c != nil {
		fmt.Fprintln(w, "Classification (normal, high, very-high):")
		writeLevels(w, "SYS...", c.Sys)
		writeLevels(w, "DIA...", c.Dia)
		writeLevels(w, "PULSE.", c.Pulse)
	}
}

func writeChannel(w io.Writer, label string, c bpdiag.ChannelSummary) {
	if !c.HasData() {
		fmt.Fprintf(w, ":: %s: no data\n", label)
		return
	}
	fmt.Fprintf(w, ":: %s: %3d, %3d, %.1f\n", label, c.Min, c.Max, c.Avg)
}

func writeLevels(w io.Writer, label string, lc bpdiag.LevelCounts) {
	fmt.Fprintf(w, ":: %s: %3d, %3d, %3d\n", label, lc.Normal, lc.High, lc.VeryHigh)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jpalmerr/bpdiag"
)

func main() {
	// a week of morning readings; "-" marks days nothing was taken
	lines := []string{
		"136/83/65, 132/82/70",
		"144/82/86, -, 143/80/68",
		"abc/83/65, 128/79/64", // malformed entries are dropped, not fatal
		"131/78/62",
	}

	// watch entries stream through the pipeline in input order
	watcher := func(m *bpdiag.Measurement) {
		if m == nil {
			fmt.Println("  (skipped)")
			return
		}
		fmt.Printf("  %s\n", m)
	}

	p, err := bpdiag.New(
		bpdiag.WithThresholds(bpdiag.DefaultThresholds()),
		bpdiag.WithEntryCallback(watcher),
	)
	if err != nil {
		slog.Error("failed to create pipeline", "error", err)
		os.Exit(1)
	}

	fmt.Println("Entries:")
	res, err := p.RunLines(lines)
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Values: %d (of %d slots)\n", res.Values, len(res.Entries))
	fmt.Printf("SYS:   min %d, max %d, avg %.1f\n",
		res.Summary.Sys.Min, res.Summary.Sys.Max, res.Summary.Sys.Avg)
	fmt.Printf("DIA:   min %d, max %d, avg %.1f\n",
		res.Summary.Dia.Min, res.Summary.Dia.Max, res.Summary.Dia.Avg)
	fmt.Printf("PULSE: min %d, max %d, avg %.1f\n",
		res.Summary.Pulse.Min, res.Summary.Pulse.Max, res.Summary.Pulse.Avg)

	fmt.Printf("High sys readings: %d\n", res.Classification.Sys.High+res.Classification.Sys.VeryHigh)
}

// Package bpdiag parses blood pressure readings from line-oriented text and
// derives descriptive statistics from them.
//
// bpdiag is designed as an SDK-first library: the parsing-and-aggregation
// core is programmatic, while file access, JSON export, chart rendering and
// the CLI are thin collaborators layered on top. It follows functional
// programming principles with immutable types, pure parse functions, and
// composable configuration via the functional options pattern.
//
// # Quick Start
//
// Parse readings and print their statistics:
//
//	p, _ := bpdiag.New(bpdiag.WithThresholds(bpdiag.DefaultThresholds()))
//
//	res, err := p.RunLines([]string{
//	    "136/83/65, 132/82/70",
//	    "144/82/86, -, 143/80/68",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Summary.Sys.Min, res.Summary.Sys.Max, res.Summary.Sys.Avg)
//
// # Configuration
//
// Pipelines and parsers use the functional options pattern:
//
//	parser, err := bpdiag.NewPlainParser(
//	    bpdiag.WithDelimiter(";"),
//	    bpdiag.WithSeparator(":"),
//	    bpdiag.WithSkipToken("x"),
//	    bpdiag.WithEntriesPerLine(4),
//	)
//	p, err := bpdiag.New(
//	    bpdiag.WithParser(parser),
//	    bpdiag.WithThresholds(bpdiag.DefaultThresholds()),
//	)
//
// # Parser Variants
//
// Parsers turn heterogeneous line-oriented input into a uniform ordered
// sequence of entries, where each entry is a *[Measurement] or nil for an
// explicitly skipped reading. Built-in variants:
//
//   - [PlainParser]: delimiter-separated sys/dia/pulse entries (the default)
//   - [CSVParser]: delimited-field records decoded with encoding/csv
//   - [RegexParser]: pattern matching with three capture groups
//   - [JSONParser]: structured JSON arrays of triples or objects
//
// All variants satisfy the same [Parser] contract, so the accumulator and
// pipeline are parser-agnostic. Per-entry parse failures are silently
// dropped; the core favors best-effort extraction over strict validation.
//
// # Architecture
//
// bpdiag consists of several collaborator packages:
//
//   - config: YAML configuration for the standalone binary
//   - internal/source: line acquisition from files and readers
//   - internal/export: JSON export of entries and statistics
//   - internal/report: plain-text statistics reports
//   - internal/chart: SVG line chart rendering from embedded templates
//
// The internal packages are not part of the public API and may change
// without notice. The library is designed for single-binary deployment.
package bpdiag

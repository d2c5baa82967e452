// Package export serializes pipeline results to JSON.
//
// Three document shapes are supported, matching the formats downstream
// tooling consumes: an array of [sys, dia, pulse] triples, an array of
// measurement objects, and a statistics envelope. Skipped slots are
// preserved as JSON null in both entry documents so positional alignment
// survives the round trip.
package export

// Package report renders plain-text statistics summaries.
//
// The report format is intended for stderr, keeping stdout free for JSON
// export. Channels without data are reported as "no data" rather than
// zeros.
package report

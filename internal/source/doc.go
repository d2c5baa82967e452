// Package source acquires raw input lines for the parsing pipeline.
//
// The pipeline core is a pure transform over lines it is handed; obtaining
// those lines from files or readers is this package's job. A source that
// cannot be read at all is the only fatal condition in the system — it is
// reported as an error here, while malformed content inside a readable
// source is the parser's (non-fatal) concern.
package source

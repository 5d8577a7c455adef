// Package formatter renders accepted log entries as text.
//
// Formatter returns a []byte; WriterFormatter writes straight into an
// io.Writer. Handlers check for WriterFormatter at construction time
// and prefer it, which skips the intermediate copy on the write path.
//
// TextFormatter produces one line per entry: an optional timestamp,
// the bracketed level, the bracketed logger name when present, the
// message, and ": <error>" when the entry carries an error. It uses a
// pooled bytes.Buffer and time.AppendFormat so the common path does
// not allocate beyond the returned slice. Buffers larger than 64 KiB
// are not returned to the pool.
package formatter

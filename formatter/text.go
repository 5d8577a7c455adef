package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/levellog/core"
)

// TextFormatter formats log entries as a single human-readable line:
//
//	2026-01-15 12:00:00,000 [INFO] [app.db] connected: <error>
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: "[TRACE] ",
	core.DebugLevel: "[DEBUG] ",
	core.InfoLevel:  "[INFO] ",
	core.WarnLevel:  "[WARN] ",
	core.ErrorLevel: "[ERROR] ",
	core.FatalLevel: "[FATAL] ",
}

func (f *TextFormatter) formatToBuffer(entry core.Entry, buf *bytes.Buffer) {
	if !f.DisableTimestamp {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	if entry.Logger != "" && !f.OmitLoggerName {
		buf.WriteByte('[')
		buf.WriteString(entry.Logger)
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)

	if entry.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(entry.Err.Error())
	}

	buf.WriteByte('\n')
}

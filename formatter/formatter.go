package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/levellog/core"
)

// DefaultTimestampFormat renders times as "2006-01-02 15:04:05,000"
const DefaultTimestampFormat = "2006-01-02 15:04:05,000"

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format renders a log entry into bytes
	Format(entry core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without an intermediate byte slice.
type WriterFormatter interface {
	// FormatTo renders a log entry and writes it directly to the writer
	FormatTo(entry core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// DisableTimestamp drops the timestamp prefix from every line
	DisableTimestamp bool
	// OmitLoggerName drops the "[name]" bracket even when the entry has a name
	OmitLoggerName bool
}

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

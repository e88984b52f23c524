package formatter

import (
	"bytes"
	"sync"
)

// DefaultTimestampFormat renders ISO-8601 with milliseconds and a numeric
// zone offset, e.g. "2024-01-15T10:30:00.000+0000".
const DefaultTimestampFormat = "2006-01-02T15:04:05.000-0700"

// Delimiters of the text format. Fields are joined by FieldDelimiter;
// the function name and the message are joined by MessageDelimiter.
const (
	FieldDelimiter   = " | "
	MessageDelimiter = " - "
)

// Config holds formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
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

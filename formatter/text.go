package formatter

import (
	"bytes"
	"path/filepath"
	"strconv"

	"github.com/swixbase/log/core"
)

// TextFormatter renders log entries as delimited single-line text:
//
//	<timestamp> | <SEVERITY> | <file>:<line> | <function> - <message>\n
//
// The file field holds only the base name of the entry's source path.
// Output is a pure function of the entry and the configured timestamp
// layout, so identical inputs always yield byte-identical lines.
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

// pre-formatted severity fields to avoid multiple WriteString calls
var severityFields = [...]string{
	core.VerboseLevel: " | VERBOSE | ",
	core.DebugLevel:   " | DEBUG | ",
	core.InfoLevel:    " | INFO | ",
	core.WarningLevel: " | WARNING | ",
	core.ErrorLevel:   " | ERROR | ",
}

// Format renders an entry as one newline-terminated line.
func (f *TextFormatter) Format(entry *core.Entry) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.AppendEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// AppendEntry writes the formatted entry into the given buffer.
func (f *TextFormatter) AppendEntry(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Severity - use pre-formatted string
	if s := int(entry.Severity); s >= 0 && s < len(severityFields) {
		buf.WriteString(severityFields[s])
	} else {
		buf.WriteString(" | UNKNOWN | ")
	}

	// Location: base file name and decimal line, no padding
	buf.WriteString(filepath.Base(entry.File))
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(entry.Line))
	buf.WriteString(FieldDelimiter)

	buf.WriteString(entry.Function)
	buf.WriteString(MessageDelimiter)
	buf.WriteString(entry.Message)

	buf.WriteByte('\n')
}

package writer

import (
	"bytes"
	"os"
	"sync"

	"golang.org/x/text/encoding"

	"github.com/swixbase/log/core"
	"github.com/swixbase/log/formatter"
)

// Config holds configuration for a FileWriter.
type Config struct {
	// Path is the destination log file; created if absent, appended otherwise
	Path string
	// Encoding selects the output text encoding (default UTF8)
	Encoding Encoding
	// TimestampFormat is the Go layout for entry timestamps
	// (default formatter.DefaultTimestampFormat)
	TimestampFormat string
}

// FileWriter owns an append-only log file and performs durable writes.
// Every Record call appends one encoded line and syncs it to storage
// before returning; nothing is buffered across calls.
//
// The file handle is exclusively owned: opened at construction, valid
// until Close, never shared between writers. A mutex serializes the
// format-encode-write-sync sequence, so a single FileWriter is safe for
// concurrent use; sharing the same file between two writers is not.
type FileWriter struct {
	file      *os.File
	formatter *formatter.TextFormatter
	encoder   *encoding.Encoder // nil when output is UTF-8
	mu        sync.Mutex
	buf       bytes.Buffer
	stats     Stats
	closed    bool
}

// New opens (or creates) the file at cfg.Path for appending and returns
// a writer over it. Construction is atomic: on any failure the error is
// an *OpenError and no writer or open handle remains.
func New(cfg Config) (*FileWriter, error) {
	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, &OpenError{Path: cfg.Path, Err: err}
	}

	w := &FileWriter{
		file:      file,
		formatter: formatter.NewTextFormatter(formatter.Config{TimestampFormat: cfg.TimestampFormat}),
		encoder:   cfg.Encoding.newEncoder(),
	}
	w.buf.Grow(256)
	return w, nil
}

// Record appends one entry to the file and syncs it to storage. The
// timestamp is taken at the time of the call using the configured
// layout. sourceFile may be a full path; only its base name is written.
// Failures during encoding, appending, or syncing are returned as a
// *WriteError, as is recording on a closed writer.
func (w *FileWriter) Record(message, sourceFile string, sourceLine int, function string, severity core.Severity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return &WriteError{Op: "write", Err: ErrClosed}
	}

	entry := core.GetEntry()
	entry.Severity = severity
	entry.File = sourceFile
	entry.Line = sourceLine
	entry.Function = function
	entry.Message = message

	w.buf.Reset()
	w.formatter.AppendEntry(entry, &w.buf)
	core.PutEntry(entry)

	line := w.buf.Bytes()
	if w.encoder != nil {
		encoded, err := w.encoder.Bytes(line)
		if err != nil {
			return &WriteError{Op: "encode", Err: err}
		}
		line = encoded
	}

	n, err := w.file.Write(line)
	if err != nil {
		return &WriteError{Op: "write", Err: err}
	}
	if err := w.file.Sync(); err != nil {
		return &WriteError{Op: "sync", Err: err}
	}

	w.stats.incrementRecorded(n)
	return nil
}

// Stats returns a snapshot of the current statistics
func (w *FileWriter) Stats() Snapshot {
	return w.stats.GetSnapshot()
}

// Close syncs and releases the underlying file. It is safe to call more
// than once; calls after the first return nil. Record calls after Close
// fail with a *WriteError wrapping ErrClosed; there is no reopening.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.file.Sync(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// Package formatter renders log entries into their single-line text form.
//
// TextFormatter produces the delimited layout written to disk: timestamp,
// severity label, and "file:line" location joined by " | ", then the
// function name and message joined by " - ", terminated by a newline.
// Formatting is deterministic and side-effect-free.
//
// The formatter uses a pooled bytes.Buffer internally and relies on Go's
// Append-style functions (time.AppendFormat, strconv.Itoa on a buffer) to
// keep the write path cheap. AppendEntry lets the writer format into its
// own buffer and skip the intermediate byte slice entirely.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter

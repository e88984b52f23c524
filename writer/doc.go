// Package writer provides the durable file destination for log entries.
//
// FileWriter opens its file once at construction and owns the handle for
// its whole lifetime. Record formats an entry, encodes it with the
// configured text encoding, appends the bytes, and forces a sync to
// storage before returning. There is no buffering, batching, or
// rotation; the file only ever grows.
//
// Errors split into exactly two kinds: *OpenError at construction when
// the destination cannot be opened for appending, and *WriteError from
// Record when encoding, appending, or syncing fails. Both wrap their
// cause for errors.Is and errors.As.
//
// Supported encodings are a closed set backed by golang.org/x/text:
// UTF-8, UTF-16 (either endianness), ISO 8859-1, and Windows-1252.
// Encoders are strict: a rune the target encoding cannot represent
// fails the Record call rather than being silently replaced.
package writer

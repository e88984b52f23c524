package writer

import (
	"errors"
	"fmt"
)

// ErrClosed reports a Record call on a writer that has been closed.
// It is always wrapped in a *WriteError.
var ErrClosed = errors.New("writer is closed")

// OpenError is the single error kind surfaced at construction: the
// destination file could not be opened for appending. All underlying
// causes (invalid path, permissions, unavailable disk) collapse into
// this one kind; the cause stays reachable through Unwrap.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("log: open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// WriteError reports a failure while recording an entry: encoding the
// line, appending it to the file, or syncing it to storage. Op names
// the step that failed ("encode", "write", or "sync").
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("log: %s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

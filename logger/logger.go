package logger

import (
	"github.com/swixbase/log/core"
	"github.com/swixbase/log/writer"
)

// Logger is a thin front-end over a FileWriter that captures the call
// site automatically. Every call is recorded; there is no level
// filtering.
type Logger struct {
	writer     *writer.FileWriter
	callerSkip int
}

// Option configures a Logger
type Option func(*Logger)

// WithCallerSkip sets how many stack frames are skipped when capturing
// the call site. The default suits direct calls on Logger methods;
// wrappers add one per layer.
func WithCallerSkip(skip int) Option {
	return func(l *Logger) { l.callerSkip = skip }
}

// New creates a Logger that records through w.
func New(w *writer.FileWriter, opts ...Option) *Logger {
	l := &Logger{
		writer:     w,
		callerSkip: 3, // Caller -> log -> severity method -> call site
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Logger) log(severity core.Severity, msg string) error {
	caller := core.Caller(l.callerSkip)
	return l.writer.Record(msg, caller.File, caller.Line, caller.Function, severity)
}

// Verbose records msg at VERBOSE severity.
func (l *Logger) Verbose(msg string) error { return l.log(core.VerboseLevel, msg) }

// Debug records msg at DEBUG severity.
func (l *Logger) Debug(msg string) error { return l.log(core.DebugLevel, msg) }

// Info records msg at INFO severity.
func (l *Logger) Info(msg string) error { return l.log(core.InfoLevel, msg) }

// Warning records msg at WARNING severity.
func (l *Logger) Warning(msg string) error { return l.log(core.WarningLevel, msg) }

// Error records msg at ERROR severity.
func (l *Logger) Error(msg string) error { return l.log(core.ErrorLevel, msg) }

// Close closes the underlying writer.
func (l *Logger) Close() error {
	return l.writer.Close()
}

package core

import (
	"fmt"
	"strings"
)

// Severity represents the importance of a log entry
type Severity int8

const (
	// VerboseLevel for highly detailed tracing output
	VerboseLevel Severity = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the fixed textual label of the severity as it appears
// in log output.
func (s Severity) String() string {
	switch s {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity. Matching is
// case-insensitive and accepts "WARN" as an alias for "WARNING".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(s) {
	case "VERBOSE":
		return VerboseLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown severity %q", s)
	}
}

// Severities returns all defined severities in ascending order.
func Severities() []Severity {
	return []Severity{VerboseLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel}
}

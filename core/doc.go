// Package core defines the shared types used across the log module.
//
// It provides the Severity type with its fixed output labels, the Entry
// type that represents a single log event, and the CallerInfo type for
// call-site location capture.
//
// Entry objects are pooled via sync.Pool so the front-end hot path stays
// allocation-free. Callers get an Entry with GetEntry and must return it
// with PutEntry once the writer has consumed it.
package core

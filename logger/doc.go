// Package logger offers a call-site convenience layer over writer.
//
// A Logger wraps one FileWriter and adds automatic capture of the
// calling file, line, and function via runtime.Caller, so call sites
// only supply the message and pick a severity method. It deliberately
// does not filter: the writer below records everything it is handed.
package logger

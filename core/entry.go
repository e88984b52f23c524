package core

import (
	"runtime"
	"sync"
	"time"
)

// Entry represents a single log event with all its metadata.
// Entries are transient: they exist only between the call site and the
// writer and have no identity beyond the bytes eventually written.
type Entry struct {
	Time     time.Time
	Severity Severity
	File     string
	Line     int
	Function string
	Message  string
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File     string
	Line     int
	Function string
	Defined  bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool with Time set to now.
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.File = ""
	e.Line = 0
	e.Function = ""
	e.Message = ""
	entryPool.Put(e)
}

// Caller retrieves caller information skip frames up the stack.
func Caller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:     file,
		Line:     line,
		Function: funcName,
		Defined:  true,
	}
}

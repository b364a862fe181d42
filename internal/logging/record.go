package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "2006-01-02 15:04:05.000"

// Caller identifies the call site that produced a record.
type Caller struct {
	File     string // file name without directory or extension
	Function string
	Line     int
}

// Record is a single log call. It is formatted and written immediately.
type Record struct {
	Level   Level
	Message string
	Caller  Caller
	Time    time.Time
}

// Format renders the record as one human-readable line without a trailing newline.
func (r Record) Format() string {
	return fmt.Sprintf("%-8s %s %s at %s#%s() lineno=%d",
		r.Level, r.Time.Format(TimeFormat), r.Message,
		r.Caller.File, r.Caller.Function, r.Caller.Line)
}

// callerAt resolves the call site skip frames above its own caller.
func callerAt(skip int) Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{File: "unknown", Function: "unknown"}
	}

	c := Caller{
		File:     strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
		Function: "unknown",
		Line:     line,
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		c.Function = shortFuncName(fn.Name())
	}
	return c
}

// shortFuncName strips the import path and package from a runtime function name,
// so "github.com/x/y/lifecycle.(*Runner).Run" becomes "(*Runner).Run".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

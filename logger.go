package suitekit

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const logTimestampFormat = "2006-01-02 15:04:05.000"

// Logger is a minimal printf-style sink for diagnostic output produced while
// cases run.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// LogEntry is one captured diagnostic message.
type LogEntry struct {
	Time    time.Time
	Message string
}

type CapturedLog []LogEntry

// CapturingLogger buffers diagnostic messages so the caller can decide after
// the run whether to show them, for example only when a case failed. Safe
// for concurrent use.
type CapturingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (l *CapturingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	l.entries = append(l.entries, LogEntry{Time: time.Now(), Message: fmt.Sprintf(format, args...)})
	l.mu.Unlock()
}

// Entries returns a copy of everything captured so far.
func (l *CapturingLogger) Entries() CapturedLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append(CapturedLog(nil), l.entries...)
}

// Dump writes the captured messages to dest, one per line, each with prefix
// and its timestamp.
func (log CapturedLog) Dump(dest io.Writer, prefix string) {
	for _, e := range log {
		fmt.Fprintf(dest, "%s[%s] %s\n", prefix, e.Time.Format(logTimestampFormat), e.Message)
	}
}

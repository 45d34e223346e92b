package verification

import (
	"fmt"
	"sync"
	"time"
)

// defaultLogCap bounds the in-memory activity log. The workflow contract does
// not require a cap; this one only protects long-lived sessions from
// unbounded growth.
const defaultLogCap = 500

// LogEntry is one human-readable activity record.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// ActivityLog is an append-only, newest-first list of user-visible events.
// It lives in memory only and is never persisted.
type ActivityLog struct {
	mu      sync.Mutex
	entries []LogEntry
	cap     int
	now     func() time.Time
}

// NewActivityLog creates an empty activity log.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{cap: defaultLogCap, now: time.Now}
}

// Append records a formatted message with the current local time.
func (l *ActivityLog) Append(format string, args ...any) {
	entry := LogEntry{
		Timestamp: l.now().Format("15:04:05"),
		Message:   fmt.Sprintf(format, args...),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]LogEntry{entry}, l.entries...)
	if len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}
}

// Entries returns a copy of the log, newest first.
func (l *ActivityLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

package activity

import (
	"fmt"
	"sync"
	"time"
)

// DefaultCapacity is the number of entries retained when none is configured.
const DefaultCapacity = 100

// Severity classifies an entry for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Entry is one line of the activity log.
type Entry struct {
	Seq       uint64
	Timestamp time.Time
	Message   string
	Severity  Severity
}

// String renders the entry as "[15:04:05] message".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Timestamp.Format("15:04:05"), e.Message)
}

// Sink receives every appended entry, after the log's lock is released.
type Sink interface {
	Append(Entry)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Entry)

func (f SinkFunc) Append(e Entry) { f(e) }

// Log is a bounded FIFO of entries. It is safe for concurrent use.
type Log struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
	nextSeq  uint64
	now      func() time.Time
	sinks    []Sink
}

// NewLog constructs a log holding at most capacity entries.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
		now:      time.Now,
	}
}

// SetClock overrides the timestamp source.
func (l *Log) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}

// AddSink wires an additional sink that receives every appended entry.
func (l *Log) AddSink(sink Sink) {
	if sink == nil {
		return
	}
	l.mu.Lock()
	l.sinks = append(l.sinks, sink)
	l.mu.Unlock()
}

// Add appends a message, evicting the oldest entry when full.
func (l *Log) Add(severity Severity, message string) Entry {
	if severity == "" {
		severity = SeverityInfo
	}
	l.mu.Lock()
	l.nextSeq++
	entry := Entry{Seq: l.nextSeq, Timestamp: l.now(), Message: message, Severity: severity}
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.capacity-1]
	}
	l.entries = append(l.entries, entry)
	sinks := append([]Sink(nil), l.sinks...)
	l.mu.Unlock()

	for _, sink := range sinks {
		sink.Append(entry)
	}
	return entry
}

func (l *Log) Info(message string) Entry    { return l.Add(SeverityInfo, message) }
func (l *Log) Success(message string) Entry { return l.Add(SeveritySuccess, message) }
func (l *Log) Warning(message string) Entry { return l.Add(SeverityWarning, message) }
func (l *Log) Error(message string) Entry   { return l.Add(SeverityError, message) }

// Entries returns a copy of the retained entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Since returns retained entries with a sequence number greater than seq.
func (l *Log) Since(seq uint64) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, 0, len(l.entries))
	for _, entry := range l.entries {
		if entry.Seq > seq {
			out = append(out, entry)
		}
	}
	return out
}

// Len reports the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Capacity reports the maximum number of retained entries.
func (l *Log) Capacity() int {
	return l.capacity
}

// Clear drops every entry. Sequence numbers keep increasing.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = l.entries[:0]
	l.mu.Unlock()
}

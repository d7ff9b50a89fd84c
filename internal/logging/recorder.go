package logging

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one recorded log line.
type Entry struct {
	Level     string
	Component string
	Message   string
}

// Recorder keeps log lines in memory. The preview server uses it to expose
// the most recent warnings; tests use it to assert on them.
type Recorder struct {
	mu      sync.Mutex
	max     int
	entries []Entry
}

// NewRecorder keeps at most max entries (0 keeps everything).
func NewRecorder(max int) *Recorder { return &Recorder{max: max} }

func (r *Recorder) Infof(component string, format string, args ...interface{}) {
	r.add("INFO", component, format, args...)
}

func (r *Recorder) Warnf(component string, format string, args ...interface{}) {
	r.add("WARN", component, format, args...)
}

func (r *Recorder) Errorf(component string, format string, args ...interface{}) {
	r.add("ERROR", component, format, args...)
}

func (r *Recorder) add(level, component, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Component: component, Message: fmt.Sprintf(format, args...)})
	if r.max > 0 && len(r.entries) > r.max {
		r.entries = append(r.entries[:0], r.entries[len(r.entries)-r.max:]...)
	}
}

// Entries returns a copy of the recorded lines, optionally filtered by level.
func (r *Recorder) Entries(level string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if level == "" || strings.EqualFold(e.Level, level) {
			out = append(out, e)
		}
	}
	return out
}

// Tee fans every call out to all loggers.
type Tee []Logger

func (t Tee) Infof(component string, format string, args ...interface{}) {
	for _, l := range t {
		l.Infof(component, format, args...)
	}
}

func (t Tee) Warnf(component string, format string, args ...interface{}) {
	for _, l := range t {
		l.Warnf(component, format, args...)
	}
}

func (t Tee) Errorf(component string, format string, args ...interface{}) {
	for _, l := range t {
		l.Errorf(component, format, args...)
	}
}

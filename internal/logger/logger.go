package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when none is configured, relative to the working directory.
const DefaultPath = "logs/cubefield.txt"

// Logger records host lifecycle lines (window opened, field attached, surface lost)
// in memory and appends them to a file on disk. The cube field core never logs; the
// host logs what the core reports.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger appending to path (DefaultPath if empty) and ensures its
// directory exists.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Log appends a line prefixed with [timestamp] to memory and to the log file.
// A file that cannot be opened does not lose the in-memory line.
func (l *Logger) Log(line string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package logger implements a small central, write-once diagnostic sink.
// Entries are never returned to a caller individually; they accumulate in a
// bounded ring and can be dumped or tailed by whoever is interested (a CLI,
// a test, a GUI console).
package logger

import (
	"fmt"
	"io"
	"sync"
)

// Permission allows a caller to suppress logging conditionally, without the
// logger itself knowing why.
type Permission interface {
	AllowLogging() bool
}

type allowPermission struct{}

func (allowPermission) AllowLogging() bool { return true }

// Allow is the Permission used by callers that always want their message
// logged.
var Allow = allowPermission{}

type denyPermission struct{}

func (denyPermission) AllowLogging() bool { return false }

// Deny is the Permission used by callers that want to suppress logging
// unconditionally, without removing the Log/Logf call sites themselves.
var Deny = denyPermission{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Logger is a bounded, central log. The zero value is not usable; use
// NewLogger.
type Logger struct {
	mu      sync.Mutex
	entries []entry
	max     int
}

// NewLogger returns a Logger that keeps at most max entries, discarding the
// oldest entries once that limit is reached.
func NewLogger(max int) *Logger {
	return &Logger{
		entries: make([]entry, 0, max),
		max:     max,
	}
}

func formatDetail(detail interface{}) string {
	switch d := detail.(type) {
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	case string:
		return d
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Log appends a single entry under tag, if perm allows logging.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm != nil && !perm.AllowLogging() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) >= l.max {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, entry{tag: tag, detail: formatDetail(detail)})
}

// Logf is like Log but the detail is built with fmt.Sprintf.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	l.Log(perm, tag, fmt.Sprintf(format, args...))
}

// Write dumps every retained entry to w, oldest first.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		io.WriteString(w, e.String())
	}
}

// Tail writes the most recent n entries to w, oldest first. Asking for more
// entries than exist is not an error.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-n:] {
		io.WriteString(w, e.String())
	}
}

// Clear discards every retained entry.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// central is the process-wide logger used by the package-level functions
// below.
var central = NewLogger(2000)

// Log appends a single entry to the central logger.
func Log(perm Permission, tag string, detail interface{}) { central.Log(perm, tag, detail) }

// Logf is like Log but the detail is built with fmt.Sprintf.
func Logf(perm Permission, tag string, format string, args ...interface{}) {
	central.Logf(perm, tag, format, args...)
}

// Write dumps the central logger's retained entries to w.
func Write(w io.Writer) { central.Write(w) }

// Tail writes the most recent n entries from the central logger to w.
func Tail(w io.Writer, n int) { central.Tail(w, n) }

// Clear discards every entry in the central logger.
func Clear() { central.Clear() }

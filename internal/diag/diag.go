// Package diag collects startup diagnostics. Missing optional
// capabilities are reported here as structured records rather than
// errors, so hosts and tests can inspect what degraded without scraping
// output.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Kind classifies a diagnostic record.
type Kind string

const (
	// KindMissingCapability marks an optional dependency that resolved
	// to a stub.
	KindMissingCapability Kind = "missing_capability"
	// KindWarning marks a general warning.
	KindWarning Kind = "warning"
)

// Record is a single emitted diagnostic.
type Record struct {
	Kind       Kind
	Capability string
	Message    string
}

var (
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	styleFaint = lipgloss.NewStyle().Faint(true)
)

// Log accumulates diagnostics and mirrors them to a writer.
type Log struct {
	mu      sync.Mutex
	out     io.Writer
	colored bool
	records []Record
	seen    map[string]bool
}

// New returns a Log writing to out. A nil out falls back to stderr.
func New(out io.Writer) *Log {
	if out == nil {
		out = os.Stderr
	}
	return &Log{out: out, colored: true, seen: make(map[string]bool)}
}

// SetColored enables or disables styled labels.
func (l *Log) SetColored(colored bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colored = colored
}

// MissingCapability records that the named optional capability is
// unavailable. Repeat reports for the same capability are dropped, so a
// stub handle can call this unconditionally.
func (l *Log) MissingCapability(capability, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seen[capability] {
		return
	}
	l.seen[capability] = true
	l.records = append(l.records, Record{
		Kind:       KindMissingCapability,
		Capability: capability,
		Message:    message,
	})
	l.emit("warn", styleWarn, "%s: %s", capability, message)
}

// Warnf records a general warning.
func (l *Log) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, Record{
		Kind:    KindWarning,
		Message: fmt.Sprintf(format, args...),
	})
	l.emit("warn", styleWarn, format, args...)
}

func (l *Log) emit(label string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.colored {
		fmt.Fprintf(l.out, "%s %s\n", style.Render("["+label+"]"), styleFaint.Render(msg))
		return
	}
	fmt.Fprintf(l.out, "[%s] %s\n", label, msg)
}

// Records returns a copy of everything recorded so far.
func (l *Log) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// CountKind returns how many records of kind k have been emitted.
func (l *Log) CountKind(k Kind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, r := range l.records {
		if r.Kind == k {
			n++
		}
	}
	return n
}

var (
	defaultLog  *Log
	defaultOnce sync.Once
)

// Default returns the process-wide diagnostics log.
func Default() *Log {
	defaultOnce.Do(func() {
		defaultLog = New(os.Stderr)
	})
	return defaultLog
}

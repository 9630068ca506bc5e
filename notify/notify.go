// Package notify provides scoped console status reporting and optional
// push notifications for long-running interactive work.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/jask/benchkit/glyph"
)

var (
	arrowGlyph, _ = glyph.Lookup("arrow")
	checkGlyph, _ = glyph.Lookup("check")
)

// Notifier dispatches console and push notifications through resolved
// capability handles.
type Notifier struct {
	pusher Pusher
	sub    glyph.Substituter
	out    io.Writer
}

// New returns a Notifier writing console output to stdout.
func New(caps Capabilities) *Notifier {
	return &Notifier{pusher: caps.Pusher, sub: caps.Sub, out: os.Stdout}
}

// SetOutput redirects console output, primarily for tests and embedding
// hosts.
func (n *Notifier) SetOutput(w io.Writer) { n.out = w }

// Scope prints "<arrow>  <title>..." before running fn and "Done! <check>"
// after it concludes. The completion line prints on every exit path,
// including panics; fn's error is returned unchanged. An empty title
// defaults to "Loading".
//
// Writes go straight to the underlying writer, so the opening line is
// fully emitted before fn starts.
func (n *Notifier) Scope(title string, fn func() error) error {
	if title == "" {
		title = "Loading"
	}
	fmt.Fprintf(n.out, "%c  %s...", arrowGlyph, title)
	defer fmt.Fprintf(n.out, "Done! %c\n", checkGlyph)
	return fn()
}

// Push sends a message through the push transport, expanding glyph
// aliases in the message and optional title first. Transport errors are
// returned as-is; there is no retry.
func (n *Notifier) Push(message string, title ...string) error {
	t := ""
	if len(title) > 0 {
		t = title[0]
	}
	return n.pusher.Send(n.sub.Substitute(message, true), n.sub.Substitute(t, true))
}

// Pem prints message to the console with glyph aliases expanded.
func (n *Notifier) Pem(message string) {
	fmt.Fprintln(n.out, n.sub.Substitute(message, true))
}

// ---------------------------------------------------------------------------
// Package-level convenience wrappers over the default notifier
// ---------------------------------------------------------------------------

// Scope runs fn inside a scoped console report on the default notifier.
func Scope(title string, fn func() error) error { return Default().Scope(title, fn) }

// Push sends a push notification through the default notifier.
func Push(message string, title ...string) error { return Default().Push(message, title...) }

// Pem prints an alias-expanded message through the default notifier.
func Pem(message string) { Default().Pem(message) }

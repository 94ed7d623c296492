package klaxon

import (
	"fmt"
	"strings"
	"time"
)

// Event is a fully-resolved log event as delivered to sinks.
//
// The router fills in Elapsed, Frame and Thread under the global lock, so
// sinks render events without touching any shared state. Events are ephemeral
// values: constructed and consumed within a single routing call, never stored.
type Event struct {
	Module   string
	Severity Severity
	File     string
	Line     int
	Message  string

	// Elapsed is the monotonic uptime since the router was constructed.
	Elapsed time.Duration
	// Frame is the host application's frame index, zero when unused.
	Frame uint64
	// Thread is the reporting goroutine's registered name, empty when unnamed.
	Thread string
}

// Clone returns a copy of the event.
//
// This satisfies the pipz.Cloner interface so sinks can be composed into
// pipz connectors that require isolated copies. Event is a flat value type,
// so a plain copy is a deep copy.
func (e Event) Clone() Event {
	return e
}

// appendHeader writes the bracketed plain-text header:
//
//	[<elapsed> (<frame>) <SEVERITY> <module> {<file>:<line>} (<thread>)]
//
// Frame, source and thread fields are elided when zero or absent.
func (e Event) appendHeader(b *strings.Builder) {
	b.WriteByte('[')
	fmt.Fprintf(b, "%5.4f ", e.Elapsed.Seconds())
	if e.Frame != 0 {
		fmt.Fprintf(b, "(%d) ", e.Frame)
	}
	b.WriteString(e.Severity.String())
	b.WriteByte(' ')
	b.WriteString(e.Module)
	if e.File != "" {
		fmt.Fprintf(b, " {%s:%d}", e.File, e.Line)
	}
	if e.Thread != "" {
		fmt.Fprintf(b, " (%s)", e.Thread)
	}
	b.WriteString("] ")
}

// render returns the complete plain-text line for the event, including the
// trailing newline. File and writer sinks emit exactly this.
func (e Event) render() string {
	var b strings.Builder
	b.Grow(64 + len(e.Message))
	e.appendHeader(&b)
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.String()
}

// Package klaxon provides a process-wide, severity-routed logging facility.
//
// Subsystems construct a Module handle once and report printf-style messages
// through it. Every report is serialized under a single router lock, counted,
// and fanned out to the registered sinks in registration order. Severity
// drives escalation: Error bumps a process-wide tally and fires the
// breakpoint trap, Fatal additionally guarantees console visibility and
// terminates the process.
//
// # Basic Usage
//
// Register sinks once at startup, then report from anywhere:
//
//	klaxon.RegisterConsoleSink()
//	klaxon.RegisterFileSink("app.log")
//
//	var log = klaxon.NewModule("boot")
//
//	log.Info("starting up (%d workers)", workers)
//	log.Error("cache unavailable: %v", err)
//	log.Fatal("config missing")  // terminates the process
//
// With no sinks registered, non-Fatal reports are free: the message is never
// formatted and nothing is counted. Fatal reports always go through - a
// console sink is auto-provisioned so the last words of a dying process are
// never lost to a file-only or headless configuration.
//
// # Sinks
//
// The built-in sinks write to stderr (with color on interactive terminals)
// and to append-mode files (reopened per event for crash-safety). Custom
// destinations plug in through NewSink:
//
//	ring := klaxon.NewSink("crash-ring", func(_ context.Context, event klaxon.Event) error {
//	    buf.Push(event.Message)
//	    return nil
//	})
//	klaxon.AddSink(ring)
//
// Sink registration is idempotent per destination, dispatch order is
// registration order, and a failing sink never affects the others.
//
// # Output
//
// Each event renders as one line:
//
//	[<elapsed> (<frame>) <SEVERITY> <module> {<file>:<line>} (<thread>)] <message>
//
// Frame index, source location and thread name appear only when set. Hosts
// publish the frame index from their main loop via SetFrameIndex and name
// worker goroutines via RegisterThreadName.
//
// Built on github.com/zoobzio/pipz for sink composition.
package klaxon

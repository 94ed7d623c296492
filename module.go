package klaxon

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Module is a per-subsystem reporting handle. Construct one per subsystem,
// centrally, and report through it:
//
//	var log = klaxon.NewModule("boot")
//
//	func start() {
//	    log.Info("starting up (%d workers)", workers)
//	}
//
// Module is a small value and safe for concurrent use.
type Module struct {
	name string
	r    *Router
}

// NewModule returns a reporting handle bound to the default router.
func NewModule(name string) Module {
	return Module{name: name, r: std}
}

// Module returns a reporting handle bound to this router.
func (r *Router) Module(name string) Module {
	return Module{name: name, r: r}
}

// reportable gates the formatting work: when no sinks are registered the
// message is never rendered, except for Fatal which always goes through.
func (m Module) reportable(severity Severity) bool {
	return severity == Fatal || m.r.HasSinks()
}

// Report formats a printf-style message and routes it at the given severity.
func (m Module) Report(severity Severity, format string, args ...any) {
	if !m.reportable(severity) {
		return
	}
	m.r.Route(m.name, severity, fmt.Sprintf(format, args...))
}

// ReportSource is Report with the caller's source location captured and
// carried in the event header as {file:line}.
func (m Module) ReportSource(severity Severity, format string, args ...any) {
	if !m.reportable(severity) {
		return
	}
	file, line := callerSource(2)
	m.r.RouteSource(m.name, severity, file, line, fmt.Sprintf(format, args...))
}

// Info reports a non-error informative message.
func (m Module) Info(format string, args ...any) {
	m.Report(Info, format, args...)
}

// Warn reports a non-error warning message.
func (m Module) Warn(format string, args ...any) {
	m.Report(Warning, format, args...)
}

// Error reports a recoverable error message, incrementing the process-wide
// error tally.
func (m Module) Error(format string, args ...any) {
	m.Report(Error, format, args...)
}

// Fatal reports a non-recoverable error message and terminates the process.
// A console sink is provisioned if none is registered, so the message is
// visible even in file-only configurations. Fatal does not return.
func (m Module) Fatal(format string, args ...any) {
	m.Report(Fatal, format, args...)
}

// callerSource captures the reporting call site, skip frames up the stack.
func callerSource(skip int) (string, int) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return filepath.Base(file), line
	}
	return "", 0
}

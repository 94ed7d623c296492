package klaxon

import "os/exec"

// std is the process-wide default router backing the package-level API.
var std = NewRouter()

// Default returns the process-wide default router. Hosts that need to
// replace the trap or terminate hooks, or tear logging down explicitly,
// reach it through here.
func Default() *Router {
	return std
}

// RegisterConsoleSink registers the stderr console sink on the default
// router. If a console sink is already registered, this is a no-op.
func RegisterConsoleSink() {
	std.RegisterConsoleSink()
}

// RegisterFileSink registers a file sink on the default router. If a file
// sink for the same path is already registered, this is a no-op.
func RegisterFileSink(path string) {
	std.RegisterFileSink(path)
}

// AddSink registers a custom sink on the default router.
func AddSink(sink *Sink) {
	std.AddSink(sink)
}

// ClearSinks removes all sinks from the default router, returning it to
// silent operation.
func ClearSinks() {
	std.ClearSinks()
}

// SetFrameIndex publishes the host application's frame index on the default
// router. The host is responsible for updating it within its main loop.
func SetFrameIndex(frame uint64) {
	std.SetFrameIndex(frame)
}

// EventCount returns the default router's routed-event count.
func EventCount() uint64 {
	return std.EventCount()
}

// ErrorCount returns the default router's error tally.
func ErrorCount() uint64 {
	return std.ErrorCount()
}

// TrackProcess records a child process on the default router, to be stopped
// when a Fatal event terminates the process.
func TrackProcess(cmd *exec.Cmd) {
	std.TrackProcess(cmd)
}

// ForgetProcess removes a tracked child process from the default router.
func ForgetProcess(cmd *exec.Cmd) {
	std.ForgetProcess(cmd)
}

package klaxon

import (
	"context"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"
)

// Router is the process-wide routing pipeline.
//
// A single lock serializes every routing call, making the whole pipeline -
// counter increment, in-order dispatch to all sinks, severity escalation -
// atomic across goroutines. A slow sink therefore stalls all reporting
// goroutines until it completes; that is the accepted price of strict
// ordering.
//
// Most applications use the package-level default router. Constructing a
// dedicated Router is useful for tests and for hosts that want to tear the
// pipeline down deterministically via Shutdown rather than rely on process
// exit.
type Router struct {
	mu       sync.Mutex
	sinks    []*Sink
	disabled bool

	events atomic.Uint64
	errors atomic.Uint64
	frame  atomic.Uint64
	start  time.Time

	trap      func()
	terminate func()
	procs     []*exec.Cmd

	// consoleFactory builds the sink used for console registration and
	// Fatal auto-provisioning. Overridden in tests to capture output.
	consoleFactory func() *Sink
}

// Option configures a Router at construction time.
type Option func(*Router)

// WithTrap replaces the debugger-trap hook fired on Error and Fatal events.
// The default is Breakpoint. The hook must not call back into the router.
func WithTrap(fn func()) Option {
	return func(r *Router) {
		r.trap = fn
	}
}

// WithTerminate replaces the terminal action taken after a Fatal event is
// dispatched. The default stops tracked child processes and exits the
// process. A replacement that returns makes the routing call return, which
// is only meaningful in tests; production routers should keep a true
// process-ending action here.
func WithTerminate(fn func()) Option {
	return func(r *Router) {
		r.terminate = fn
	}
}

// NewRouter constructs a routing pipeline with an empty sink registry.
// The monotonic uptime reference starts now.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		start:          time.Now(),
		trap:           Breakpoint,
		consoleFactory: newConsoleSink,
	}
	r.terminate = r.defaultTerminate
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterConsoleSink registers the stderr console sink.
// If a console sink is already registered, this is a no-op.
func (r *Router) RegisterConsoleSink() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disabled {
		return
	}
	r.registerConsoleLocked()
}

func (r *Router) registerConsoleLocked() {
	for _, s := range r.sinks {
		if s.kind == kindConsole {
			return
		}
	}
	r.sinks = append(r.sinks, r.consoleFactory())
}

// RegisterFileSink registers a sink appending to the file at path.
// If a file sink for the same path is already registered, this is a no-op.
func (r *Router) RegisterFileSink(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disabled {
		return
	}
	for _, s := range r.sinks {
		if s.kind == kindFile && s.key == path {
			return
		}
	}
	r.sinks = append(r.sinks, newFileSink(path))
}

// AddSink registers a custom sink. Sinks are deduplicated by kind and
// identity key, so adding the same named sink twice is a no-op.
func (r *Router) AddSink(sink *Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disabled {
		return
	}
	for _, s := range r.sinks {
		if s.kind == sink.kind && s.key == sink.key {
			return
		}
	}
	r.sinks = append(r.sinks, sink)
}

// ClearSinks removes all registered sinks. Subsequent non-Fatal routing
// calls become no-ops until new sinks are registered.
func (r *Router) ClearSinks() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = nil
}

// HasSinks reports whether any sink is registered. Call sites use this to
// skip formatting work entirely on informational paths when logging is off.
func (r *Router) HasSinks() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sinks) > 0
}

// SinkCount returns the number of registered sinks.
func (r *Router) SinkCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sinks)
}

// Shutdown disables the router. Routing calls made afterwards are silent
// no-ops, so stray reports during process teardown are safe. Registered
// sinks are released.
func (r *Router) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled = true
	r.sinks = nil
}

// Route dispatches a pre-formatted message to every registered sink.
//
// With an empty registry the call is a no-op unless severity is Fatal, in
// which case a console sink is auto-provisioned so the message is guaranteed
// visible even in headless or file-only configurations. Fatal never returns.
func (r *Router) Route(module string, severity Severity, message string) {
	r.route(module, severity, "", 0, message)
}

// RouteSource is Route with an explicit source location carried in the event
// header as {file:line}.
func (r *Router) RouteSource(module string, severity Severity, file string, line int, message string) {
	r.route(module, severity, file, line, message)
}

func (r *Router) route(module string, severity Severity, file string, line int, message string) {
	r.mu.Lock()
	if r.disabled {
		r.mu.Unlock()
		return
	}
	if len(r.sinks) == 0 && severity != Fatal {
		r.mu.Unlock()
		return
	}

	r.events.Add(1)
	if severity == Fatal {
		r.registerConsoleLocked()
	}

	event := Event{
		Module:   module,
		Severity: severity,
		File:     file,
		Line:     line,
		Message:  message,
		Elapsed:  time.Since(r.start),
		Frame:    r.frame.Load(),
		Thread:   currentThreadName(),
	}

	// Best-effort fan-out: a failing sink must not starve the rest.
	ctx := context.Background()
	for _, s := range r.sinks {
		_, _ = s.Process(ctx, event)
	}

	if severity == Error || severity == Fatal {
		r.trap()
		r.errors.Add(1)
	}
	if severity == Fatal {
		terminate := r.terminate
		r.mu.Unlock()
		terminate()
		return
	}
	r.mu.Unlock()
}

// EventCount returns the number of events that completed routing. Skipped
// no-op calls are not counted.
func (r *Router) EventCount() uint64 {
	return r.events.Load()
}

// ErrorCount returns the process-wide tally of Error and Fatal events that
// reached the sinks.
func (r *Router) ErrorCount() uint64 {
	return r.errors.Load()
}

// SetFrameIndex publishes the host application's frame index. Events carry
// it in their header while nonzero; the host updates it from its main loop.
func (r *Router) SetFrameIndex(frame uint64) {
	r.frame.Store(frame)
}

// FrameIndex returns the current frame index.
func (r *Router) FrameIndex() uint64 {
	return r.frame.Load()
}

// Uptime returns the monotonic time elapsed since the router was constructed.
func (r *Router) Uptime() time.Duration {
	return time.Since(r.start)
}

// SetTrap replaces the debugger-trap hook. See WithTrap.
func (r *Router) SetTrap(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trap = fn
}

// SetTerminate replaces the Fatal terminal action. See WithTerminate.
func (r *Router) SetTerminate(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminate = fn
}

// TrackProcess records a child process to be stopped when a Fatal event
// terminates the process.
func (r *Router) TrackProcess(cmd *exec.Cmd) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs = append(r.procs, cmd)
}

// ForgetProcess removes a previously tracked child process, typically after
// it has exited normally.
func (r *Router) ForgetProcess(cmd *exec.Cmd) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.procs {
		if c == cmd {
			r.procs = append(r.procs[:i], r.procs[i+1:]...)
			return
		}
	}
}

// defaultTerminate stops tracked child processes and aborts. It runs after
// the routing lock is released, so it may take the lock itself.
func (r *Router) defaultTerminate() {
	r.mu.Lock()
	procs := append([]*exec.Cmd(nil), r.procs...)
	r.mu.Unlock()
	for _, cmd := range procs {
		_ = stopProcess(cmd)
	}
	exit(1)
}

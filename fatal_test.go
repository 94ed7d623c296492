package klaxon

import (
	"bytes"
	"os/exec"
	"testing"
)

func TestStopProcessNil(t *testing.T) {
	if err := stopProcess(nil); err != nil {
		t.Errorf("stopProcess(nil) = %v, want nil", err)
	}
	if err := stopProcess(&exec.Cmd{}); err != nil {
		t.Errorf("stopProcess on unstarted command = %v, want nil", err)
	}
}

func TestDefaultTerminateExits(t *testing.T) {
	exitCode := -1
	origExit := exit
	exit = func(code int) { exitCode = code }
	defer func() { exit = origExit }()

	r := NewRouter()
	r.TrackProcess(&exec.Cmd{}) // unstarted: stop is a no-op
	r.defaultTerminate()

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
}

func TestTrackAndForgetProcess(t *testing.T) {
	r := NewRouter()
	a := &exec.Cmd{}
	b := &exec.Cmd{}

	r.TrackProcess(a)
	r.TrackProcess(b)
	r.ForgetProcess(a)

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.procs) != 1 {
		t.Fatalf("tracked processes = %d, want 1", len(r.procs))
	}
	if r.procs[0] != b {
		t.Error("wrong process forgotten")
	}
}

func TestFatalRunsTerminateAfterDispatch(t *testing.T) {
	var console bytes.Buffer
	sawOutput := false
	r := NewRouter()
	r.consoleFactory = func() *Sink { return testConsoleSink(&console) }
	r.SetTerminate(func() {
		// By the time the terminal action runs, the message must already
		// have reached the sinks.
		sawOutput = console.Len() > 0
	})

	r.Route("core", Fatal, "goodbye")

	if !sawOutput {
		t.Error("terminate ran before the fatal message was dispatched")
	}
}

func TestBreakpointIsCallable(t *testing.T) {
	// Breakpoint must be safe to call anywhere; it only exists as a symbol
	// for debuggers to trap on.
	Breakpoint()
}

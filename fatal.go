package klaxon

import (
	"os"
	"os/exec"
	"runtime"
)

// exit is os.Exit, indirected so the abort path can be observed in tests.
var exit = os.Exit

// Breakpoint is invoked whenever an Error or Fatal event is routed. It does
// nothing on its own and never raises; it exists as a stable symbol to hang
// a debugger breakpoint on, catching every escalation site at once.
func Breakpoint() {}

// stopProcess interrupts a child process and waits until it exits.
// On windows, interrupt is not supported, so a kill signal is used instead.
func stopProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	defer cmd.Wait()
	if runtime.GOOS == "windows" {
		return cmd.Process.Signal(os.Kill)
	}
	return cmd.Process.Signal(os.Interrupt)
}

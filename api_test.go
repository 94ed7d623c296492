package klaxon

import (
	"bytes"
	"strings"
	"testing"
)

// Tests in this file exercise the package-level API backed by the default
// router. They assert on deltas and clean up after themselves, since the
// default router is shared process state.

func TestDefaultRouterRegistration(t *testing.T) {
	ClearSinks()
	defer ClearSinks()

	buf := &bytes.Buffer{}
	AddSink(NewWriterSink("api-capture", buf))
	AddSink(NewWriterSink("api-capture", buf))

	if got := Default().SinkCount(); got != 1 {
		t.Errorf("SinkCount() = %d, want 1", got)
	}

	before := EventCount()
	log := NewModule("api")
	log.Info("hello from default")

	if got := EventCount() - before; got != 1 {
		t.Errorf("event count delta = %d, want 1", got)
	}
	if !strings.Contains(buf.String(), "INFO api] hello from default") {
		t.Errorf("output %q missing expected line", buf.String())
	}
}

func TestDefaultRouterErrorTally(t *testing.T) {
	ClearSinks()
	defer ClearSinks()

	buf := &bytes.Buffer{}
	AddSink(NewWriterSink("api-capture", buf))

	errsBefore := ErrorCount()
	log := NewModule("api")
	log.Warn("not an error")
	log.Error("an error")

	if got := ErrorCount() - errsBefore; got != 1 {
		t.Errorf("error count delta = %d, want 1", got)
	}
}

func TestDefaultRouterFrameIndex(t *testing.T) {
	ClearSinks()
	defer ClearSinks()
	defer SetFrameIndex(0)

	buf := &bytes.Buffer{}
	AddSink(NewWriterSink("api-capture", buf))

	SetFrameIndex(9000)
	NewModule("api").Info("frame tagged")

	if !strings.Contains(buf.String(), "(9000) INFO api] frame tagged") {
		t.Errorf("output %q missing frame index", buf.String())
	}
}

func TestDefaultRouterSilentWithoutSinks(t *testing.T) {
	ClearSinks()
	defer ClearSinks()

	before := EventCount()
	NewModule("api").Error("x")

	if got := EventCount() - before; got != 0 {
		t.Errorf("event count delta = %d, want 0", got)
	}
}

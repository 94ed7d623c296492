package klaxon

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestConsoleWriterPlain(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "minimal",
			event: Event{Module: "core", Severity: Info, Message: "hello", Elapsed: 1234 * time.Millisecond},
			want:  "[1.2340 INFO core] hello\n",
		},
		{
			name: "all fields",
			event: Event{
				Module:   "render",
				Severity: Warning,
				File:     "draw.go",
				Line:     117,
				Message:  "slow frame",
				Elapsed:  90100 * time.Microsecond,
				Frame:    7,
				Thread:   "render-thread",
			},
			want: "[0.0901 (7) WARNING render {draw.go:117} (render-thread)] slow frame\n",
		},
		{
			name:  "fatal label",
			event: Event{Module: "core", Severity: Fatal, Message: "goodbye", Elapsed: time.Second},
			want:  "[1.0000 FATAL ERROR core] goodbye\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cw := newConsoleWriter(buf, -1, false, false)
			if err := cw.write(tt.event); err != nil {
				t.Fatalf("write failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsoleWriterInteractiveClearsLine(t *testing.T) {
	buf := &bytes.Buffer{}
	// fd -1 makes the width query fail, falling back to 80 columns.
	cw := newConsoleWriter(buf, -1, true, false)

	if err := cw.write(Event{Module: "core", Severity: Info, Message: "hello"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	prefix := "\r" + strings.Repeat(" ", 80) + "\r"
	if !strings.HasPrefix(out, prefix) {
		t.Errorf("interactive write missing line clear, got %q", out[:min(len(out), 20)])
	}
	if !strings.HasSuffix(out, "INFO core] hello\n") {
		t.Errorf("output %q missing rendered event", out)
	}
}

func TestConsoleWriterColor(t *testing.T) {
	buf := &bytes.Buffer{}
	cw := newConsoleWriter(buf, -1, false, true)

	if err := cw.write(Event{Module: "core", Severity: Error, Message: "boom"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Error("colored output contains no ANSI escapes")
	}
	if !strings.Contains(out, "ERROR") {
		t.Errorf("output %q missing severity label", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output does not end with a newline")
	}
}

func TestColorCapable(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"xterm-256color", true},
		{"screen", true},
		{"dumb", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("TERM="+tt.term, func(t *testing.T) {
			t.Setenv("TERM", tt.term)
			if got := colorCapable(); got != tt.want {
				t.Errorf("colorCapable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConsoleWidthFallback(t *testing.T) {
	if got := consoleWidth(-1); got != 80 {
		t.Errorf("consoleWidth(-1) = %d, want 80", got)
	}
}

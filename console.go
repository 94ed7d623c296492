package klaxon

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/zoobzio/pipz"
	"golang.org/x/term"
)

// consoleWriter renders events to the process's standard error stream.
//
// Interactivity and color support are detected once at construction and
// cached for the process lifetime. On an interactive terminal each write
// first clears the current line, so log output coexists with progress
// meters that redraw in place.
type consoleWriter struct {
	mu          sync.Mutex
	w           io.Writer
	fd          int
	interactive bool
	pal         palette
}

// palette holds the per-field colors of the console header. Each color is
// explicitly enabled or disabled at construction so output does not depend
// on the global color state at write time.
type palette struct {
	bracket *color.Color
	elapsed *color.Color
	info    *color.Color
	warning *color.Color
	errlvl  *color.Color
	module  *color.Color
	source  *color.Color
	thread  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		bracket: color.New(color.Bold),
		elapsed: color.New(color.FgGreen, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		errlvl:  color.New(color.FgRed, color.Bold),
		module:  color.New(color.Bold),
		source:  color.New(color.FgYellow, color.Bold),
		thread:  color.New(color.FgMagenta, color.Bold),
	}
	for _, c := range []*color.Color{p.bracket, p.elapsed, p.info, p.warning, p.errlvl, p.module, p.source, p.thread} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s Severity) *color.Color {
	switch s {
	case Warning:
		return p.warning
	case Error, Fatal:
		return p.errlvl
	default:
		return p.info
	}
}

// stderrInteractive reports whether stderr is an interactive terminal.
func stderrInteractive() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorCapable reports whether the terminal type hints at ANSI color support.
// The TERM variable is the only environment input consulted.
func colorCapable() bool {
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// consoleWidth returns the terminal column count, defaulting to 80 when the
// query fails and clamping to a sane minimum.
func consoleWidth(fd int) int {
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 80
	}
	if w < 10 {
		return 10
	}
	return w
}

func newConsoleWriter(w io.Writer, fd int, interactive, colored bool) *consoleWriter {
	return &consoleWriter{
		w:           w,
		fd:          fd,
		interactive: interactive,
		pal:         newPalette(colored),
	}
}

// write renders one event. All writes for a single event are serialized by
// the sink-local lock in addition to the router lock held by the caller.
func (cw *consoleWriter) write(event Event) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	var b strings.Builder
	if cw.interactive {
		// Clear whatever is on the current line before logging over it.
		b.WriteByte('\r')
		for i := 0; i < consoleWidth(cw.fd); i++ {
			b.WriteByte(' ')
		}
		b.WriteByte('\r')
	}

	b.WriteString(cw.pal.bracket.Sprint("["))
	b.WriteString(cw.pal.elapsed.Sprintf("%5.4f ", event.Elapsed.Seconds()))
	if event.Frame != 0 {
		b.WriteString(cw.pal.elapsed.Sprintf("(%d) ", event.Frame))
	}
	b.WriteString(cw.pal.severity(event.Severity).Sprint(event.Severity.String()))
	b.WriteString(cw.pal.module.Sprintf(" %s", event.Module))
	if event.File != "" {
		b.WriteString(cw.pal.source.Sprintf(" {%s:%d}", event.File, event.Line))
	}
	if event.Thread != "" {
		b.WriteString(cw.pal.thread.Sprintf(" (%s)", event.Thread))
	}
	b.WriteString(cw.pal.bracket.Sprint("] "))
	b.WriteString(event.Message)
	b.WriteByte('\n')

	_, err := io.WriteString(cw.w, b.String())
	return err
}

// newConsoleSink constructs the stderr console sink. Terminal capabilities
// are probed here, once, and cached in the writer.
func newConsoleSink() *Sink {
	interactive := stderrInteractive()
	cw := newConsoleWriter(os.Stderr, int(os.Stderr.Fd()), interactive, interactive && colorCapable())
	return &Sink{
		processor: pipz.Effect("console", func(_ context.Context, event Event) error {
			return cw.write(event)
		}),
		kind: kindConsole,
		key:  "console",
	}
}

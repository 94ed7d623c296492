package klaxon

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/zoobzio/pipz"
)

// fileWriter appends rendered events to a named file.
//
// The file is opened in append mode immediately before each write and closed
// right after. Holding no descriptor between events trades throughput for
// crash-safety: a partial write cannot corrupt later events, and external
// rotation or truncation between writes is tolerated.
type fileWriter struct {
	mu   sync.Mutex
	path string
}

func (fw *fileWriter) write(event Event) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	f, err := os.OpenFile(fw.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// A failed open drops the event for this sink only.
		return fmt.Errorf("open log file %s: %w", fw.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(event.render()); err != nil {
		return fmt.Errorf("write log file %s: %w", fw.path, err)
	}
	return nil
}

// newFileSink constructs a sink appending plain-text lines to path. The path
// is the sink's registry identity: registering the same path twice is a no-op.
func newFileSink(path string) *Sink {
	fw := &fileWriter{path: path}
	return &Sink{
		processor: pipz.Effect("file", func(_ context.Context, event Event) error {
			return fw.write(event)
		}),
		kind: kindFile,
		key:  path,
	}
}

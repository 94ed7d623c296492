package klaxon

import (
	"context"
	"io"
	"sync"

	"github.com/zoobzio/pipz"
)

// sinkKind tags a sink's class for registry dedup. Console and file sinks
// carry an identity key (the file path for files) so repeated registration
// of the same destination is a no-op without any run-time type inspection.
type sinkKind int

const (
	kindCustom sinkKind = iota
	kindConsole
	kindFile
)

// Sink is a destination for fully-resolved log events.
//
// Sinks are the extensibility point of klaxon - the router fans every event
// out to all registered sinks in registration order. Built-in sinks write to
// the console (stderr) and to append-mode files; custom sinks can forward
// events anywhere an application needs.
//
// A sink's handler should handle failures gracefully. Returning an error
// never affects other sinks or the reporting call site: dispatch is
// best-effort per sink.
//
// Sinks must not call back into the router; dispatch happens while the
// router's lock is held.
type Sink struct {
	processor pipz.Chainable[Event]
	kind      sinkKind
	key       string
}

// Process delegates to the underlying processor.
// This makes Sink implement pipz.Chainable[Event].
func (s *Sink) Process(ctx context.Context, event Event) (Event, error) {
	return s.processor.Process(ctx, event)
}

// Name returns the name of the underlying processor.
func (s *Sink) Name() pipz.Name {
	return s.processor.Name()
}

// NewSink creates a custom sink that processes events.
//
// The name identifies the sink and doubles as its registry identity: adding
// two custom sinks with the same name is a no-op for the second.
//
// Example sink that mirrors events to a ring buffer:
//
//	ring := klaxon.NewSink("crash-ring", func(_ context.Context, event klaxon.Event) error {
//	    buf.Push(event.Message)
//	    return nil
//	})
//	klaxon.AddSink(ring)
func NewSink(name string, handler func(context.Context, Event) error) *Sink {
	return &Sink{
		processor: pipz.Effect(name, handler),
		kind:      kindCustom,
		key:       name,
	}
}

// NewWriterSink creates a sink that renders the standard plain-text line to w.
//
// Writes are serialized by a sink-local lock. This is the building block for
// capturing log output in tests or teeing it to an arbitrary stream.
func NewWriterSink(name string, w io.Writer) *Sink {
	var mu sync.Mutex
	return NewSink(name, func(_ context.Context, event Event) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := io.WriteString(w, event.render())
		return err
	})
}

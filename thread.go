package klaxon

import (
	"runtime"
	"sync"
)

// threadRegistry maps goroutine IDs to descriptive names for log display.
// Entries are added once per goroutine and kept for the process lifetime.
type threadRegistry struct {
	mu    sync.RWMutex
	names map[int64]string
}

var threads = &threadRegistry{
	names: make(map[int64]string),
}

// goroutineID returns the current goroutine ID.
// This is used as the key for goroutine-local name storage.
func goroutineID() int64 {
	// Parse the ID out of the first stack trace line: "goroutine 123 [running]:".
	// For better performance a library like github.com/petermattis/goid could
	// be used; log reporting is not hot enough to warrant it.
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	start := len("goroutine ")
	for i := start; i < n; i++ {
		if buf[i] == ' ' {
			var id int64
			for j := start; j < i; j++ {
				id = id*10 + int64(buf[j]-'0')
			}
			return id
		}
	}
	return 0
}

// RegisterThreadName assigns the calling goroutine a descriptive name.
//
// Every event routed from this goroutine afterwards carries the name in its
// header. Names are process-wide and never removed:
//
//	go func() {
//	    klaxon.RegisterThreadName("render")
//	    ...
//	}()
func RegisterThreadName(name string) {
	gid := goroutineID()
	threads.mu.Lock()
	threads.names[gid] = name
	threads.mu.Unlock()
}

// currentThreadName returns the calling goroutine's registered name, or the
// empty string when none was registered.
func currentThreadName() string {
	gid := goroutineID()
	threads.mu.RLock()
	name := threads.names[gid]
	threads.mu.RUnlock()
	return name
}

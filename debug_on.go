//go:build x690_debug

package x690

import (
	"fmt"
	"os"
	"sync"
)

/*
EnvDebugVar names the environment variable consulted to determine the
active event mask for DefaultTracer at init time.
*/
const EnvDebugVar = "X690_DEBUG"

/*
DefaultTracer is the package-level Tracer implementation used by
debugEvent when this package is built with "-tags x690_debug".
*/
type DefaultTracer struct {
	mu   sync.Mutex
	mask EventType
}

func (t *DefaultTracer) Trace(ev EventType, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mask&ev == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, append([]any{ev}, args...)...)
}

var activeTracer = &DefaultTracer{mask: EventAll}

func debugEvent(ev EventType, args ...any) { activeTracer.Trace(ev, args...) }

func debugEnter(args ...any) { activeTracer.Trace(EventEnter, args...) }
func debugExit(args ...any)  { activeTracer.Trace(EventExit, args...) }

func init() {
	if os.Getenv(EnvDebugVar) == "0" {
		activeTracer.mask = EventNone
	}
}

//go:build !x690_debug

package x690

// debugEvent is a no-op unless this package is built or run with
// "-tags x690_debug"; see debug_on.go for the active implementation.
func debugEvent(ev EventType, args ...any) {}

func debugEnter(args ...any) {}
func debugExit(args ...any)  {}

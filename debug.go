package x690

/*
debug.go contains EventType constants which are (only) meaningful when
this package was built or run with the "-tags x690_debug" flag. Absent
that tag, debugEvent is a zero-cost no-op (see debug_off.go). No
encode or decode path in this package calls debugEvent, debugEnter or
debugExit, so no events are emitted even with the tag set.
*/

/*
EventType describes a specific kind of traced event. Bits are
OR-combined to select which categories a Tracer reports.
*/
type EventType int

const EventNone EventType = 0

const (
	EventEnter EventType = 1 << iota // function entry
	EventExit                        // function exit
	EventTLV                         // tag/length/value framing ops
	EventCodec                       // per-type encode/decode ops
	EventConstruct                   // fragmentation/deconstruct ops
)

const EventAll EventType = EventEnter | EventExit | EventTLV | EventCodec | EventConstruct

/*
Tracer receives traced events when the package is built with
"-tags x690_debug". See DefaultTracer in debug_on.go.
*/
type Tracer interface {
	Trace(ev EventType, args ...any)
}

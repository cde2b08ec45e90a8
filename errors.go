package x690

/*
errors.go contains the package error taxonomy. Every decode/encode
failure surfaces as an *Error carrying a symbolic Kind so callers can
switch on the failure class instead of matching message text.
*/

import (
	"errors"
	"sync"
)

/*
Kind enumerates the distinct error classes named in spec.md §4.6/§7.
*/
type Kind uint8

const (
	KindGeneric Kind = iota
	KindTruncation
	KindOverflow
	KindPadding
	KindConstruction
	KindSize
	KindUndefined
	KindRecursion
	KindCharacters
)

func (k Kind) String() string {
	switch k {
	case KindTruncation:
		return "TruncationError"
	case KindOverflow:
		return "OverflowError"
	case KindPadding:
		return "PaddingError"
	case KindConstruction:
		return "ConstructionError"
	case KindSize:
		return "SizeError"
	case KindUndefined:
		return "UndefinedError"
	case KindRecursion:
		return "RecursionError"
	case KindCharacters:
		return "CharactersError"
	default:
		return "GenericError"
	}
}

/*
Error is the concrete error type returned by every exported operation
in this package that can fail.
*/
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.kind.String() + ": " + e.msg }

/*
Kind returns the symbolic failure class of the receiver.
*/
func (e *Error) Kind() Kind { return e.kind }

/*
Is allows errors.Is(err, x690.ErrTruncation) style comparisons by Kind
rather than identity.
*/
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.kind == e.kind
}

var errCache sync.Map

func newErr(kind Kind, msg string) *Error {
	type key struct {
		k Kind
		m string
	}
	if v, hit := errCache.Load(key{kind, msg}); hit {
		return v.(*Error)
	}
	e := &Error{kind: kind, msg: msg}
	errCache.Store(key{kind, msg}, e)
	return e
}

func newErrf(kind Kind, parts ...string) *Error {
	if len(parts) == 1 {
		return newErr(kind, parts[0])
	}
	b := make([]byte, 0, 64)
	for _, p := range parts {
		b = append(b, p...)
	}
	return newErr(kind, string(b))
}

// Sentinel values for errors.Is against a fixed Kind regardless of message.
var (
	ErrTruncation  = &Error{kind: KindTruncation, msg: "truncated input"}
	ErrOverflow    = &Error{kind: KindOverflow, msg: "value overflows supported range"}
	ErrPadding     = &Error{kind: KindPadding, msg: "forbidden leading-zero padding"}
	ErrConstruct   = &Error{kind: KindConstruction, msg: "wrong primitive/constructed form"}
	ErrSize        = &Error{kind: KindSize, msg: "wrong-sized fixed-width value"}
	ErrUndefined   = &Error{kind: KindUndefined, msg: "reserved or undefined encoding"}
	ErrRecursion   = &Error{kind: KindRecursion, msg: "nesting depth exceeded"}
	ErrCharacters  = &Error{kind: KindCharacters, msg: "character outside permitted set"}
)

// AsKind reports whether err is an *Error of the given Kind.
func AsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == k
	}
	return false
}

// Package exierr defines the flat error taxonomy shared by every layer of
// the codec (bitio, header, valuecodec, dctypes, xmldsig, document).
package exierr

import (
	"errors"
	"fmt"
)

// Kind enumerates the terminal failure categories a codec call can return.
// There is no recovery: any non-zero Kind ends the current codec call and
// propagates up to the dispatcher (spec §7).
type Kind int

const (
	// NoError is never wrapped in an *Error; it exists only so Kind has a
	// documented zero-value meaning "no failure".
	NoError Kind = iota

	// BufferOverflow: the writer ran out of destination capacity.
	BufferOverflow
	// BufferUnderflow: the reader ran past the end of the stream.
	BufferUnderflow
	// UnknownGrammarID: a state id was reached that the grammar table does
	// not define — indicates a table/code mismatch, never a wire-data
	// problem.
	UnknownGrammarID
	// UnknownEventCode: the decoder read an event code outside the
	// current state's production range, or the encoder tried to emit a
	// value with no matching production (e.g. array overflow).
	UnknownEventCode
	// UnknownEventForEncoding: no root alternative is marked used.
	UnknownEventForEncoding
	// NotImplementedYet: a grammar position deliberately left
	// unsupported (e.g. certain wildcard ANY fragments, or a root
	// alternative outside the implemented subset).
	NotImplementedYet
)

func (k Kind) String() string {
	switch k {
	case NoError:
		return "NO_ERROR"
	case BufferOverflow:
		return "BUFFER_OVERFLOW"
	case BufferUnderflow:
		return "BUFFER_UNDERFLOW"
	case UnknownGrammarID:
		return "UNKNOWN_GRAMMAR_ID"
	case UnknownEventCode:
		return "UNKNOWN_EVENT_CODE"
	case UnknownEventForEncoding:
		return "UNKNOWN_EVENT_FOR_ENCODING"
	case NotImplementedYet:
		return "NOT_IMPLEMENTED_YET"
	default:
		return "UNKNOWN_ERROR_KIND"
	}
}

// Error is the concrete error value returned by every fallible codec
// operation. Wrap with fmt.Errorf("...: %w", err) when adding call-site
// context; callers can still recover the Kind via errors.As.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Is makes exierr.Error compatible with errors.Is against the sentinel
// *Error values below (e.g. errors.Is(err, exierr.ErrBufferOverflow)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is comparisons against a bare Kind.
var (
	ErrBufferOverflow          = &Error{Kind: BufferOverflow}
	ErrBufferUnderflow         = &Error{Kind: BufferUnderflow}
	ErrUnknownGrammarID        = &Error{Kind: UnknownGrammarID}
	ErrUnknownEventCode        = &Error{Kind: UnknownEventCode}
	ErrUnknownEventForEncoding = &Error{Kind: UnknownEventForEncoding}
	ErrNotImplementedYet       = &Error{Kind: NotImplementedYet}
)

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error, and reports whether one was found.
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return NoError, false
	}
	var x *Error
	if errors.As(err, &x) {
		return x.Kind, true
	}
	return NoError, false
}

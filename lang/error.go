package lang

import (
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// Every error returned by this package is one of these, possibly refined
// with [Error.With] or [Error.Wrap]. A refinement still satisfies
// errors.Is against its sentinel.
var (
	ErrMalformedExpression = NewError("malformed expression")
	ErrUnknownFunction     = NewError("unknown function")
	ErrUnboundVariable     = NewError("unbound variable")
	ErrTypeMismatch        = NewError("type mismatch")
	ErrDivisionByZero      = NewError("division by zero")
	ErrRangeError          = NewError("index out of range")
	ErrArityError          = NewError("wrong number of arguments")
	ErrDuplicateBinding    = NewError("variable already bound")
	ErrNumericOverflow     = NewError("numeric overflow")
	ErrMaxDepthExceeded    = NewError("maximum call depth exceeded")
	ErrReadInput           = NewError("failed to read input")
	ErrInvalidOption       = NewError("invalid option")
	ErrCanceled            = NewError("run canceled")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	base  *Error      // Sentinel this error refines; nil for a sentinel
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
//
// The message has the form "<msg>: <err> (key=value, ...)", omitting any
// part that is not set.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.msg)

	if e.err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}

		b.WriteString(e.err.Error())
	}

	for i, a := range e.attrs {
		if i == 0 {
			b.WriteString(" (")
		} else {
			b.WriteString(", ")
		}

		b.WriteString(a.String())

		if i == len(e.attrs)-1 {
			b.WriteString(")")
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e refines, or a refinement of
// the same sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.root() == e.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attr returns the value of the attribute with the given key.
func (e *Error) Attr(key string) (slog.Value, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return slog.Value{}, false
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		base:  e.root(),
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		base:  e.root(),
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

package table

import (
	"log/slog"
)

// Predefined errors (sentinel values).
var (
	ErrMalformedRow     = NewError("row has fewer than two cells")
	ErrMalformedSynonym = NewError("synonym row missing its target argument")
	ErrUnknownParent    = NewError("parent term not seen before child")
	ErrInclude          = NewError("cannot open include target")
	ErrReadRow          = NewError("failed to read row")
	ErrJSONMarshal      = NewError("JSON marshal error")
	ErrYAMLMarshal      = NewError("YAML marshal error")
)

// Error is an error carrying optional structured logging attributes.
// It implements both error and slog.LogValuer.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface, joining the base message and the
// wrapped error (when present) with ": ".
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.err != nil:
		return e.err.Error()
	default:
		return e.msg
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same sentinel, comparing by base message
// so that derived errors (via Wrap or With) still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// Wrap returns a copy of the sentinel wrapping err, sharing attributes.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of the error with the given attributes appended.
// The receiver is never mutated, so sentinels stay immutable.
func (e *Error) With(attrs ...slog.Attr) *Error {
	merged := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	merged = append(merged, e.attrs...)
	merged = append(merged, attrs...)

	return &Error{msg: e.msg, err: e.err, attrs: merged}
}

// LogValue implements slog.LogValuer for structured logging.
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

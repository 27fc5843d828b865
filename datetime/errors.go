package datetime

import (
	"errors"
	"fmt"
)

// Sentinel errors used to classify an *Error with errors.Is.
var (
	// ErrType reports an operand of the wrong kind, or a combination of kinds
	// an operation is not defined for.
	ErrType = errors.New("type error")
	// ErrValue reports an operand of the right kind whose fields violate an invariant.
	ErrValue = errors.New("value error")
	// ErrRange reports a result outside the representable range. It also matches ErrValue.
	ErrRange = errors.New("range error")
	// ErrNaN reports a non-numeric duration component. It also matches ErrValue.
	ErrNaN = errors.New("not a number")
	// ErrNotImplemented reports a TZInfo method without an implementation.
	ErrNotImplemented = errors.New("not implemented")
)

// Error is the error returned by every failing operation of this package.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Param names the offending parameter or field, if any.
	Param string
	// Value is the offending value, if any.
	Value any
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func (e *Error) Is(target error) bool {
	if target == e.Kind {
		return true
	}
	return target == ErrValue && (e.Kind == ErrRange || e.Kind == ErrNaN)
}

func typeError(format string, args ...any) *Error {
	return &Error{Kind: ErrType, Msg: fmt.Sprintf(format, args...)}
}

func valueError(param string, value any, format string, args ...any) *Error {
	return &Error{Kind: ErrValue, Param: param, Value: value, Msg: fmt.Sprintf(format, args...)}
}

func rangeError(format string, args ...any) *Error {
	return &Error{Kind: ErrRange, Msg: fmt.Sprintf(format, args...)}
}

func notImplemented(method string) *Error {
	return &Error{Kind: ErrNotImplemented, Param: method, Msg: fmt.Sprintf("%s is not implemented", method)}
}

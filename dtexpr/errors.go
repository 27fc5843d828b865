package dtexpr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnbound is wrapped by the ExecutionError of a placeholder without a value.
var ErrUnbound = errors.New("placeholder is not bound")

// SyntaxError reports a malformed token stream.
type SyntaxError struct {
	Tokens Tokens
	Pos    Position
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Token, e.Pos.Offset, e.Msg)
}

// Pretty renders the error with the flattened expression and a caret under Pos.
func (e *SyntaxError) Pretty() string {
	return pretty("SyntaxError", e.Msg, e.Tokens, e.Pos)
}

// ExecutionError reports a failure while evaluating a well-formed expression,
// such as operands of kinds an operator is not defined for.
type ExecutionError struct {
	Tokens Tokens
	Pos    Position
	// Op names the operator that failed; empty for a placeholder lookup.
	Op  string
	Err error
}

func (e *ExecutionError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%d:%d: %v", e.Pos.Token, e.Pos.Offset, e.Err)
	}
	return fmt.Sprintf("%d:%d: execution error in %s operator: %v", e.Pos.Token, e.Pos.Offset, e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Pretty renders the error with the flattened expression, a caret under Pos
// and the original error.
func (e *ExecutionError) Pretty() string {
	msg := "execution error"
	if e.Op != "" {
		msg = fmt.Sprintf("execution error in %s operator", e.Op)
	}
	return pretty("ExecutionError", msg, e.Tokens, e.Pos) + fmt.Sprintf("\noriginal error: %v", e.Err)
}

func pretty(kind, msg string, tokens Tokens, pos Position) string {
	return fmt.Sprintf("[%s] %s\n%s\n%s^", kind, msg, tokens, strings.Repeat(" ", tokens.column(pos)))
}

package interpreter

import (
	"fmt"

	"github.com/pseudolang/pseudo/internal/lexer/token"
)

type ErrorKind int

const (
	// a string operand reached numeric evaluation
	TypeError ErrorKind = iota
	// an identifier was read before any assignment to it
	UndefinedVariable
	// division or modulo by zero
	DivisionByZero
	// a node shape reached a code path with no handling for it; should
	// be unreachable given a correct parser
	InternalError
)

func (kind ErrorKind) String() string {
	switch kind {
	case TypeError:
		return "type error"
	case UndefinedVariable:
		return "undefined variable"
	case DivisionByZero:
		return "division by zero"
	case InternalError:
		return "internal error"
	default:
		return "unknown error"
	}
}

// RuntimeError aborts interpretation. Callers branch on Kind; Pos is the
// zero value when no source position applies.
type RuntimeError struct {
	Kind    ErrorKind
	Pos     token.Pos
	Message string
}

func (err *RuntimeError) Error() string {
	if err.Pos.Filename == "" {
		return err.Message
	}
	return fmt.Sprintf("%s:%d:%d: %s", err.Pos.Filename, err.Pos.Line, err.Pos.Column, err.Message)
}
